package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/spf13/cobra"
)

func resetItemFlags(t *testing.T) {
	t.Helper()
	oldFile, oldCount := itemsFile, itemCount
	t.Cleanup(func() { itemsFile, itemCount = oldFile, oldCount })
	itemsFile, itemCount = "", 0
}

func TestLoadItemsFromArgs(t *testing.T) {
	resetItemFlags(t)
	itemCount = 9
	items, err := loadItems([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Body != "a" {
		t.Errorf("arguments should win, got %+v", items)
	}
}

func TestLoadItemsFromFile(t *testing.T) {
	resetItemFlags(t)
	path := filepath.Join(t.TempDir(), "slides.txt")
	if err := os.WriteFile(path, []byte("one\n\ntwo\nthree\n"), 0600); err != nil {
		t.Fatal(err)
	}
	itemsFile = path

	items, err := loadItems(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 || items[2].ID != "item-2" {
		t.Errorf("got %+v", items)
	}
}

func TestLoadItemsEmptyFile(t *testing.T) {
	resetItemFlags(t)
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n \n"), 0600); err != nil {
		t.Fatal(err)
	}
	itemsFile = path
	if _, err := loadItems(nil); err == nil {
		t.Error("a file without slides should be rejected")
	}
}

func TestLoadItemsGenerated(t *testing.T) {
	resetItemFlags(t)
	itemCount = 4
	items, err := loadItems(nil)
	if err != nil || len(items) != 4 {
		t.Fatalf("got %d items, %v", len(items), err)
	}

	itemCount = 0
	items, err = loadItems(nil)
	if err != nil || items != nil {
		t.Errorf("no source should leave the default to the model, got %v %v", items, err)
	}

	itemCount = -1
	if _, err := loadItems(nil); err == nil {
		t.Error("negative count should fail")
	}
}

func TestFlagOverridesOnlyChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolVar(&infinite, "infinite", true, "")
	cmd.Flags().BoolVar(&rtl, "rtl", false, "")
	cmd.Flags().BoolVar(&centerMode, "center", false, "")
	cmd.Flags().BoolVar(&fade, "fade", false, "")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "")
	cmd.Flags().BoolVar(&lazyLoad, "lazy", false, "")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "")
	if err := cmd.ParseFlags([]string{"--infinite=false", "--rtl"}); err != nil {
		t.Fatal(err)
	}

	o := flagOverrides(cmd)
	if o.Infinite == nil || *o.Infinite {
		t.Error("--infinite=false should override")
	}
	if o.RTL == nil || !*o.RTL {
		t.Error("--rtl should override")
	}
	if o.CenterMode != nil || o.Fade != nil || o.Autoplay != nil {
		t.Error("unset flags should leave the config alone")
	}
}

func TestStyleSummary(t *testing.T) {
	w, op := 20, 0.0
	got := styleSummary(carousel.Style{Width: &w, Opacity: &op, Transition: "opacity 500ms ease"})
	if got != "width=20 opacity=0 transition=opacity 500ms ease" {
		t.Errorf("styleSummary = %q", got)
	}
	if styleSummary(carousel.Style{}) != "-" {
		t.Error("empty style should print a dash")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("got %q", got)
	}
}
