package tape

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTape(t *testing.T, dir, name, body string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestListInNewestFirst(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTape(t, dir, "old.tape", "Next\n", now.Add(-time.Hour))
	writeTape(t, dir, "new.tape", "Prev\n", now)
	writeTape(t, dir, "notes.txt", "ignored", now)
	if err := os.Mkdir(filepath.Join(dir, "sub.tape"), 0750); err != nil {
		t.Fatal(err)
	}

	files, err := listIn(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d tapes, want 2", len(files))
	}
	if files[0].Name != "new" || files[1].Name != "old" {
		t.Errorf("order = %s, %s; want new, old", files[0].Name, files[1].Name)
	}
	if files[0].Size != int64(len("Prev\n")) {
		t.Errorf("size = %d", files[0].Size)
	}
}

func TestResolveIn(t *testing.T) {
	dir := t.TempDir()
	writeTape(t, dir, "demo.tape", "Next\n", time.Now())

	for _, name := range []string{"demo", "demo.tape"} {
		path, err := resolveIn(dir, name)
		if err != nil {
			t.Errorf("resolveIn(%q): %v", name, err)
			continue
		}
		if filepath.Base(path) != "demo.tape" {
			t.Errorf("resolveIn(%q) = %q", name, path)
		}
	}

	if _, err := resolveIn(dir, "missing"); err == nil {
		t.Error("expected an error for a missing tape")
	}
	if path, err := resolveIn(dir, "../demo"); err != nil || filepath.Dir(path) != dir {
		t.Errorf("names must stay inside the tape directory, got %q, %v", path, err)
	}
}

func TestFormatReparses(t *testing.T) {
	script := "# demo\nnext 2\nDot 3\nsleep 250ms\nSet rtl on\nAutoplay off\n"
	cmds, err := ParseString(script)
	if err != nil {
		t.Fatal(err)
	}

	again, err := ParseString(Format(cmds))
	if err != nil {
		t.Fatalf("formatted script does not parse: %v", err)
	}
	if len(again) != len(cmds) {
		t.Fatalf("got %d commands back, want %d", len(again), len(cmds))
	}
	for i := range cmds {
		a, b := cmds[i], again[i]
		if a.Type != b.Type || a.Count != b.Count || a.Delay != b.Delay || a.On != b.On {
			t.Errorf("command %d changed: %+v -> %+v", i, a, b)
		}
	}
}
