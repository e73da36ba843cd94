package server

import (
	"path/filepath"
	"testing"

	"github.com/Gaurav-Gosain/carousel/internal/config"
)

func TestHostKeyPathKeepsExplicitPath(t *testing.T) {
	got, err := hostKeyPath("/tmp/key")
	if err != nil || got != "/tmp/key" {
		t.Errorf("hostKeyPath = %q, %v", got, err)
	}
}

func TestHostKeyPathDefault(t *testing.T) {
	got, err := hostKeyPath("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "ssh_host_ed25519" || filepath.Base(filepath.Dir(got)) != "carousel" {
		t.Errorf("unexpected default key path %q", got)
	}
}

func TestSessionConfigIsolated(t *testing.T) {
	shared := config.DefaultConfig()
	cfg := sessionConfig(shared)
	cfg.Carousel.SlidesToShow = 1
	if shared.Carousel.SlidesToShow == 1 {
		t.Error("session config shares carousel settings with the server")
	}
	if sessionConfig(nil) == nil {
		t.Error("nil config should fall back to defaults")
	}
}
