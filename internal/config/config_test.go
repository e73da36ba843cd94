package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
)

func TestDefaultConfigIsValid(t *testing.T) {
	v := ValidateConfig(DefaultConfig())
	if v.HasErrors() {
		t.Fatalf("default config has errors: %+v", v.Errors)
	}
	if v.HasWarnings() {
		t.Fatalf("default config has warnings: %+v", v.Warnings)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*UserConfig)
		wantErrKey  string
		wantWarnKey string
	}{
		{"zero slides to show", func(c *UserConfig) { c.Carousel.SlidesToShow = 0 }, "slides_to_show", ""},
		{"negative speed", func(c *UserConfig) { c.Carousel.SpeedMS = -1 }, "speed_ms", ""},
		{"unknown border", func(c *UserConfig) { c.Appearance.BorderStyle = "wavy" }, "border_style", ""},
		{"unknown log level", func(c *UserConfig) { c.Server.LogLevel = "loud" }, "log_level", ""},
		{"scroll past window", func(c *UserConfig) { c.Carousel.SlidesToScroll = 5 }, "", "slides_to_scroll"},
		{"fade with several slides", func(c *UserConfig) { c.Carousel.Fade = true }, "", "fade"},
		{"padding without center", func(c *UserConfig) { c.Carousel.CenterPadding = 2 }, "", "center_padding"},
		{"unknown action", func(c *UserConfig) { c.Keybindings.System["explode"] = []string{"!"} }, "", "explode"},
		{"duplicate key", func(c *UserConfig) { c.Keybindings.Toggles["toggle_rtl"] = []string{"l"} }, "", "toggle_rtl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			v := ValidateConfig(cfg)

			if tt.wantErrKey != "" && !hasIssue(v.Errors, tt.wantErrKey) {
				t.Errorf("expected error for %s, got %+v", tt.wantErrKey, v.Errors)
			}
			if tt.wantErrKey == "" && v.HasErrors() {
				t.Errorf("unexpected errors: %+v", v.Errors)
			}
			if tt.wantWarnKey != "" && !hasIssue(v.Warnings, tt.wantWarnKey) {
				t.Errorf("expected warning for %s, got %+v", tt.wantWarnKey, v.Warnings)
			}
		})
	}
}

func hasIssue(issues []ValidationIssue, key string) bool {
	for _, i := range issues {
		if i.Key == key {
			return true
		}
	}
	return false
}

func TestKeybindRegistry(t *testing.T) {
	r := NewKeybindRegistry(DefaultConfig())

	tests := []struct {
		key  string
		want string
	}{
		{"right", "next"},
		{"h", "prev"},
		{"g", "first"},
		{"G", "last"},
		{"shift+tab", "focus_prev"},
		{"Ctrl+C", "quit"},
		{"3", "dot_3"},
		{"x", "toggle_clones"},
		{"F12", ""},
	}
	for _, tt := range tests {
		if got := r.GetAction(tt.key); got != tt.want {
			t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if keys := r.KeysFor("select"); len(keys) != 2 {
		t.Errorf("KeysFor(select) = %v, want two keys", keys)
	}
}

func TestKeybindRegistryFirstBindingWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Toggles["toggle_rtl"] = []string{"l", "R"}
	r := NewKeybindRegistry(cfg)

	if got := r.GetAction("l"); got != "next" {
		t.Errorf("GetAction(l) = %q, want next", got)
	}
	if got := r.GetAction("R"); got != "toggle_rtl" {
		t.Errorf("GetAction(R) = %q, want toggle_rtl", got)
	}

	var nilRegistry *KeybindRegistry
	if nilRegistry.GetAction("l") != "" {
		t.Error("nil registry should resolve nothing")
	}
}

func TestGetKeybindings(t *testing.T) {
	sections := GetKeybindings(NewKeybindRegistry(nil))
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}
	if sections[1].Title != "Dots" || len(sections[1].Bindings) != 9 {
		t.Errorf("dots section = %+v", sections[1])
	}
	total := 0
	for _, s := range sections {
		total += len(s.Bindings)
	}
	if total != len(AllActions()) {
		t.Errorf("listed %d bindings, want %d", total, len(AllActions()))
	}
}

func TestLoadUserConfigFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[carousel]
slides_to_show = 1
infinite = false
autoplay_speed_ms = 10

[keybindings.navigation]
next = ["n"]
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadUserConfigFile(path)
	if err != nil {
		t.Fatalf("LoadUserConfigFile failed: %v", err)
	}

	c := cfg.Carousel
	if c.SlidesToShow != 1 || c.SlidesToScroll != DefaultSlidesToScroll {
		t.Errorf("slides = %d/%d", c.SlidesToShow, c.SlidesToScroll)
	}
	if c.Infinite == nil || *c.Infinite {
		t.Error("infinite = false should survive default filling")
	}
	if !c.DotsEnabled() {
		t.Error("dots should default to enabled")
	}
	if c.AutoplayInterval() != MinAutoplaySpeed {
		t.Errorf("AutoplayInterval() = %v, want %v", c.AutoplayInterval(), MinAutoplaySpeed)
	}
	if got := cfg.Keybindings.Navigation["next"]; len(got) != 1 || got[0] != "n" {
		t.Errorf("next = %v, want [n]", got)
	}
	if got := cfg.Keybindings.Navigation["prev"]; len(got) == 0 {
		t.Error("prev should be filled from defaults")
	}
	if cfg.Server.SSHPort != "2222" {
		t.Errorf("ssh port = %q", cfg.Server.SSHPort)
	}
}

func TestLoadUserConfigFileRejectsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\nborder_style = \"wavy\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadUserConfigFile(path); err == nil || !strings.Contains(err.Error(), "1 error") {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestWriteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := WriteConfigFile(path, DefaultConfig()); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Carousel Configuration File") {
		t.Error("missing header")
	}
	if _, err := LoadUserConfigFile(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}

func TestCarouselConfigSpec(t *testing.T) {
	cfg := DefaultConfig().Carousel
	cfg.CenterMode = true
	cfg.SpeedMS = 250

	s := cfg.Spec(6)
	if s.SlideCount != 6 || s.SlidesToShow != 3 || !s.Infinite || !s.CenterMode {
		t.Errorf("unexpected spec %+v", s)
	}
	if s.Speed != 250*time.Millisecond || s.CSSEase != DefaultCSSEase {
		t.Errorf("speed/ease = %v/%q", s.Speed, s.CSSEase)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("spec from defaults should validate: %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.BorderStyle = "double"
	off, on := false, true

	ApplyOverrides(Overrides{
		ShowClones:   true,
		SlidesToShow: 5,
		Infinite:     &off,
		RTL:          &on,
	}, cfg)

	if cfg.Appearance.BorderStyle != "double" {
		t.Errorf("BorderStyle = %q, want double from config", cfg.Appearance.BorderStyle)
	}
	if !cfg.Appearance.ShowClones {
		t.Error("ShowClones flag should apply")
	}
	if cfg.Carousel.SlidesToShow != 5 || *cfg.Carousel.Infinite || !cfg.Carousel.RTL {
		t.Errorf("carousel overrides not applied: %+v", cfg.Carousel)
	}
	if cfg.Carousel.CenterMode {
		t.Error("unset flags must not change config")
	}

	ApplyOverrides(Overrides{BorderStyle: "thick", ASCIIOnly: true, ThemeName: "nord"}, cfg)
	if cfg.Appearance.BorderStyle != "thick" || !cfg.Appearance.ASCIIOnly || cfg.Appearance.Theme != "nord" {
		t.Errorf("flags not applied: %+v", cfg.Appearance)
	}

	ApplyOverrides(Overrides{ASCIIOnly: true}, nil)
}

func TestAppearanceGlyphs(t *testing.T) {
	unicode := AppearanceConfig{BorderStyle: "double"}
	ascii := AppearanceConfig{BorderStyle: "double", ASCIIOnly: true}

	tests := []struct {
		name      string
		got, want string
	}{
		{"active dot", unicode.DotIcon(true), DotActive},
		{"ascii active dot", ascii.DotIcon(true), DotActiveASCII},
		{"ascii inactive dot", ascii.DotIcon(false), DotInactiveASCII},
		{"ascii next arrow", ascii.ArrowIcon(true), ArrowNextASCII},
		{"prev arrow", unicode.ArrowIcon(false), ArrowPrev},
		{"ascii clone tag", ascii.CloneTag(), CloneMarkerASCII},
		{"placeholder", unicode.PlaceholderFill(), PlaceholderGlyph},
		{"ascii paused", ascii.AutoplayIndicator(true), PausedIconASCII},
		{"border", unicode.Border().Top, lipgloss.DoubleBorder().Top},
		{"ascii border", ascii.Border().Top, lipgloss.ASCIIBorder().Top},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	if h := (AppearanceConfig{}).Height(); h != DefaultSlideHeight {
		t.Errorf("Height() = %d, want %d", h, DefaultSlideHeight)
	}
}
