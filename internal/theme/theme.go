// Package theme provides color themes and styling for the carousel views.
package theme

import (
	"fmt"
	"image/color"
	"slices"
	"sync"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var (
	registryOnce sync.Once
	registry     *tint.Registry
)

// Registry returns the process-wide theme registry: the bubbletint defaults
// plus the custom themes found on first use. Lookups on it are safe from
// any goroutine.
func Registry() *tint.Registry {
	registryOnce.Do(func() {
		registry = tint.NewRegistry(tint.TintDraculaPlus, tint.DefaultTints()...)
		if themesDir, err := GetThemesDir(); err == nil {
			if _, err := LoadCustomThemes(registry, themesDir); err != nil {
				log.Warn("error loading custom themes", "err", err)
			}
		}
	})
	return registry
}

// Palette is the color set one view draws with. The zero value disables
// theming and uses standard terminal colors.
type Palette struct {
	tint *tint.Tint
}

// Lookup resolves a theme name to a palette. An empty name disables theming.
// An unknown name returns the registry's default theme and an error.
func Lookup(themeName string) (Palette, error) {
	if themeName == "" {
		return Palette{}, nil
	}
	r := Registry()
	if t, ok := r.GetTint(themeName); ok {
		return Palette{tint: t}, nil
	}
	fallback := r.Current()
	return Palette{tint: fallback}, fmt.Errorf("unknown theme %q, using %s", themeName, fallback.ID)
}

// Enabled reports whether the palette comes from a theme
func (p Palette) Enabled() bool {
	return p.tint != nil
}

// Name returns the theme ID, or "" when theming is off
func (p Palette) Name() string {
	if p.tint == nil {
		return ""
	}
	return p.tint.ID
}

// Available returns the sorted IDs of every registered theme, custom ones included.
func Available() []string {
	ids := Registry().TintIDs()
	slices.Sort(ids)
	return ids
}

// themed returns the theme color chosen by pick, or fallback when theming is off.
func (p Palette) themed(fallback string, pick func(t *tint.Tint) *tint.Color) color.Color {
	if p.tint == nil {
		return lipgloss.Color(fallback)
	}
	if c := pick(p.tint); c != nil {
		return c
	}
	return lipgloss.Color(fallback)
}

// SlideBorder returns the border color of slides outside the visible window.
func (p Palette) SlideBorder() color.Color {
	return p.themed("8", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// SlideActive returns the border color of slides inside the visible window.
func (p Palette) SlideActive() color.Color {
	return p.themed("#AFFFFF", func(t *tint.Tint) *tint.Color { return t.BrightCyan })
}

// SlideCurrent returns the border color of the current slide.
func (p Palette) SlideCurrent() color.Color {
	return p.themed("#AAFFAA", func(t *tint.Tint) *tint.Color { return t.BrightGreen })
}

// SlideCenter returns the border color of the centered slide in center mode.
func (p Palette) SlideCenter() color.Color {
	return p.themed("#ffff00", func(t *tint.Tint) *tint.Color { return t.BrightYellow })
}

// SlideCloned returns the title color of cloned slides.
func (p Palette) SlideCloned() color.Color {
	return p.themed("#cd00cd", func(t *tint.Tint) *tint.Color { return t.Purple })
}

// SlideFocused returns the border color of the keyboard-focused slide.
func (p Palette) SlideFocused() color.Color {
	return p.themed("#ff6b6b", func(t *tint.Tint) *tint.Color { return t.BrightRed })
}

// SlideText returns the body text color of hydrated slides.
func (p Palette) SlideText() color.Color {
	return p.themed("#e5e5e5", func(t *tint.Tint) *tint.Color { return t.Fg })
}

// Placeholder returns the fill color of slides that are not hydrated yet.
func (p Palette) Placeholder() color.Color {
	return p.themed("#585858", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// DotActive returns the color of the dot covering the current slide.
func (p Palette) DotActive() color.Color {
	return p.themed("#00ffff", func(t *tint.Tint) *tint.Color { return t.BrightCyan })
}

// DotInactive returns the color of every other dot.
func (p Palette) DotInactive() color.Color {
	return p.themed("8", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// Arrow returns the color of the previous/next arrows.
func (p Palette) Arrow() color.Color {
	return p.themed("#a0a0b0", func(t *tint.Tint) *tint.Color { return t.White })
}

// ArrowDisabled returns the color of an arrow that cannot move.
func (p Palette) ArrowDisabled() color.Color {
	return lipgloss.Color("#303040")
}

// StatusBg returns the background color for the status line.
func (p Palette) StatusBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// StatusFg returns the foreground color for the status line.
func (p Palette) StatusFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// StatusAccent returns the accent color for values in the status line.
func (p Palette) StatusAccent() color.Color {
	return p.themed("#00ff00", func(t *tint.Tint) *tint.Color { return t.BrightGreen })
}

// StatusError returns the color of errors shown in the status line.
func (p Palette) StatusError() color.Color {
	return p.themed("#cd0000", func(t *tint.Tint) *tint.Color { return t.Red })
}

// HelpKeyBadge returns the color for key badges in the help overlay.
func (p Palette) HelpKeyBadge() color.Color {
	return lipgloss.Color("5") // Purple/magenta
}

// HelpText returns the color for descriptions in the help overlay.
func (p Palette) HelpText() color.Color {
	return lipgloss.Color("7")
}

// HelpBorder returns the border color for the help overlay.
func (p Palette) HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// CLITableHeader returns the color for CLI table headers.
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

// CLITableBorder returns the color for CLI table borders.
func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

// CLITableKey returns the color for CLI table keys.
func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

// CLITableDim returns the dimmed color for CLI table elements.
func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
