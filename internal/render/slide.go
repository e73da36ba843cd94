// Package render draws carousel directives, dots and the status line with
// lipgloss. It only reads what the carousel core computed.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/charmbracelet/x/ansi"
)

// Look is the appearance one view draws with. Every session owns its own.
type Look struct {
	config.AppearanceConfig
	Palette theme.Palette
}

// innerSize returns the content area of one slide box
func innerSize(spec carousel.Spec, look Look) (width, height int) {
	// one column of the slide width is the gap between boxes
	width = max(spec.SlideWidth-3, config.MinSlideWidth-2)
	height = max(look.Height()-2, 1)
	return width, height
}

// borderColor picks the border color from the slide classification
func borderColor(d carousel.Directive, p theme.Palette, focused bool) color.Color {
	switch {
	case focused:
		return p.SlideFocused()
	case d.Classes.Current:
		return p.SlideCurrent()
	case d.Classes.Center:
		return p.SlideCenter()
	case d.Classes.Active:
		return p.SlideActive()
	default:
		return p.SlideBorder()
	}
}

// Title returns the one-line heading of a slide box
func Title(d carousel.Directive, look Look) string {
	title := fmt.Sprintf("#%d", d.Source)
	if d.Cloned() {
		title += " " + look.CloneTag()
	}
	if d.Slide.Leaf.Key != "" {
		title += " " + d.Slide.Leaf.Key
	}
	return title
}

// Slide renders one directive as a bordered box
func Slide(d carousel.Directive, spec carousel.Spec, look Look, focused bool) string {
	w, h := innerSize(spec, look)

	titleStyle := lipgloss.NewStyle().Bold(d.Classes.Current)
	if d.Cloned() {
		titleStyle = titleStyle.Foreground(look.Palette.SlideCloned())
	}

	lines := make([]string, 0, h)
	lines = append(lines, titleStyle.Render(fit(Title(d, look), w)))

	if d.Placeholder() {
		fill := lipgloss.NewStyle().Foreground(look.Palette.Placeholder())
		row := strings.Repeat(look.PlaceholderFill(), w)
		for len(lines) < h {
			lines = append(lines, fill.Render(row))
		}
	} else {
		body := lipgloss.NewStyle().Foreground(look.Palette.SlideText())
		text := ansi.Wordwrap(fmt.Sprint(d.Slide.Leaf.Body), w, " -")
		for _, l := range strings.Split(text, "\n") {
			if len(lines) == h {
				break
			}
			lines = append(lines, body.Render(fit(l, w)))
		}
		for len(lines) < h {
			lines = append(lines, strings.Repeat(" ", w))
		}
	}

	return lipgloss.NewStyle().
		Border(look.Border()).
		BorderForeground(borderColor(d, look.Palette, focused)).
		Render(strings.Join(lines[:h], "\n"))
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Row lays out directives in track order, side by side or stacked
func Row(track []carousel.Directive, spec carousel.Spec, look Look, focusKey string) string {
	boxes := make([]string, 0, len(track))
	for _, d := range track {
		boxes = append(boxes, Slide(d, spec, look, d.Key == focusKey))
	}
	if len(boxes) == 0 {
		return ""
	}
	if spec.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	spaced := make([]string, 0, 2*len(boxes)-1)
	for i, b := range boxes {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// Dots renders the pagination row through carousel.RenderDots
func Dots(dots []carousel.Dot, look Look) string {
	active := lipgloss.NewStyle().Foreground(look.Palette.DotActive())
	inactive := lipgloss.NewStyle().Foreground(look.Palette.DotInactive())
	return carousel.RenderDots(dots,
		func(d carousel.Dot) string {
			if d.Active {
				return active.Render(look.DotIcon(true))
			}
			return inactive.Render(look.DotIcon(false))
		},
		func(parts []string) string { return strings.Join(parts, " ") },
	)
}
