package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/charmbracelet/x/ansi"
)

// Status is what the status line reports
type Status struct {
	Current  int
	Count    int
	Loaded   int // hydrated slides, -1 when lazy loading is off
	Autoplay bool
	Paused   bool
	Selected int // -1 when nothing was activated
	Message  string
	Err      error
	ID       string
}

// Scene is everything one frame draws
type Scene struct {
	Spec     carousel.Spec
	Track    []carousel.Directive // visible directives in track order
	Dots     []carousel.Dot       // nil hides the dot row
	FocusKey string
	CanPrev  bool
	CanNext  bool
	Width    int
	Height   int
	Status   Status
	Look     Look
	Help     []config.KeybindingSection // non-nil replaces the track with the help overlay
}

// View renders a full frame
func View(sc Scene) string {
	width := sc.Width
	if width <= 0 {
		width = config.FallbackWidth
	}

	var body string
	if sc.Help != nil {
		body = Help(sc.Help, sc.Look, width)
	} else {
		body = withArrows(Row(sc.Track, sc.Spec, sc.Look, sc.FocusKey), sc.Look, sc.CanPrev, sc.CanNext)
		if sc.Dots != nil {
			body = lipgloss.JoinVertical(lipgloss.Center, body, "", Dots(sc.Dots, sc.Look))
		}
	}

	status := StatusLine(sc.Status, sc.Look, width)
	if sc.Height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, lipgloss.PlaceHorizontal(width, lipgloss.Center, body), status)
	}

	area := lipgloss.Place(width, max(sc.Height-config.StatusBarHeight, 1), lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, area, status)
}

// withArrows frames the row with previous/next arrows
func withArrows(row string, look Look, canPrev, canNext bool) string {
	arrow := func(next, enabled bool) string {
		c := look.Palette.Arrow()
		if !enabled {
			c = look.Palette.ArrowDisabled()
		}
		return lipgloss.NewStyle().Foreground(c).Render(look.ArrowIcon(next))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		arrow(false, canPrev), " ", row, " ", arrow(true, canNext))
}

// StatusLine renders the bottom bar, exactly width cells wide
func StatusLine(st Status, look Look, width int) string {
	p := look.Palette
	base := lipgloss.NewStyle().Background(p.StatusBg()).Foreground(p.StatusFg())
	accent := base.Foreground(p.StatusAccent()).Bold(true)

	parts := []string{accent.Render(fmt.Sprintf(" %d/%d", st.Current+1, st.Count))}
	if st.Autoplay {
		parts = append(parts, base.Render(look.AutoplayIndicator(st.Paused)))
	}
	if st.Loaded >= 0 {
		parts = append(parts, base.Render(fmt.Sprintf("loaded %d/%d", st.Loaded, st.Count)))
	}
	if st.Selected >= 0 {
		parts = append(parts, base.Render(fmt.Sprintf("selected #%d", st.Selected)))
	}
	switch {
	case st.Err != nil:
		parts = append(parts, base.Foreground(p.StatusError()).Render(st.Err.Error()))
	case st.Message != "":
		parts = append(parts, base.Render(st.Message))
	}

	line := strings.Join(parts, base.Render("  "))
	if st.ID != "" {
		id := base.Render(st.ID + " ")
		if gap := width - ansi.StringWidth(line) - ansi.StringWidth(id); gap > 0 {
			line += base.Render(strings.Repeat(" ", gap)) + id
		}
	}

	line = ansi.Truncate(line, width, "…")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += base.Render(strings.Repeat(" ", pad))
	}
	return line
}

// Help renders the keybinding overlay
func Help(sections []config.KeybindingSection, look Look, width int) string {
	key := lipgloss.NewStyle().Foreground(look.Palette.HelpKeyBadge()).Bold(true)
	text := lipgloss.NewStyle().Foreground(look.Palette.HelpText())
	title := lipgloss.NewStyle().Bold(true).Underline(true)

	keyWidth := 0
	for _, s := range sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Key))
		}
	}

	var lines []string
	for i, s := range sections {
		if len(s.Bindings) == 0 {
			continue
		}
		if i > 0 && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, title.Render(s.Title))
		for _, b := range s.Bindings {
			lines = append(lines, key.Render(fit(b.Key, keyWidth))+"  "+text.Render(b.Description))
		}
	}

	box := lipgloss.NewStyle().
		Border(look.Border()).
		BorderForeground(look.Palette.HelpBorder()).
		Padding(0, 1)
	content := strings.Join(lines, "\n")
	if maxW := width - 4; maxW > 0 {
		content = truncateLines(content, maxW)
	}
	return box.Render(content)
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}
