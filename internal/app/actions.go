package app

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
)

// HandleCommand implements carousel.Handler. Every move, whatever produced
// it, goes through ChangeSlide and ResolveSlide.
func (m *Model) HandleCommand(cmd carousel.Command) {
	s := m.Spec()
	target := carousel.ChangeSlide(s, cmd)
	final := carousel.ResolveSlide(s, target)

	m.logger.Debug("command",
		"kind", cmd.Kind,
		"index", cmd.Index,
		"from", m.current,
		"target", target,
		"to", final,
	)
	m.setCurrent(final)
}

// Next moves forward by one scroll step
func (m *Model) Next() error {
	m.HandleCommand(carousel.Command{
		Kind:           carousel.KindNext,
		SlidesToScroll: m.cfg.SlidesToScroll,
		CurrentSlide:   m.current,
	})
	return nil
}

// Prev moves back by one scroll step
func (m *Model) Prev() error {
	m.HandleCommand(carousel.Command{
		Kind:           carousel.KindPrevious,
		SlidesToScroll: m.cfg.SlidesToScroll,
		CurrentSlide:   m.current,
	})
	return nil
}

// GoTo jumps to index; infinite carousels wrap, finite ones clamp
func (m *Model) GoTo(index int) error {
	m.HandleCommand(carousel.Command{
		Kind:           carousel.KindIndex,
		Index:          index,
		SlidesToScroll: m.cfg.SlidesToScroll,
		CurrentSlide:   m.current,
	})
	return nil
}

// First jumps to the first slide
func (m *Model) First() error { return m.GoTo(0) }

// Last jumps to the last reachable slide
func (m *Model) Last() error {
	last := len(m.items) - 1
	if !m.isInfinite() && !m.cfg.CenterMode {
		last = len(m.items) - m.cfg.SlidesToShow
	}
	return m.GoTo(max(last, 0))
}

func (m *Model) isInfinite() bool {
	return m.cfg.Infinite == nil || *m.cfg.Infinite
}

// GoToDot activates the dot for the zero-based page
func (m *Model) GoToDot(page int) error {
	dots, err := carousel.BuildDots(m.Spec(), m.slides)
	if err != nil {
		return m.fail(fmt.Errorf("failed to build dots: %w", err))
	}
	if page < 0 || page >= len(dots) {
		return m.fail(fmt.Errorf("no dot %d (carousel has %d)", page+1, len(dots)))
	}
	dots[page].Activate(m)
	return nil
}

// SelectSlide activates the real slide at index, as a click on it would
func (m *Model) SelectSlide(index int) error {
	track, err := m.Track()
	if err != nil {
		return m.fail(fmt.Errorf("failed to build track: %w", err))
	}
	for _, d := range track {
		if d.Placement == carousel.PlacementReal && d.Source == index {
			m.activate(d)
			return nil
		}
	}
	return m.fail(fmt.Errorf("no slide %d (carousel has %d)", index, len(m.items)))
}

// activate records the selection and runs the directive's hooks
func (m *Model) activate(d carousel.Directive) {
	m.selected = d.Source
	m.notify("selected %s", describe(d))
	d.Activate()
}

func describe(d carousel.Directive) string {
	if d.Cloned() {
		return fmt.Sprintf("slide %d (clone)", d.Source)
	}
	return fmt.Sprintf("slide %d", d.Source)
}

// MoveFocus moves the keyboard focus within the visible window
func (m *Model) MoveFocus(delta int) {
	track, err := m.Track()
	if err != nil {
		_ = m.fail(err)
		return
	}
	visible := m.Visible(track)
	if len(visible) == 0 {
		return
	}
	pos := m.focusPosition(visible)
	m.focus = ((pos+delta)%len(visible) + len(visible)) % len(visible)
}

// Focused returns the focused directive among visible, if any
func (m *Model) Focused(visible []carousel.Directive) (carousel.Directive, bool) {
	if len(visible) == 0 {
		return carousel.Directive{}, false
	}
	return visible[m.focusPosition(visible)], true
}

// focusPosition resolves the focus to a position in visible
func (m *Model) focusPosition(visible []carousel.Directive) int {
	if m.focus >= 0 && m.focus < len(visible) {
		return m.focus
	}
	for i, d := range visible {
		if d.Placement == carousel.PlacementReal && d.Source == m.current {
			return i
		}
	}
	return 0
}

// ActivateFocused activates the focused slide
func (m *Model) ActivateFocused() error {
	track, err := m.Track()
	if err != nil {
		return m.fail(err)
	}
	d, ok := m.Focused(m.Visible(track))
	if !ok {
		return nil
	}
	m.activate(d)
	return nil
}

// ToggleHelp shows or hides the keybinding overlay
func (m *Model) ToggleHelp() { m.showHelp = !m.showHelp }

// ShowingHelp reports whether the help overlay is open
func (m *Model) ShowingHelp() bool { return m.showHelp }

// SetAutoplay turns autoplay on or off. Turning it on also resumes it.
func (m *Model) SetAutoplay(on bool) error {
	m.autoplay = on
	m.paused = false
	m.autoplayGen++
	if on {
		m.notify("autoplay every %s", m.AutoplayInterval())
	} else {
		m.notify("autoplay off")
	}
	return nil
}

// TogglePause pauses or resumes a running autoplay; it starts autoplay when off
func (m *Model) TogglePause() {
	if !m.autoplay {
		_ = m.SetAutoplay(true)
		return
	}
	m.paused = !m.paused
	m.autoplayGen++
	if m.paused {
		m.notify("autoplay paused")
	} else {
		m.notify("autoplay resumed")
	}
}

// OptionNames lists the options SetOption understands
func OptionNames() []string {
	return []string{
		"slides_to_show", "slides_to_scroll", "center_padding", "autoplay_speed_ms",
		"infinite", "center_mode", "rtl", "fade", "vertical", "unslick", "lazy_load",
		"focus_on_select", "dots", "show_clones", "ascii_only", "border_style", "theme",
	}
}

// SetOption changes one setting at runtime. Booleans accept true/false,
// on/off and toggle.
func (m *Model) SetOption(name, value string) error {
	name = strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	c := &m.cfg

	setInt := func(dst *int, parse func(string) (int, error)) error {
		n, err := parse(value)
		if err == nil {
			*dst = n
		}
		return err
	}
	setBool := func(dst *bool) error {
		b, err := parseSwitch(value, *dst)
		if err == nil {
			*dst = b
		}
		return err
	}

	var err error
	switch name {
	case "slides_to_show":
		err = setInt(&c.SlidesToShow, parsePositive)
	case "slides_to_scroll":
		err = setInt(&c.SlidesToScroll, parsePositive)
	case "center_padding":
		err = setInt(&c.CenterPadding, parseNonNegative)
	case "autoplay_speed_ms":
		err = setInt(&c.AutoplaySpeedMS, parsePositive)
	case "infinite":
		on := m.isInfinite()
		if err = setBool(&on); err == nil {
			c.Infinite = &on
		}
	case "center_mode", "center":
		err = setBool(&c.CenterMode)
	case "rtl":
		err = setBool(&c.RTL)
	case "fade":
		err = setBool(&c.Fade)
	case "vertical":
		err = setBool(&c.Vertical)
	case "unslick":
		err = setBool(&c.Unslick)
	case "lazy_load", "lazy":
		err = setBool(&c.LazyLoad)
	case "focus_on_select":
		err = setBool(&c.FocusOnSelect)
	case "dots":
		on := c.DotsEnabled()
		if err = setBool(&on); err == nil {
			c.Dots = &on
		}
	case "show_clones", "clones":
		err = setBool(&m.look.ShowClones)
	case "ascii_only", "ascii":
		err = setBool(&m.look.ASCIIOnly)
	case "border_style":
		if !slices.Contains(config.ValidBorderStyles, value) {
			err = fmt.Errorf("unknown border style %q", value)
		} else {
			m.look.BorderStyle = value
		}
	case "theme":
		var p theme.Palette
		if p, err = theme.Lookup(value); err == nil {
			m.look.Palette = p
			m.look.Theme = value
		}
	default:
		err = fmt.Errorf("unknown option %q", name)
	}
	if err != nil {
		return m.fail(fmt.Errorf("set %s: %w", name, err))
	}

	m.settle()
	m.notify("%s = %s", name, value)
	m.logger.Debug("option changed", "name", name, "value", value)
	return nil
}

// settle re-resolves the current slide after the settings changed
func (m *Model) settle() {
	count := len(m.items)
	if count == 0 {
		m.setCurrent(0)
		return
	}
	current := min(max(m.current, 0), count-1)
	if !m.isInfinite() && !m.cfg.CenterMode {
		current = min(current, max(count-m.cfg.SlidesToShow, 0))
	}
	m.setCurrent(current)
}

func parsePositive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("want a positive integer, got %q", value)
	}
	return n, nil
}

func parseNonNegative(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("want a non-negative integer, got %q", value)
	}
	return n, nil
}

// parseSwitch parses a boolean setting; "toggle" flips current
func parseSwitch(value string, current bool) (bool, error) {
	switch strings.ToLower(value) {
	case "toggle":
		return !current, nil
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return current, fmt.Errorf("want true, false, on, off or toggle, got %q", value)
	}
	return b, nil
}
