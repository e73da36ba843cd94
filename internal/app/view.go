package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/render"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
)

// Scene collects the frame the renderer draws
func (m *Model) Scene() render.Scene {
	s := m.Spec()
	sc := render.Scene{
		Spec:    s,
		Width:   m.Width,
		Height:  m.Height,
		Look:    m.look,
		CanPrev: m.isInfinite() || m.current > 0,
		CanNext: m.canAdvance(s),
		Status: render.Status{
			Current:  m.current,
			Count:    len(m.items),
			Loaded:   -1,
			Autoplay: m.autoplay,
			Paused:   m.paused,
			Selected: m.selected,
			Message:  m.message,
			Err:      m.lastErr,
			ID:       m.ShortID(),
		},
	}
	if m.cfg.LazyLoad {
		sc.Status.Loaded = len(m.lazyLoaded)
	}
	if m.showHelp {
		sc.Help = config.GetKeybindings(m.registry)
		return sc
	}

	track, err := m.Track()
	if err != nil {
		sc.Status.Err = err
		return sc
	}
	sc.Track = m.Visible(track)
	if d, ok := m.Focused(sc.Track); ok && m.focus >= 0 {
		sc.FocusKey = d.Key
	}

	dots, err := m.Dots()
	if err != nil {
		sc.Status.Err = err
	}
	sc.Dots = dots
	return sc
}

// canAdvance reports whether next would move, without moving
func (m *Model) canAdvance(s carousel.Spec) bool {
	if m.isInfinite() {
		return true
	}
	next := carousel.ResolveSlide(s, carousel.ChangeSlide(s, carousel.Command{Kind: carousel.KindNext}))
	return next != m.current
}

// View renders the current frame.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(render.View(m.Scene()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}
