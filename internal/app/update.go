package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/carousel/internal/tape"
)

// AutoplayTickMsg advances the carousel when autoplay is running.
// Ticks from an older autoplay generation are dropped.
type AutoplayTickMsg struct {
	Gen int
}

// TapeStepMsg plays the next queued tape command.
type TapeStepMsg struct{}

// TapeDoneMsg is sent once the tape queue is empty; Err is the failure, if any.
type TapeDoneMsg struct {
	Err error
}

// InputHandler is a function type that handles input messages.
// This allows Update to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, m *Model) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts autoplay and tape playback when configured.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.autoplay {
		cmds = append(cmds, m.scheduleAutoplay())
	}
	if len(m.tapeQueue) > 0 {
		cmds = append(cmds, func() tea.Msg { return TapeStepMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case AutoplayTickMsg:
		if msg.Gen != m.autoplayGen || !m.autoplay || m.paused {
			return m, nil
		}
		m.autoplayStep()
		return m, m.scheduleAutoplay()

	case TapeStepMsg:
		return m, m.tapeStep()

	case TapeDoneMsg:
		if msg.Err != nil {
			_ = m.fail(msg.Err)
		} else {
			m.notify("tape finished")
		}
		return m, nil

	case tea.KeyPressMsg, tea.MouseWheelMsg:
		gen := m.autoplayGen
		if inputHandler == nil {
			return m, nil
		}
		model, cmd := inputHandler(msg, m)
		// restart the ticker when the input changed autoplay state
		if m.autoplayGen != gen && m.autoplay && !m.paused {
			cmd = tea.Batch(cmd, m.scheduleAutoplay())
		}
		return model, cmd
	}
	return m, nil
}

// autoplayStep advances once; a finite carousel that cannot move pauses.
func (m *Model) autoplayStep() {
	before := m.current
	_ = m.Next()
	if m.current == before && !m.isInfinite() {
		m.paused = true
		m.autoplayGen++
		m.notify("autoplay paused at the end")
	}
}

// scheduleAutoplay returns the tick for the current generation.
func (m *Model) scheduleAutoplay() tea.Cmd {
	gen := m.autoplayGen
	return tea.Tick(m.AutoplayInterval(), func(time.Time) tea.Msg {
		return AutoplayTickMsg{Gen: gen}
	})
}

// tapeStep executes queued commands up to the next Sleep.
func (m *Model) tapeStep() tea.Cmd {
	for len(m.tapeQueue) > 0 {
		cmd := m.tapeQueue[0]
		m.tapeQueue = m.tapeQueue[1:]

		if cmd.Type == tape.CommandTypeSleep {
			return tea.Tick(cmd.Delay, func(time.Time) tea.Msg { return TapeStepMsg{} })
		}

		gen := m.autoplayGen
		if err := m.tapeExec.Execute(&cmd); err != nil {
			m.tapeQueue = nil
			return func() tea.Msg { return TapeDoneMsg{Err: err} }
		}
		m.logger.Debug("tape", "line", cmd.Line, "command", cmd.String(), "current", m.current)

		if m.autoplayGen != gen && m.autoplay && !m.paused {
			next := m.tapeStep()
			return tea.Batch(m.scheduleAutoplay(), next)
		}
	}
	return func() tea.Msg { return TapeDoneMsg{} }
}

// TapeRemaining returns the number of queued tape commands
func (m *Model) TapeRemaining() int { return len(m.tapeQueue) }
