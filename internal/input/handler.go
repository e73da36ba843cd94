// Package input maps key presses and mouse wheel events to carousel actions.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/carousel/internal/app"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, m *app.Model) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, HandleKeyPress(msg, m)
	case tea.MouseWheelMsg:
		return m, handleMouseWheel(msg, m)
	}
	return m, nil
}

// HandleKeyPress resolves the key through the keybind registry and dispatches it.
// While help is open every key other than quit closes it.
func HandleKeyPress(msg tea.KeyPressMsg, m *app.Model) tea.Cmd {
	action := m.Registry().GetAction(msg.String())

	if m.ShowingHelp() && action != "quit" {
		m.ToggleHelp()
		return nil
	}
	if action == "" {
		return nil
	}
	return GetDispatcher().Dispatch(action, m)
}

// handleMouseWheel scrolls the carousel one step per wheel notch
func handleMouseWheel(msg tea.MouseWheelMsg, m *app.Model) tea.Cmd {
	if m.ShowingHelp() {
		return nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		_ = m.Prev()
	case tea.MouseWheelDown:
		_ = m.Next()
	}
	return nil
}
