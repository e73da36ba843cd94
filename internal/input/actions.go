package input

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/carousel/internal/app"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(m *app.Model) tea.Cmd

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Navigation
	d.Register("next", ignoreErr((*app.Model).Next))
	d.Register("prev", ignoreErr((*app.Model).Prev))
	d.Register("first", ignoreErr((*app.Model).First))
	d.Register("last", ignoreErr((*app.Model).Last))
	d.Register("focus_next", func(m *app.Model) tea.Cmd { m.MoveFocus(1); return nil })
	d.Register("focus_prev", func(m *app.Model) tea.Cmd { m.MoveFocus(-1); return nil })
	d.Register("select", ignoreErr((*app.Model).ActivateFocused))

	// Dots (1-9)
	for i := 1; i <= 9; i++ {
		page := i - 1 // Convert to 0-based page
		d.Register(fmt.Sprintf("dot_%d", i), func(m *app.Model) tea.Cmd {
			_ = m.GoToDot(page)
			return nil
		})
	}

	// Toggles
	d.Register("toggle_autoplay", func(m *app.Model) tea.Cmd { m.TogglePause(); return nil })
	d.Register("toggle_infinite", toggle("infinite"))
	d.Register("toggle_rtl", toggle("rtl"))
	d.Register("toggle_center", toggle("center_mode"))
	d.Register("toggle_fade", toggle("fade"))
	d.Register("toggle_vertical", toggle("vertical"))
	d.Register("toggle_lazy", toggle("lazy_load"))
	d.Register("toggle_clones", toggle("show_clones"))

	// System
	d.Register("toggle_help", func(m *app.Model) tea.Cmd { m.ToggleHelp(); return nil })
	d.Register("quit", func(*app.Model) tea.Cmd { return tea.Quit })
}

// ignoreErr adapts a model action; failures are already on the status line
func ignoreErr(action func(*app.Model) error) ActionHandler {
	return func(m *app.Model) tea.Cmd {
		_ = action(m)
		return nil
	}
}

// toggle flips a boolean option
func toggle(option string) ActionHandler {
	return func(m *app.Model) tea.Cmd {
		_ = m.SetOption(option, "toggle")
		return nil
	}
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, m *app.Model) tea.Cmd {
	if handler, ok := d.handlers[action]; ok {
		return handler(m)
	}
	return nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}
