package config

import (
	"fmt"
	"strings"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// actionDescriptions documents every bindable action, grouped by section
var actionDescriptions = []struct {
	section string
	actions [][2]string
}{
	{"Navigation", [][2]string{
		{"next", "Next slide(s)"},
		{"prev", "Previous slide(s)"},
		{"first", "Jump to first slide"},
		{"last", "Jump to last slide"},
		{"focus_next", "Focus next visible slide"},
		{"focus_prev", "Focus previous visible slide"},
		{"select", "Select focused slide"},
	}},
	{"Dots", dotActionDescriptions()},
	{"Toggles", [][2]string{
		{"toggle_autoplay", "Start/pause autoplay"},
		{"toggle_infinite", "Toggle infinite wrap"},
		{"toggle_rtl", "Toggle right-to-left"},
		{"toggle_center", "Toggle center mode"},
		{"toggle_fade", "Toggle fade"},
		{"toggle_vertical", "Toggle vertical layout"},
		{"toggle_lazy", "Toggle lazy loading"},
		{"toggle_clones", "Show/hide the full track"},
	}},
	{"System", [][2]string{
		{"toggle_help", "Toggle help"},
		{"quit", "Quit"},
	}},
}

func dotActionDescriptions() [][2]string {
	out := make([][2]string, 0, 9)
	for i := 1; i <= 9; i++ {
		out = append(out, [2]string{fmt.Sprintf("dot_%d", i), fmt.Sprintf("Go to page %d", i)})
	}
	return out
}

// AllActions returns every bindable action name
func AllActions() []string {
	var actions []string
	for _, sec := range actionDescriptions {
		for _, a := range sec.actions {
			actions = append(actions, a[0])
		}
	}
	return actions
}

// KeybindRegistry resolves pressed keys to action names
type KeybindRegistry struct {
	keyToAction  map[string]string
	actionToKeys map[string][]string
}

// NewKeybindRegistry builds a registry from the user config.
// When two actions claim the same key, the first one (section order, then
// action name) keeps it.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		keyToAction:  make(map[string]string),
		actionToKeys: make(map[string][]string),
	}

	known := make(map[string]bool)
	for _, a := range AllActions() {
		known[a] = true
	}

	kb := cfg.Keybindings
	for _, m := range []map[string][]string{kb.Navigation, kb.Dots, kb.Toggles, kb.System} {
		for _, action := range sortedKeys(m) {
			if !known[action] {
				continue
			}
			for _, key := range m[action] {
				key = normalizeKey(key)
				if _, taken := r.keyToAction[key]; taken {
					continue
				}
				r.keyToAction[key] = action
				r.actionToKeys[action] = append(r.actionToKeys[action], key)
			}
		}
	}
	return r
}

// GetAction returns the action bound to key, or "" when unbound
func (r *KeybindRegistry) GetAction(key string) string {
	if r == nil {
		return ""
	}
	return r.keyToAction[normalizeKey(key)]
}

// KeysFor returns the keys bound to action
func (r *KeybindRegistry) KeysFor(action string) []string {
	if r == nil {
		return nil
	}
	return r.actionToKeys[action]
}

// normalizeKey lowercases modifiers but keeps the case of single characters,
// so "G" and "g" stay distinct while "Ctrl+C" matches "ctrl+c".
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len([]rune(key)) == 1 {
		return key
	}
	return strings.ToLower(key)
}

// GetKeybindings returns the keybinding sections for help and listing
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	sections := make([]KeybindingSection, 0, len(actionDescriptions))
	for _, sec := range actionDescriptions {
		section := KeybindingSection{Title: sec.section}
		for _, a := range sec.actions {
			addBinding(&section, registry, a[0], a[1])
		}
		sections = append(sections, section)
	}
	return sections
}

// addBinding adds a binding line for action if it has any keys
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.KeysFor(action)
	if len(keys) == 0 {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         strings.Join(keys, ", "),
		Description: description,
	})
}
