package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationIssue describes one problem found in the user config
type ValidationIssue struct {
	Field   string // config section, e.g. "carousel"
	Key     string
	Message string
}

// ValidationResult collects fatal errors and non-fatal warnings
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any fatal issue was found
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any warning was found
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidLogLevels lists the accepted server.log_level values
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidateConfig checks a filled-in configuration
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}
	validateCarousel(cfg.Carousel, v)
	validateAppearance(cfg.Appearance, v)
	validateServer(cfg.Server, v)
	validateKeybindings(cfg.Keybindings, v)
	return v
}

func validateCarousel(c CarouselConfig, v *ValidationResult) {
	if c.SlidesToShow < 1 {
		v.addError("carousel", "slides_to_show", "must be at least 1, got %d", c.SlidesToShow)
	}
	if c.SlidesToScroll < 1 {
		v.addError("carousel", "slides_to_scroll", "must be at least 1, got %d", c.SlidesToScroll)
	}
	if c.SpeedMS < 0 {
		v.addError("carousel", "speed_ms", "must not be negative, got %d", c.SpeedMS)
	}
	if c.CenterPadding < 0 {
		v.addError("carousel", "center_padding", "must not be negative, got %d", c.CenterPadding)
	}

	if c.SlidesToScroll > c.SlidesToShow && c.SlidesToShow >= 1 {
		v.addWarning("carousel", "slides_to_scroll", "scrolling %d slides while showing %d skips slides", c.SlidesToScroll, c.SlidesToShow)
	}
	if c.Fade && c.SlidesToShow > 1 {
		v.addWarning("carousel", "fade", "fade shows one slide at a time; slides_to_show = %d is ignored visually", c.SlidesToShow)
	}
	if c.CenterPadding > 0 && !c.CenterMode {
		v.addWarning("carousel", "center_padding", "has no effect without center_mode")
	}
}

func validateAppearance(a AppearanceConfig, v *ValidationResult) {
	if a.BorderStyle != "" && !slices.Contains(ValidBorderStyles, a.BorderStyle) {
		v.addError("appearance", "border_style", "unknown style %q (options: %s)", a.BorderStyle, strings.Join(ValidBorderStyles, ", "))
	}
}

func validateServer(s ServerConfig, v *ValidationResult) {
	if s.LogLevel != "" && !slices.Contains(ValidLogLevels, strings.ToLower(s.LogLevel)) {
		v.addError("server", "log_level", "unknown level %q (options: %s)", s.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
}

func validateKeybindings(kb KeybindingsConfig, v *ValidationResult) {
	known := make(map[string]bool)
	for _, a := range AllActions() {
		known[a] = true
	}

	owner := make(map[string]string)
	sections := []struct {
		name string
		m    map[string][]string
	}{
		{"keybindings.navigation", kb.Navigation},
		{"keybindings.dots", kb.Dots},
		{"keybindings.toggles", kb.Toggles},
		{"keybindings.system", kb.System},
	}
	for _, sec := range sections {
		for _, action := range sortedKeys(sec.m) {
			if !known[action] {
				v.addWarning(sec.name, action, "unknown action, ignored")
				continue
			}
			for _, key := range sec.m[action] {
				if prev, dup := owner[key]; dup && prev != action {
					v.addWarning(sec.name, action, "key %q is also bound to %s; the first binding wins", key, prev)
					continue
				}
				owner[key] = action
			}
		}
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
