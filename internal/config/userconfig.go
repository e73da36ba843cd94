package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// configRelPath is the config file location relative to the XDG config home
const configRelPath = "carousel/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Carousel    CarouselConfig    `toml:"carousel"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Server      ServerConfig      `toml:"server"`
}

// CarouselConfig holds the behaviour settings that become the carousel snapshot
type CarouselConfig struct {
	SlidesToShow    int    `toml:"slides_to_show"`    // Slides visible at once (default: 3)
	SlidesToScroll  int    `toml:"slides_to_scroll"`  // Slides moved per step (default: 1)
	Infinite        *bool  `toml:"infinite"`          // Wrap around at the ends (default: true)
	CenterMode      bool   `toml:"center_mode"`       // Center the current slide
	CenterPadding   int    `toml:"center_padding"`    // Extra cells shown around the centered window
	RTL             bool   `toml:"rtl"`               // Right-to-left ordering
	Fade            bool   `toml:"fade"`              // Fade between single slides instead of scrolling
	Vertical        bool   `toml:"vertical"`          // Stack slides vertically
	VariableWidth   bool   `toml:"variable_width"`    // Let slide content decide its width
	Unslick         bool   `toml:"unslick"`           // Plain list: no clones, no wrap-around track
	SpeedMS         int    `toml:"speed_ms"`          // Transition speed in milliseconds (default: 500)
	CSSEase         string `toml:"css_ease"`          // Transition curve (default: ease)
	LazyLoad        bool   `toml:"lazy_load"`         // Render placeholders until a slide has been visible
	FocusOnSelect   bool   `toml:"focus_on_select"`   // Selecting a slide makes it current
	Autoplay        bool   `toml:"autoplay"`          // Advance automatically
	AutoplaySpeedMS int    `toml:"autoplay_speed_ms"` // Delay between automatic advances (default: 3000)
	Dots            *bool  `toml:"dots"`              // Show pagination dots (default: true)
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme       string `toml:"theme"`        // Color theme name (e.g., dracula, nord, my-custom-theme)
	ASCIIOnly   bool   `toml:"ascii_only"`   // Use ASCII glyphs instead of Nerd Font / Unicode
	BorderStyle string `toml:"border_style"` // Slide border style: rounded, normal, thick, double, hidden, block, ascii
	ShowClones  bool   `toml:"show_clones"`  // Draw the whole track, clones included
	SlideHeight int    `toml:"slide_height"` // Slide box height in rows (default: 7, min: 3)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Navigation map[string][]string `toml:"navigation"`
	Dots       map[string][]string `toml:"dots"`
	Toggles    map[string][]string `toml:"toggles"`
	System     map[string][]string `toml:"system"`
}

// ServerConfig holds remote serving and logging settings
type ServerConfig struct {
	LogLevel   string `toml:"log_level"`    // Log level: debug, info, warn, error (default: info)
	LogFile    string `toml:"log_file"`     // Also write logs to this file (default: none)
	SSHHost    string `toml:"ssh_host"`     // SSH listen host (default: localhost)
	SSHPort    string `toml:"ssh_port"`     // SSH listen port (default: 2222)
	SSHKeyPath string `toml:"ssh_key_path"` // Host key path (default: generated under the XDG data dir)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	infinite := true
	dots := true
	return &UserConfig{
		Carousel: CarouselConfig{
			SlidesToShow:    DefaultSlidesToShow,
			SlidesToScroll:  DefaultSlidesToScroll,
			Infinite:        &infinite,
			SpeedMS:         int(DefaultSpeed.Milliseconds()),
			CSSEase:         DefaultCSSEase,
			AutoplaySpeedMS: int(DefaultAutoplaySpeed.Milliseconds()),
			Dots:            &dots,
		},
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
			SlideHeight: DefaultSlideHeight,
		},
		Server: ServerConfig{
			LogLevel: "info",
			SSHHost:  "localhost",
			SSHPort:  "2222",
		},
		Keybindings: KeybindingsConfig{
			Navigation: map[string][]string{
				"next":       {"right", "l"},
				"prev":       {"left", "h"},
				"first":      {"home", "g"},
				"last":       {"end", "G"},
				"focus_next": {"tab"},
				"focus_prev": {"shift+tab"},
				"select":     {"enter", "space"},
			},
			Dots: getDefaultDotKeybinds(),
			Toggles: map[string][]string{
				"toggle_autoplay": {"p"},
				"toggle_infinite": {"i"},
				"toggle_rtl":      {"r"},
				"toggle_center":   {"c"},
				"toggle_fade":     {"f"},
				"toggle_vertical": {"v"},
				"toggle_lazy":     {"z"},
				"toggle_clones":   {"x"},
			},
			System: map[string][]string{
				"toggle_help": {"?"},
				"quit":        {"q", "ctrl+c"},
			},
		},
	}
}

// getDefaultDotKeybinds binds the number row to the first nine dots
func getDefaultDotKeybinds() map[string][]string {
	dots := make(map[string][]string, 9)
	for i := 1; i <= 9; i++ {
		dots[fmt.Sprintf("dot_%d", i)] = []string{fmt.Sprintf("%d", i)}
	}
	return dots
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}
	return LoadUserConfigFile(configPath)
}

// LoadUserConfigFile loads, fills and validates the configuration at path
func LoadUserConfigFile(path string) (*UserConfig, error) {
	// #nosec G304 - path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingCarousel(&cfg, defaultCfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingServer(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}

	if validation.HasWarnings() {
		for _, warn := range validation.Warnings {
			fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", warn.Field, warn.Key, warn.Message)
		}
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := WriteConfigFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfigFile writes cfg to path with a commented header
func WriteConfigFile(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Carousel Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("# For keybindings documentation, run: carousel keybinds list\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# CAROUSEL SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# slides_to_show / slides_to_scroll: at least 1\n")
	sb.WriteString("# infinite: wrap around at both ends (clones are drawn at the edges)\n")
	sb.WriteString("# center_mode: keep the current slide centered\n")
	sb.WriteString("# fade: cross-fade single slides; forces slides_to_show = 1 visually\n")
	sb.WriteString("# unslick: draw the slides as a plain list without clones\n")
	sb.WriteString("# lazy_load: draw placeholders until a slide has been in view\n")
	sb.WriteString("# autoplay_speed_ms: minimum 250\n")
	sb.WriteString("#\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# border_style: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   Custom themes: ~/.config/carousel/themes/*.json\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingCarousel fills in any missing carousel settings with defaults
func fillMissingCarousel(cfg, defaultCfg *UserConfig) {
	c, d := &cfg.Carousel, defaultCfg.Carousel

	if c.SlidesToShow == 0 {
		c.SlidesToShow = d.SlidesToShow
	}
	if c.SlidesToScroll == 0 {
		c.SlidesToScroll = d.SlidesToScroll
	}
	// Infinite and Dots default to true (nil means use default)
	if c.Infinite == nil {
		c.Infinite = d.Infinite
	}
	if c.Dots == nil {
		c.Dots = d.Dots
	}
	if c.SpeedMS == 0 {
		c.SpeedMS = d.SpeedMS
	}
	if c.CSSEase == "" {
		c.CSSEase = d.CSSEase
	}
	if c.AutoplaySpeedMS == 0 {
		c.AutoplaySpeedMS = d.AutoplaySpeedMS
	} else if c.AutoplaySpeedMS < int(MinAutoplaySpeed.Milliseconds()) {
		c.AutoplaySpeedMS = int(MinAutoplaySpeed.Milliseconds())
	}
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}

	// Slide height (min: 3 for border plus one row of content)
	if cfg.Appearance.SlideHeight <= 0 {
		cfg.Appearance.SlideHeight = defaultCfg.Appearance.SlideHeight
	} else if cfg.Appearance.SlideHeight < 3 {
		cfg.Appearance.SlideHeight = 3
	}
}

// fillMissingServer fills in any missing server settings with defaults
func fillMissingServer(cfg, defaultCfg *UserConfig) {
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = defaultCfg.Server.LogLevel
	}
	if cfg.Server.SSHHost == "" {
		cfg.Server.SSHHost = defaultCfg.Server.SSHHost
	}
	if cfg.Server.SSHPort == "" {
		cfg.Server.SSHPort = defaultCfg.Server.SSHPort
	}
	// SSHKeyPath defaults to empty (use XDG data path), so we don't override it
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Navigation == nil {
		cfg.Keybindings.Navigation = make(map[string][]string)
	}
	if cfg.Keybindings.Dots == nil {
		cfg.Keybindings.Dots = make(map[string][]string)
	}
	if cfg.Keybindings.Toggles == nil {
		cfg.Keybindings.Toggles = make(map[string][]string)
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = make(map[string][]string)
	}

	fillMapDefaults(cfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)
	fillMapDefaults(cfg.Keybindings.Dots, defaultCfg.Keybindings.Dots)
	fillMapDefaults(cfg.Keybindings.Toggles, defaultCfg.Keybindings.Toggles)
	fillMapDefaults(cfg.Keybindings.System, defaultCfg.Keybindings.System)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
