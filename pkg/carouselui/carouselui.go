// Package carouselui provides the interactive carousel as a Bubble Tea model
// that can be embedded in other applications or served over SSH and the web.
//
// # Basic Usage
//
// Create a carousel over generated demo slides:
//
//	model := carouselui.New()
//	p := tea.NewProgram(model, carouselui.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Slides
//
//	model := carouselui.New(
//		carouselui.WithTexts("one", "two", "three", "four"),
//		carouselui.WithTheme("dracula"),
//		carouselui.WithSlidesToShow(2),
//	)
//
// # Using with sip (Web Terminal)
//
//	server := sip.NewServer(sip.DefaultConfig())
//	server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
//		return carouselui.New(), carouselui.ProgramOptions()
//	})
package carouselui

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/carousel/internal/app"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/input"
	"github.com/Gaurav-Gosain/carousel/internal/logging"
	"github.com/Gaurav-Gosain/carousel/internal/tape"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
)

// Model is the interactive carousel; it implements tea.Model.
type Model = app.Model

// Options configures a carousel instance.
type Options struct {
	// Items are the slides. Leave empty for generated demo slides.
	Items []carousel.Item

	// Theme is a bubbletint theme ID. Leave empty for standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Nerd Font icons.
	ASCIIOnly bool

	// BorderStyle sets the slide border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// ShowClones draws the whole track, clones included.
	ShowClones bool

	// SlidesToShow overrides the configured window size when > 0.
	SlidesToShow int

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// Tape is played back once the program starts.
	Tape []tape.Command

	// Logger receives debug traces. Nil discards them.
	Logger *log.Logger

	// UserConfig is a custom user configuration. If nil, the user's file or defaults are used.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring the carousel.
type Option func(*Options)

// WithItems sets the slides.
func WithItems(items ...carousel.Item) Option {
	return func(o *Options) {
		o.Items = items
	}
}

// WithTexts sets one slide per text.
func WithTexts(texts ...string) Option {
	return func(o *Options) {
		o.Items = app.ItemsFromStrings(texts)
	}
}

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only mode (no Nerd Font icons).
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the slide border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithShowClones draws the clones around the visible window.
func WithShowClones(enabled bool) Option {
	return func(o *Options) {
		o.ShowClones = enabled
	}
}

// WithSlidesToShow sets how many slides are visible at once.
func WithSlidesToShow(n int) Option {
	return func(o *Options) {
		o.SlidesToShow = max(n, 1)
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithTape queues tape commands for playback.
func WithTape(cmds []tape.Command) Option {
	return func(o *Options) {
		o.Tape = cmds
	}
}

// WithLogger sets the logger for debug traces.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// New creates a carousel model with the given options.
// This is the main entry point for using the carousel as a library.
func New(opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

// PTY reports a session's terminal size.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a carousel sized to a PTY session.
func NewForPTY(pty PTY, opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()
	return newModel(options)
}

var registerInput sync.Once

// newModel builds the model on a private copy of the user config with the
// appearance options applied, so concurrent sessions never share settings.
func newModel(options Options) *Model {
	registerInput.Do(func() { app.SetInputHandler(input.HandleInput) })

	logger := options.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var cfg config.UserConfig
	if options.UserConfig != nil {
		cfg = *options.UserConfig
	} else if loaded, err := config.LoadUserConfig(); err == nil {
		cfg = *loaded
	} else {
		logger.Warn("failed to load config, using defaults", "err", err)
		cfg = *config.DefaultConfig()
	}

	if options.SlidesToShow > 0 {
		cfg.Carousel.SlidesToShow = options.SlidesToShow
	}
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:   options.ASCIIOnly,
		BorderStyle: options.BorderStyle,
		ShowClones:  options.ShowClones,
		ThemeName:   options.Theme,
	}, &cfg)

	return app.New(app.Options{
		Items:           options.Items,
		Config:          &cfg,
		KeybindRegistry: config.NewKeybindRegistry(&cfg),
		Logger:          logger,
		Width:           options.Width,
		Height:          options.Height,
		Tape:            options.Tape,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// the carousel:
//
//	p := tea.NewProgram(model, carouselui.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion;
// the carousel only reacts to the wheel.
func FilterMouseMotion(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); ok {
		return nil
	}
	return msg
}

// Config re-exports the config loaders so embedders need no internal imports.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
