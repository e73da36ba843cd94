// Package app provides the interactive carousel: it owns the state the
// carousel core reads (current slide, lazy-load history, autoplay) and turns
// commands from keys, dots, slides and tape scripts into moves.
package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/logging"
	"github.com/Gaurav-Gosain/carousel/internal/render"
	"github.com/Gaurav-Gosain/carousel/internal/tape"
	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/google/uuid"
)

// Options configures a new Model
type Options struct {
	// Items are the slides; empty gives DefaultItemCount generated ones
	Items []carousel.Item

	// Config supplies the carousel and appearance settings (default: config.DefaultConfig)
	Config *config.UserConfig

	// KeybindRegistry resolves key presses (default: built from Config)
	KeybindRegistry *config.KeybindRegistry

	// Logger receives debug traces of every handled command
	Logger *log.Logger

	// Width and Height are the initial size (set automatically if 0)
	Width  int
	Height int

	// Tape is played back once the program starts
	Tape []tape.Command
}

// Model is the carousel orchestrator and the bubbletea model.
type Model struct {
	Width  int
	Height int

	items  []carousel.Item
	slides []carousel.Slide
	cfg    config.CarouselConfig

	current    int
	lazyLoaded []int
	selected   int

	autoplay    bool
	paused      bool
	autoplayGen int

	// focus is a position in the visible window; -1 follows the current slide
	focus int

	showHelp   bool
	message    string
	lastErr    error
	instanceID string

	// look is this view's appearance; sessions never share it
	look render.Look

	registry *config.KeybindRegistry
	logger   *log.Logger

	tapeQueue []tape.Command
	tapeExec  *tape.CommandExecutor
}

// New creates a Model. The first visible window is hydrated immediately.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	items := opts.Items
	if len(items) == 0 {
		items = GenerateItems(config.DefaultItemCount)
	}
	registry := opts.KeybindRegistry
	if registry == nil {
		registry = config.NewKeybindRegistry(cfg)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := &Model{
		Width:      opts.Width,
		Height:     opts.Height,
		items:      items,
		slides:     carousel.SlidesFrom(items...),
		cfg:        cfg.Carousel,
		selected:   -1,
		focus:      -1,
		autoplay:   cfg.Carousel.Autoplay,
		instanceID: uuid.New().String(),
		registry:   registry,
		tapeQueue:  slices.Clone(opts.Tape),
	}
	m.logger = logger.With("carousel", m.ShortID())
	m.look = render.Look{AppearanceConfig: cfg.Appearance}
	palette, err := theme.Lookup(cfg.Appearance.Theme)
	if err != nil {
		m.logger.Warn("failed to load theme", "theme", cfg.Appearance.Theme, "err", err)
	}
	m.look.Palette = palette
	m.tapeExec = tape.NewCommandExecutor(m)
	m.loadVisible()
	return m
}

// GenerateItems returns n placeholder items titled "Slide 1".."Slide n"
func GenerateItems(n int) []carousel.Item {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("Slide %d", i+1)
	}
	return ItemsFromStrings(texts)
}

// ItemsFromStrings turns text lines into items with stable ids
func ItemsFromStrings(texts []string) []carousel.Item {
	items := make([]carousel.Item, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		i := len(items)
		items = append(items, carousel.Item{
			ID:   fmt.Sprintf("item-%d", i),
			Body: t,
		})
	}
	return items
}

// ShortID is the first block of the instance id, used to namespace slide ids
func (m *Model) ShortID() string {
	id, _, _ := strings.Cut(m.instanceID, "-")
	return id
}

// InstanceID returns the full per-instance id
func (m *Model) InstanceID() string { return m.instanceID }

// Items returns the carousel items
func (m *Model) Items() []carousel.Item { return m.items }

// Config returns the live carousel settings
func (m *Model) Config() config.CarouselConfig { return m.cfg }

// Look returns the appearance this view draws with
func (m *Model) Look() render.Look { return m.look }

// Registry returns the keybind registry
func (m *Model) Registry() *config.KeybindRegistry { return m.registry }

// CurrentSlide returns the index of the current slide
func (m *Model) CurrentSlide() int { return m.current }

// LazyLoaded returns the hydrated slide indices in ascending order
func (m *Model) LazyLoaded() []int { return slices.Clone(m.lazyLoaded) }

// Selected returns the last activated slide, or -1
func (m *Model) Selected() int { return m.selected }

// Autoplay reports whether autoplay is on and whether it is paused
func (m *Model) Autoplay() (on, paused bool) { return m.autoplay, m.paused }

// Err returns the last error raised by an action, if any
func (m *Model) Err() error { return m.lastErr }

// Spec builds the snapshot the core computes from
func (m *Model) Spec() carousel.Spec {
	s := m.cfg.Spec(len(m.items))
	s.CurrentSlide = m.current
	s.LazyLoadedList = slices.Clone(m.lazyLoaded)
	s.SlideWidth = m.slideWidth()
	s.SlideHeight = m.look.Height()
	s.IDPrefix = "carousel-" + m.ShortID()
	if m.cfg.FocusOnSelect {
		s.FocusOnSelect = m
	}
	return s
}

// slideWidth divides the terminal width between the visible slides
func (m *Model) slideWidth() int {
	width := m.Width
	if width <= 0 {
		width = config.FallbackWidth
	}
	show := max(m.cfg.SlidesToShow, 1)
	if m.cfg.Fade || m.cfg.Vertical {
		show = 1
	}
	// two arrow columns with a space each
	return max((width-4)/show, config.MinSlideWidth)
}

// Track assembles the full track for the current state
func (m *Model) Track() ([]carousel.Directive, error) {
	s := m.Spec()
	return carousel.BuildTrack(s, m.slides, carousel.DefaultBounds(s))
}

// Dots builds the pagination dots, or nil when dots are disabled
func (m *Model) Dots() ([]carousel.Dot, error) {
	if !m.cfg.DotsEnabled() {
		return nil, nil
	}
	return carousel.BuildDots(m.Spec(), m.slides)
}

// Visible filters track down to what is on screen: the opaque slide when
// fading, the active window otherwise, or everything when clones are shown.
func (m *Model) Visible(track []carousel.Directive) []carousel.Directive {
	if m.look.ShowClones {
		return track
	}
	out := make([]carousel.Directive, 0, m.cfg.SlidesToShow+1)
	for _, d := range track {
		if m.cfg.Fade {
			if d.Style.Visible() {
				out = append(out, d)
			}
			continue
		}
		if d.Classes.Active {
			out = append(out, d)
		}
	}
	return out
}

// loadVisible merges the on-demand lazy slides into the history
func (m *Model) loadVisible() {
	if !m.cfg.LazyLoad {
		return
	}
	count := len(m.items)
	for _, i := range carousel.OnDemandLazySlides(m.Spec()) {
		if i < 0 || i >= count || slices.Contains(m.lazyLoaded, i) {
			continue
		}
		m.lazyLoaded = append(m.lazyLoaded, i)
	}
	slices.Sort(m.lazyLoaded)
}

// setCurrent moves to index and hydrates the new window
func (m *Model) setCurrent(index int) {
	m.current = index
	m.focus = -1
	m.loadVisible()
}

// fail records err for the status line and returns it
func (m *Model) fail(err error) error {
	m.lastErr = err
	if err != nil {
		m.logger.Warn("action failed", "err", err)
	}
	return err
}

// notify sets the status line message
func (m *Model) notify(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.lastErr = nil
}

// AutoplayInterval returns the delay between automatic advances
func (m *Model) AutoplayInterval() time.Duration {
	return m.cfg.AutoplayInterval()
}
