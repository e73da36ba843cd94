package carousel

import (
	"slices"
	"strings"
	"time"
)

// DefaultIDPrefix is used for slide element ids when Spec.IDPrefix is empty.
const DefaultIDPrefix = "slide"

// Spec is the configuration snapshot every computation in this package reads.
// It is treated as immutable: nothing here writes to it or to LazyLoadedList.
type Spec struct {
	SlideCount     int `json:"slide_count"`
	SlidesToShow   int `json:"slides_to_show"`
	SlidesToScroll int `json:"slides_to_scroll"`
	CurrentSlide   int `json:"current_slide"`

	Infinite      bool `json:"infinite"`
	CenterMode    bool `json:"center_mode"`
	CenterPadding int  `json:"center_padding"`
	RTL           bool `json:"rtl"`
	Fade          bool `json:"fade"`
	Vertical      bool `json:"vertical"`
	VariableWidth bool `json:"variable_width"`
	Unslick       bool `json:"unslick"`

	// SlideWidth and SlideHeight are in the renderer's units (pixels, cells).
	SlideWidth  int `json:"slide_width"`
	SlideHeight int `json:"slide_height"`

	Speed   time.Duration `json:"speed"`
	CSSEase string        `json:"css_ease"`

	LazyLoad       bool  `json:"lazy_load"`
	LazyLoadedList []int `json:"lazy_loaded_list,omitempty"`

	// FocusOnSelect receives a children command when a slide is activated.
	// Nil disables click delegation.
	FocusOnSelect Handler `json:"-"`

	// IDPrefix namespaces slide ids so several carousels can share a view.
	IDPrefix string `json:"id_prefix,omitempty"`
}

// Validate checks the fields every computation depends on.
func (s Spec) Validate() error {
	switch {
	case s.SlideCount < 0:
		return &ConfigError{Field: "slideCount", Value: s.SlideCount, Reason: "must not be negative"}
	case s.SlidesToShow <= 0:
		return &ConfigError{Field: "slidesToShow", Value: s.SlidesToShow, Reason: "must be at least 1"}
	case s.SlidesToScroll <= 0:
		return &ConfigError{Field: "slidesToScroll", Value: s.SlidesToScroll, Reason: "must be at least 1"}
	case s.SlideWidth < 0:
		return &ConfigError{Field: "slideWidth", Value: s.SlideWidth, Reason: "must not be negative"}
	case s.SlideHeight < 0:
		return &ConfigError{Field: "slideHeight", Value: s.SlideHeight, Reason: "must not be negative"}
	case s.Speed < 0:
		return &ConfigError{Field: "speed", Value: s.Speed, Reason: "must not be negative"}
	case s.CenterPadding < 0:
		return &ConfigError{Field: "centerPadding", Value: s.CenterPadding, Reason: "must not be negative"}
	case strings.HasPrefix(s.IDPrefix, preClonePrefix), strings.HasPrefix(s.IDPrefix, postClonePrefix):
		return &ConfigError{Field: "idPrefix", Value: s.IDPrefix, Reason: "is reserved for clone keys"}
	}
	return nil
}

// IsLazyLoaded reports whether index has already been hydrated by the caller.
func (s Spec) IsLazyLoaded(index int) bool {
	return slices.Contains(s.LazyLoadedList, index)
}

// idPrefix returns the configured id prefix or the default one.
func (s Spec) idPrefix() string {
	if s.IDPrefix == "" {
		return DefaultIDPrefix
	}
	return s.IDPrefix
}

// ceilDiv divides rounding toward positive infinity; b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
