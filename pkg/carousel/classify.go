package carousel

import (
	"fmt"
	"strings"
)

// Class names emitted by Classes.Names.
const (
	ClassSlide   = "carousel-slide"
	ClassActive  = "carousel-active"
	ClassCenter  = "carousel-center"
	ClassCloned  = "carousel-cloned"
	ClassCurrent = "carousel-current"
)

// Classes is the visual classification of one slide.
type Classes struct {
	Slide   bool `json:"slide"`
	Active  bool `json:"active"`
	Center  bool `json:"center"`
	Cloned  bool `json:"cloned"`
	Current bool `json:"current"`
}

// Names returns the class names of the flags that are set, in a fixed order.
func (c Classes) Names() []string {
	names := make([]string, 0, 5)
	if c.Slide {
		names = append(names, ClassSlide)
	}
	if c.Active {
		names = append(names, ClassActive)
	}
	if c.Center {
		names = append(names, ClassCenter)
	}
	if c.Cloned {
		names = append(names, ClassCloned)
	}
	if c.Current {
		names = append(names, ClassCurrent)
	}
	return names
}

func (c Classes) String() string {
	return strings.Join(c.Names(), " ")
}

// ClassifySlide computes the classification of the slide at content position
// index. Clone positions (negative or >= SlideCount) are accepted.
//
// Under RTL the index is mirrored first and the mirrored value is used for
// every flag, current included.
func ClassifySlide(s Spec, index int) Classes {
	if s.RTL {
		index = s.SlideCount - 1 - index
	}

	c := Classes{
		Slide:  true,
		Cloned: index < 0 || index >= s.SlideCount,
	}

	switch {
	case s.CenterMode:
		centerOffset := max(s.SlidesToShow, 1) / 2
		if s.SlideCount > 0 {
			c.Center = (index-s.CurrentSlide)%s.SlideCount == 0
		}
		// an empty window has no active slides
		c.Active = s.SlidesToShow > 0 &&
			index > s.CurrentSlide-centerOffset-1 && index <= s.CurrentSlide+centerOffset
	default:
		c.Active = s.CurrentSlide <= index && index < s.CurrentSlide+s.SlidesToShow
	}

	c.Current = index == s.CurrentSlide
	return c
}

// Style holds the inline style overrides for one slide. Nil fields are unset.
type Style struct {
	Width      *int     `json:"width,omitempty"`
	Position   string   `json:"position,omitempty"`
	Left       *int     `json:"left,omitempty"`
	Top        *int     `json:"top,omitempty"`
	Opacity    *float64 `json:"opacity,omitempty"`
	Transition string   `json:"transition,omitempty"`
}

// Visible reports whether the slide is not faded out.
func (st Style) Visible() bool {
	return st.Opacity == nil || *st.Opacity > 0
}

// SlideStyle computes the inline style for the slide at index. Fade offsets
// use the raw index, not the RTL-mirrored one.
func SlideStyle(s Spec, index int) Style {
	var st Style

	if !s.VariableWidth {
		st.Width = ptr(s.SlideWidth)
	}

	if s.Fade {
		st.Position = "relative"
		if s.Vertical {
			st.Top = ptr(-index * s.SlideHeight)
		} else {
			st.Left = ptr(-index * s.SlideWidth)
		}
		opacity := 0.0
		if s.CurrentSlide == index {
			opacity = 1
		}
		st.Opacity = &opacity
		st.Transition = transition(s)
	}

	return st
}

func transition(s Spec) string {
	ms := s.Speed.Milliseconds()
	return fmt.Sprintf("opacity %dms %s, visibility %dms %s", ms, s.CSSEase, ms, s.CSSEase)
}

func ptr[T any](v T) *T { return &v }
