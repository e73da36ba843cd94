package carousel

// Dot is one pagination indicator covering the slide range [Left, Right].
type Dot struct {
	Index      int     `json:"index"`
	Left       int     `json:"left_bound"`
	Right      int     `json:"right_bound"`
	Active     bool    `json:"active"`
	ControlsID string  `json:"controls_id,omitempty"`
	Select     Command `json:"select"`
}

// Activate delivers the dot's command to h. Any default focus handling on the
// clicked control is the caller's to suppress before calling this.
func (d Dot) Activate(h Handler) {
	if h != nil {
		h.HandleCommand(d.Select)
	}
}

// DotCount returns the number of pagination dots. It never goes below zero,
// which happens when a finite carousel has fewer slides than it shows.
func DotCount(s Spec) int {
	if s.SlidesToScroll <= 0 {
		return 0
	}
	var n int
	if s.Infinite {
		n = ceilDiv(s.SlideCount, s.SlidesToScroll)
	} else {
		n = ceilDiv(s.SlideCount-s.SlidesToShow, s.SlidesToScroll) + 1
	}
	return max(n, 0)
}

// BuildDots computes the dot directives. Each dot reads the leaf id of the
// slide at its own position, so slides must have at least DotCount entries.
func BuildDots(s Spec, slides []Slide) ([]Dot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	count := DotCount(s)
	if count > len(slides) {
		return nil, &ConfigError{
			Field:  "slides",
			Value:  len(slides),
			Reason: "fewer slides than pagination dots",
			Err:    &ContentLookupError{Index: len(slides), Count: len(slides), Source: "dots"},
		}
	}

	dots := make([]Dot, count)
	for i := range dots {
		left := i * s.SlidesToScroll
		right := left + s.SlidesToScroll - 1
		dots[i] = Dot{
			Index:      i,
			Left:       left,
			Right:      right,
			Active:     s.CurrentSlide >= left && s.CurrentSlide <= right,
			ControlsID: slides[i].Leaf.ID,
			Select:     newCommand(KindDots, i, s),
		}
	}
	return dots, nil
}

// ActiveDot returns the index of the active dot, or -1 when none is active.
func ActiveDot(dots []Dot) int {
	for _, d := range dots {
		if d.Active {
			return d.Index
		}
	}
	return -1
}

// RenderDots applies the two consumer hooks: paging renders one dot's
// control and wrap joins them into the container.
func RenderDots[T any](dots []Dot, paging func(Dot) T, wrap func([]T) T) T {
	parts := make([]T, len(dots))
	for i, d := range dots {
		parts[i] = paging(d)
	}
	return wrap(parts)
}
