package carousel

// Item is the leaf content of a slide as supplied by the caller.
type Item struct {
	// ID links dots to the slide they control. Optional.
	ID string `json:"id,omitempty"`
	// Key overrides the synthetic index in clone keys. Optional.
	Key   string `json:"key,omitempty"`
	Class string `json:"class,omitempty"`
	Body  any    `json:"body,omitempty"`

	// OnActivate runs before the focus-on-select handler when the slide is activated.
	OnActivate func() `json:"-"`
}

// Frame is one wrapper layer around a slide's leaf.
type Frame struct {
	Class string `json:"class,omitempty"`
}

// Slide is a content item with its two wrapper layers. The leaf is reached
// directly instead of walking an arbitrary tree.
type Slide struct {
	Outer Frame `json:"outer"`
	Inner Frame `json:"inner"`
	Leaf  Item  `json:"leaf"`
}

// NewSlide wraps an item with empty frames.
func NewSlide(item Item) Slide {
	return Slide{Leaf: item}
}

// SlidesFrom wraps every item with empty frames.
func SlidesFrom(items ...Item) []Slide {
	slides := make([]Slide, len(items))
	for i, it := range items {
		slides[i] = NewSlide(it)
	}
	return slides
}
