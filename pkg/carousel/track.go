package carousel

import (
	"fmt"
	"slices"
	"strings"
)

// Bounds carries the externally computed integers the track needs: the lazy
// visible window [LazyStart, LazyEnd) and the number of pre-clones.
type Bounds struct {
	LazyStart int `json:"lazy_start"`
	LazyEnd   int `json:"lazy_end"`
	PreClones int `json:"pre_clones"`
}

// DefaultBounds derives Bounds from s with the lazy window helpers.
func DefaultBounds(s Spec) Bounds {
	return Bounds{
		LazyStart: LazyStartIndex(s),
		LazyEnd:   LazyEndIndex(s),
		PreClones: PreCloneCount(s),
	}
}

func (b Bounds) contains(index int) bool {
	return b.LazyStart <= index && index < b.LazyEnd
}

// Placement tells where on the track a directive sits.
type Placement int

const (
	PlacementReal Placement = iota
	PlacementPreClone
	PlacementPostClone
)

func (p Placement) String() string {
	switch p {
	case PlacementPreClone:
		return "pre-clone"
	case PlacementPostClone:
		return "post-clone"
	default:
		return "real"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Directive is one rendered element of the track.
type Directive struct {
	Key       string    `json:"key"`
	ID        string    `json:"id,omitempty"`
	Index     int       `json:"index"`
	Source    int       `json:"source"`
	Placement Placement `json:"placement"`

	// Slide is the zero value when the directive is a placeholder.
	Slide    Slide `json:"slide"`
	Hydrated bool  `json:"hydrated"`

	Classes   Classes `json:"classes"`
	ClassName string  `json:"class_name"`
	Style     Style   `json:"style"`

	Hidden   bool `json:"aria_hidden"`
	TabIndex int  `json:"tab_index"`

	// Select is delivered to the focus-on-select handler on activation.
	Select Command `json:"select"`

	onActivate func()
	handler    Handler
}

// Placeholder reports whether the directive stands in for content that has
// not been hydrated yet.
func (d Directive) Placeholder() bool { return !d.Hydrated }

// Cloned reports whether the directive is a synthetic duplicate.
func (d Directive) Cloned() bool { return d.Placement != PlacementReal }

// Activate runs the item's own activation hook, then forwards Select to the
// focus-on-select handler if one was configured.
func (d Directive) Activate() {
	if d.onActivate != nil {
		d.onActivate()
	}
	if d.handler != nil {
		d.handler.HandleCommand(d.Select)
	}
}

// BuildTrack assembles the render directives for the whole track: pre-clones,
// real slides, then post-clones, reversed as a whole when RTL is set.
// All inputs are validated before any directive is produced.
func BuildTrack(s Spec, slides []Slide, b Bounds) ([]Directive, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if b.PreClones < 0 {
		return nil, &ConfigError{Field: "preClones", Value: b.PreClones, Reason: "must not be negative"}
	}
	if len(slides) != s.SlideCount {
		return nil, &ContentLookupError{
			Index:  min(len(slides), s.SlideCount),
			Count:  len(slides),
			Source: "track",
		}
	}

	if err := uniqueKeys(slides); err != nil {
		return nil, err
	}

	childrenCount := len(slides)
	hydrated := func(i int) bool { return !s.LazyLoad || s.IsLazyLoaded(i) }

	keys := make([]string, childrenCount)
	for i, sl := range slides {
		keys[i] = sl.Leaf.Key
	}
	clones := Clones(s, childrenCount, b, keys, hydrated)

	track := make([]Directive, 0, childrenCount+clones.Len())

	for _, c := range clones.Pre {
		track = append(track, cloneDirective(s, slides, c, PlacementPreClone, hydrated(c.Source)))
	}

	for i, sl := range slides {
		d := Directive{
			Key:       fmt.Sprintf("%s-%d", s.idPrefix(), i),
			ID:        fmt.Sprintf("%s-%d", s.idPrefix(), i),
			Index:     i,
			Source:    i,
			Placement: PlacementReal,
			Hydrated:  hydrated(i),
			Classes:   ClassifySlide(s, i),
			Style:     SlideStyle(s, i),
			TabIndex:  -1,
			Select:    newCommand(KindChildren, i, s),
			handler:   s.FocusOnSelect,
		}
		if d.Hydrated {
			d.Slide = sl
			d.onActivate = sl.Leaf.OnActivate
		}
		d.ClassName = className(d.Classes, d.Slide.Leaf.Class)
		d.Hidden = !d.Classes.Active
		track = append(track, d)
	}

	for _, c := range clones.Post {
		track = append(track, cloneDirective(s, slides, c, PlacementPostClone, hydrated(c.Source)))
	}

	if s.RTL {
		slices.Reverse(track)
	}
	return track, nil
}

// cloneDirective builds the directive for a clone. Style and extra class come
// from the source slide as rendered on the real track.
func cloneDirective(s Spec, slides []Slide, c Clone, p Placement, sourceHydrated bool) Directive {
	src := slides[c.Source]
	d := Directive{
		Key:       c.Key,
		Index:     c.Index,
		Source:    c.Source,
		Placement: p,
		Hydrated:  c.Hydrated,
		Classes:   ClassifySlide(s, c.Index),
		Style:     SlideStyle(s, c.Source),
		TabIndex:  -1,
		Select:    newCommand(KindChildren, c.Source, s),
		handler:   s.FocusOnSelect,
	}
	if d.Hydrated {
		d.Slide = src
		d.onActivate = src.Leaf.OnActivate
	}

	var extra string
	if sourceHydrated {
		extra = src.Leaf.Class
	}
	d.ClassName = className(d.Classes, extra)
	d.Hidden = !d.Classes.Active
	return d
}

// uniqueKeys rejects two items sharing a non-empty key, since their clones
// would share a track key.
func uniqueKeys(slides []Slide) error {
	seen := make(map[string]int, len(slides))
	for i, sl := range slides {
		key := sl.Leaf.Key
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			return &ConfigError{
				Field:  "key",
				Value:  key,
				Reason: fmt.Sprintf("items %d and %d share it", first, i),
			}
		}
		seen[key] = i
	}
	return nil
}

func className(c Classes, extra string) string {
	names := c.Names()
	if extra = strings.TrimSpace(extra); extra != "" {
		names = append(names, extra)
	}
	return strings.Join(names, " ")
}
