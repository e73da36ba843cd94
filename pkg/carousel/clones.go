package carousel

import "strconv"

// Clone keys start with these; real slide keys may not.
const (
	preClonePrefix  = "precloned"
	postClonePrefix = "postcloned"
)

// Clone is a synthetic duplicate of a real slide placed before or after the
// real content so an infinite carousel can wrap without a visible gap.
type Clone struct {
	// Index is the synthetic content position: negative for pre-clones,
	// >= childrenCount for post-clones.
	Index int `json:"index"`
	// Source is the real content index the clone duplicates.
	Source   int    `json:"source"`
	Key      string `json:"key"`
	Hydrated bool   `json:"hydrated"`
}

// CloneWindow holds the clones for one computation, each band in ascending
// synthetic index order.
type CloneWindow struct {
	Pre  []Clone `json:"pre"`
	Post []Clone `json:"post"`
}

// Len returns the total number of clones.
func (w CloneWindow) Len() int { return len(w.Pre) + len(w.Post) }

// ShouldClone reports whether clones are generated at all. When every item is
// already on screen there is nothing to wrap into; an unslicked carousel
// never clones.
func ShouldClone(s Spec, childrenCount int) bool {
	return s.Infinite && !s.Fade && !s.Unslick && childrenCount != s.SlidesToShow
}

// Clones computes which content indices are duplicated at the head and the
// tail of the track. keys holds the optional per-item keys (may be shorter
// than childrenCount); hydrated reports whether the real slide at an index is
// hydrated, so a clone of a hydrated slide is hydrated too.
func Clones(s Spec, childrenCount int, b Bounds, keys []string, hydrated func(int) bool) CloneWindow {
	var w CloneWindow
	if !ShouldClone(s, childrenCount) {
		return w
	}

	for i := 0; i < childrenCount; i++ {
		var key string
		if i < len(keys) {
			key = keys[i]
		}
		sourceHydrated := hydrated != nil && hydrated(i)

		if preCloneNo := childrenCount - i; preCloneNo <= b.PreClones {
			idx := -preCloneNo
			w.Pre = append(w.Pre, Clone{
				Index:    idx,
				Source:   i,
				Key:      preClonePrefix + cloneKey(key, idx),
				Hydrated: sourceHydrated || b.contains(idx),
			})
		}

		idx := childrenCount + i
		w.Post = append(w.Post, Clone{
			Index:    idx,
			Source:   i,
			Key:      postClonePrefix + cloneKey(key, idx),
			Hydrated: sourceHydrated || b.contains(idx),
		})
	}
	return w
}

// cloneKey always carries the synthetic index; the item key, when present,
// follows a colon so keyed and unkeyed clones cannot collide.
func cloneKey(itemKey string, index int) string {
	if itemKey != "" {
		return strconv.Itoa(index) + ":" + itemKey
	}
	return strconv.Itoa(index)
}
