package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneIndices(cs []Clone) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.Index
	}
	return out
}

func TestClones_SkippedWhenEverythingIsShown(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 5, SlidesToScroll: 1, Infinite: true}
	w := Clones(s, 5, DefaultBounds(s), nil, nil)
	assert.Equal(t, 0, w.Len())
	assert.False(t, ShouldClone(s, 5))
}

func TestClones_SkippedWhenFadingOrFinite(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 2, SlidesToScroll: 1, Infinite: true, Fade: true}
	assert.Equal(t, 0, Clones(s, 5, DefaultBounds(s), nil, nil).Len())

	s = Spec{SlideCount: 5, SlidesToShow: 2, SlidesToScroll: 1}
	assert.Equal(t, 0, Clones(s, 5, Bounds{PreClones: 2}, nil, nil).Len())
}

func TestClones_Bands(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 2, SlidesToScroll: 1, Infinite: true}
	w := Clones(s, 5, DefaultBounds(s), nil, nil)

	assert.Equal(t, []int{-2, -1}, cloneIndices(w.Pre))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, cloneIndices(w.Post))

	require.Len(t, w.Pre, 2)
	assert.Equal(t, 3, w.Pre[0].Source)
	assert.Equal(t, 4, w.Pre[1].Source)
	assert.Equal(t, "precloned-2", w.Pre[0].Key)
	assert.Equal(t, "postcloned5", w.Post[0].Key)
	assert.Equal(t, 0, w.Post[0].Source)
}

func TestClones_ItemKeysFollowSyntheticIndex(t *testing.T) {
	s := Spec{SlideCount: 3, SlidesToShow: 1, SlidesToScroll: 1, Infinite: true}
	w := Clones(s, 3, DefaultBounds(s), []string{"a", "b", "c"}, nil)

	require.Len(t, w.Pre, 1)
	assert.Equal(t, "precloned-1:c", w.Pre[0].Key)
	assert.Equal(t, "postcloned3:a", w.Post[0].Key)
}

func TestClones_MixedKeysStayDistinct(t *testing.T) {
	// item 0 is keyed "6", the synthetic index of item 1's post-clone
	s := Spec{SlideCount: 5, SlidesToShow: 2, SlidesToScroll: 1, Infinite: true}
	w := Clones(s, 5, DefaultBounds(s), []string{"6", "", "-1", "", ""}, nil)

	seen := make(map[string]bool)
	for _, c := range append(w.Pre, w.Post...) {
		assert.False(t, seen[c.Key], "duplicate key %q", c.Key)
		seen[c.Key] = true
	}
}

func TestClones_PreCountLargerThanContent(t *testing.T) {
	s := Spec{SlideCount: 3, SlidesToShow: 5, SlidesToScroll: 1, Infinite: true}
	w := Clones(s, 3, Bounds{PreClones: 5}, nil, nil)

	assert.Equal(t, []int{-3, -2, -1}, cloneIndices(w.Pre))
	assert.Len(t, w.Post, 3)
}

func TestClones_Hydration(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 2, SlidesToScroll: 1, Infinite: true, LazyLoad: true}
	never := func(int) bool { return false }

	w := Clones(s, 5, Bounds{LazyStart: 0, LazyEnd: 2, PreClones: 2}, nil, never)
	for _, c := range append(w.Pre, w.Post...) {
		assert.False(t, c.Hydrated, "clone %d", c.Index)
	}

	w = Clones(s, 5, Bounds{LazyStart: -1, LazyEnd: 6, PreClones: 2}, nil, never)
	assert.False(t, w.Pre[0].Hydrated)
	assert.True(t, w.Pre[1].Hydrated)
	assert.True(t, w.Post[0].Hydrated)
	assert.False(t, w.Post[1].Hydrated)

	// A clone of an already hydrated slide is hydrated wherever it sits.
	w = Clones(s, 5, Bounds{LazyStart: 0, LazyEnd: 2, PreClones: 2}, nil, func(i int) bool { return i == 4 })
	assert.True(t, w.Pre[1].Hydrated)
	assert.True(t, w.Post[4].Hydrated)
}

func TestClones_EmptyContent(t *testing.T) {
	s := Spec{SlideCount: 0, SlidesToShow: 1, SlidesToScroll: 1, Infinite: true}
	assert.Equal(t, 0, Clones(s, 0, DefaultBounds(s), nil, nil).Len())
}
