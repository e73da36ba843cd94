package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreCloneCount(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"finite", Spec{SlideCount: 8, SlidesToShow: 3}, 0},
		{"infinite", Spec{SlideCount: 8, SlidesToShow: 3, Infinite: true}, 3},
		{"center mode adds one", Spec{SlideCount: 8, SlidesToShow: 3, Infinite: true, CenterMode: true}, 4},
		{"variable width clones everything", Spec{SlideCount: 8, SlidesToShow: 3, Infinite: true, VariableWidth: true}, 8},
		{"unslick", Spec{SlideCount: 8, SlidesToShow: 3, Infinite: true, Unslick: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreCloneCount(tt.spec))
		})
	}
}

func TestPostCloneCountAndTotal(t *testing.T) {
	s := Spec{SlideCount: 8, SlidesToShow: 3, Infinite: true}
	assert.Equal(t, 8, PostCloneCount(s))
	assert.Equal(t, 3+8+8, TotalSlides(s))

	s.SlideCount = 1
	assert.Equal(t, 1, TotalSlides(s))

	s = Spec{SlideCount: 8, SlidesToShow: 3}
	assert.Equal(t, 0, PostCloneCount(s))
	assert.Equal(t, 8, TotalSlides(s))
}

func TestLazyWindow(t *testing.T) {
	s := Spec{SlideCount: 10, SlidesToShow: 3, CurrentSlide: 4}
	assert.Equal(t, 4, LazyStartIndex(s))
	assert.Equal(t, 7, LazyEndIndex(s))

	s = Spec{SlideCount: 20, SlidesToShow: 5, CurrentSlide: 10, CenterMode: true}
	assert.Equal(t, 8, LazyStartIndex(s))
	assert.Equal(t, 13, LazyEndIndex(s))

	s.CenterPadding = 50
	assert.Equal(t, 7, LazyStartIndex(s))
	assert.Equal(t, 14, LazyEndIndex(s))
}

func TestOnDemandLazySlides(t *testing.T) {
	s := Spec{SlideCount: 10, SlidesToShow: 3, CurrentSlide: 4, LazyLoadedList: []int{4, 5}}
	assert.Equal(t, []int{6}, OnDemandLazySlides(s))

	s.LazyLoadedList = nil
	assert.Equal(t, []int{4, 5, 6}, OnDemandLazySlides(s))

	s.LazyLoadedList = []int{4, 5, 6}
	assert.Empty(t, OnDemandLazySlides(s))
}
