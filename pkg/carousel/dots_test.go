package carousel

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotCount(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"finite exact", Spec{SlideCount: 10, SlidesToShow: 3, SlidesToScroll: 3}, 4},
		{"finite single step", Spec{SlideCount: 10, SlidesToShow: 3, SlidesToScroll: 1}, 8},
		{"infinite", Spec{SlideCount: 10, SlidesToShow: 3, SlidesToScroll: 3, Infinite: true}, 4},
		{"infinite even", Spec{SlideCount: 9, SlidesToShow: 3, SlidesToScroll: 3, Infinite: true}, 3},
		{"all shown", Spec{SlideCount: 3, SlidesToShow: 3, SlidesToScroll: 1}, 1},
		{"fewer slides than shown", Spec{SlideCount: 2, SlidesToShow: 3, SlidesToScroll: 1}, 0},
		{"empty infinite", Spec{SlideCount: 0, SlidesToShow: 1, SlidesToScroll: 1, Infinite: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DotCount(tt.spec))
		})
	}
}

func TestBuildDots_PartitionIsContiguous(t *testing.T) {
	for _, scroll := range []int{1, 2, 3, 4} {
		s := Spec{SlideCount: 12, SlidesToShow: 2, SlidesToScroll: scroll, Infinite: true}
		dots, err := BuildDots(s, makeSlides(12))
		require.NoError(t, err)
		require.NotEmpty(t, dots)

		assert.Equal(t, 0, dots[0].Left)
		for i := 0; i+1 < len(dots); i++ {
			assert.Equal(t, dots[i+1].Left, dots[i].Right+1, "scroll=%d dot=%d", scroll, i)
		}
		last := dots[len(dots)-1]
		assert.Equal(t, scroll*len(dots)-1, last.Right)
	}
}

func TestBuildDots_ExactlyOneActive(t *testing.T) {
	specs := []Spec{
		{SlideCount: 10, SlidesToShow: 3, SlidesToScroll: 3, Infinite: true},
		{SlideCount: 10, SlidesToShow: 1, SlidesToScroll: 1, Infinite: true},
		{SlideCount: 10, SlidesToShow: 3, SlidesToScroll: 3},
		{SlideCount: 7, SlidesToShow: 2, SlidesToScroll: 2},
	}
	for _, s := range specs {
		last := s.SlideCount - 1
		if !s.Infinite {
			last = s.SlideCount - s.SlidesToShow
		}
		for cur := 0; cur <= last; cur++ {
			s.CurrentSlide = cur
			dots, err := BuildDots(s, makeSlides(s.SlideCount))
			require.NoError(t, err)

			active := 0
			for _, d := range dots {
				if d.Active {
					active++
					assert.True(t, d.Left <= cur && cur <= d.Right)
				}
			}
			assert.Equal(t, 1, active, "spec %+v", s)
		}
	}
}

func TestBuildDots_AgreesWithSlideClassification(t *testing.T) {
	s := Spec{SlideCount: 9, SlidesToShow: 3, SlidesToScroll: 3, CurrentSlide: 3, Infinite: true}
	dots, err := BuildDots(s, makeSlides(9))
	require.NoError(t, err)

	idx := ActiveDot(dots)
	require.Equal(t, 1, idx)
	assert.True(t, ClassifySlide(s, dots[idx].Left).Active)
	assert.True(t, ClassifySlide(s, s.CurrentSlide).Current)
}

func TestBuildDots_ControlsIDAndCommand(t *testing.T) {
	s := Spec{SlideCount: 4, SlidesToShow: 1, SlidesToScroll: 2, CurrentSlide: 1, Infinite: true}
	dots, err := BuildDots(s, makeSlides(4))
	require.NoError(t, err)
	require.Len(t, dots, 2)

	assert.Equal(t, "item-1", dots[1].ControlsID)

	var got Command
	dots[1].Activate(HandlerFunc(func(cmd Command) { got = cmd }))
	assert.Equal(t, Command{Kind: KindDots, Index: 1, SlidesToScroll: 2, CurrentSlide: 1}, got)
	assert.NotPanics(t, func() { dots[0].Activate(nil) })
}

func TestBuildDots_MissingSlides(t *testing.T) {
	s := Spec{SlideCount: 10, SlidesToShow: 1, SlidesToScroll: 1, Infinite: true}
	dots, err := BuildDots(s, makeSlides(5))
	assert.Nil(t, dots)
	assert.True(t, errors.Is(err, ErrConfig))

	var lookupErr *ContentLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "dots", lookupErr.Source)
}

func TestBuildDots_InvalidSpec(t *testing.T) {
	_, err := BuildDots(Spec{SlideCount: 3, SlidesToShow: 1}, makeSlides(3))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestRenderDots(t *testing.T) {
	s := Spec{SlideCount: 3, SlidesToShow: 1, SlidesToScroll: 1, CurrentSlide: 2, Infinite: true}
	dots, err := BuildDots(s, makeSlides(3))
	require.NoError(t, err)

	out := RenderDots(dots,
		func(d Dot) string {
			if d.Active {
				return fmt.Sprintf("[%d]", d.Index+1)
			}
			return fmt.Sprintf(" %d ", d.Index+1)
		},
		func(parts []string) string { return "<" + strings.Join(parts, "") + ">" },
	)
	assert.Equal(t, "< 1  2 [3]>", out)
}
