package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySlide_DefaultWindow(t *testing.T) {
	s := Spec{SlideCount: 10, SlidesToShow: 3, SlidesToScroll: 1, CurrentSlide: 2}

	for idx, wantActive := range map[int]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		assert.Equal(t, wantActive, ClassifySlide(s, idx).Active, "index %d", idx)
	}

	c := ClassifySlide(s, 2)
	assert.True(t, c.Slide)
	assert.True(t, c.Current)
	assert.False(t, c.Center, "center is only set in center mode")
	assert.False(t, c.Cloned)
	assert.False(t, ClassifySlide(s, 3).Current)
}

func TestClassifySlide_CenterMode(t *testing.T) {
	s := Spec{SlideCount: 20, SlidesToShow: 5, SlidesToScroll: 1, CurrentSlide: 10, CenterMode: true}

	// centerOffset = 2: active iff 7 < index <= 12.
	tests := []struct {
		index  int
		active bool
	}{
		{7, false},
		{8, true},
		{10, true},
		{12, true},
		{13, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.active, ClassifySlide(s, tt.index).Active, "index %d", tt.index)
	}

	assert.True(t, ClassifySlide(s, 10).Center)
	assert.True(t, ClassifySlide(s, 30).Center, "a clone one loop ahead is centered too")
	assert.True(t, ClassifySlide(s, -10).Center)
	assert.False(t, ClassifySlide(s, 11).Center)
}

func TestClassifySlide_Cloned(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 2, SlidesToScroll: 1}

	assert.True(t, ClassifySlide(s, -1).Cloned)
	assert.True(t, ClassifySlide(s, 5).Cloned)
	assert.False(t, ClassifySlide(s, 0).Cloned)
	assert.False(t, ClassifySlide(s, 4).Cloned)
}

func TestClassifySlide_RTLMirrorsEveryFlag(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 1, SlidesToScroll: 1, CurrentSlide: 0, RTL: true}

	last := ClassifySlide(s, 4)
	assert.True(t, last.Active)
	assert.True(t, last.Current)

	first := ClassifySlide(s, 0)
	assert.False(t, first.Active)
	assert.False(t, first.Current)

	// Mirrored -1 is 5, which lies past the end.
	assert.True(t, ClassifySlide(s, -1).Cloned)
}

func TestClassifySlide_EmptyContent(t *testing.T) {
	s := Spec{SlideCount: 0, SlidesToShow: 3, SlidesToScroll: 1, CenterMode: true}

	require.NotPanics(t, func() { ClassifySlide(s, 0) })
	c := ClassifySlide(s, 0)
	assert.False(t, c.Center)
	assert.True(t, c.Cloned)
}

func TestClassifySlide_NoSlidesToShow(t *testing.T) {
	for _, center := range []bool{false, true} {
		s := Spec{SlideCount: 5, SlidesToShow: 0, SlidesToScroll: 1, CurrentSlide: 2, CenterMode: center}
		c := ClassifySlide(s, 2)
		assert.False(t, c.Active, "center mode %v", center)
		assert.True(t, c.Current)
	}
}

func TestClasses_Names(t *testing.T) {
	c := Classes{Slide: true, Active: true, Current: true}
	assert.Equal(t, []string{ClassSlide, ClassActive, ClassCurrent}, c.Names())
	assert.Equal(t, "carousel-slide carousel-active carousel-current", c.String())
}

func TestSlideStyle_Fade(t *testing.T) {
	s := Spec{
		SlideCount: 5, SlidesToShow: 1, SlidesToScroll: 1,
		SlideWidth: 300, SlideHeight: 120,
		Fade: true, CurrentSlide: 2,
		Speed: 500 * time.Millisecond, CSSEase: "ease",
	}

	st := SlideStyle(s, 2)
	require.NotNil(t, st.Left)
	require.NotNil(t, st.Opacity)
	assert.Equal(t, -600, *st.Left)
	assert.Nil(t, st.Top)
	assert.Equal(t, 1.0, *st.Opacity)
	assert.Equal(t, "relative", st.Position)
	assert.Equal(t, "opacity 500ms ease, visibility 500ms ease", st.Transition)
	require.NotNil(t, st.Width)
	assert.Equal(t, 300, *st.Width)

	s.CurrentSlide = 3
	st = SlideStyle(s, 2)
	assert.Equal(t, -600, *st.Left)
	assert.Equal(t, 0.0, *st.Opacity)
	assert.False(t, st.Visible())
}

func TestSlideStyle_FadeVertical(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 1, SlidesToScroll: 1, SlideHeight: 120, Fade: true, Vertical: true}

	st := SlideStyle(s, 3)
	require.NotNil(t, st.Top)
	assert.Equal(t, -360, *st.Top)
	assert.Nil(t, st.Left)
}

func TestSlideStyle_NoFade(t *testing.T) {
	s := Spec{SlideCount: 5, SlidesToShow: 1, SlidesToScroll: 1, SlideWidth: 40}

	st := SlideStyle(s, 1)
	require.NotNil(t, st.Width)
	assert.Equal(t, 40, *st.Width)
	assert.Nil(t, st.Left)
	assert.Nil(t, st.Opacity)
	assert.Empty(t, st.Transition)
	assert.True(t, st.Visible())

	s.VariableWidth = true
	assert.Nil(t, SlideStyle(s, 1).Width)
}
