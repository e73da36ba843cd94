package config

import (
	"time"

	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
)

// Spec converts the carousel section into a snapshot for slideCount slides.
// CurrentSlide, LazyLoadedList and the handler are owned by the caller.
func (c CarouselConfig) Spec(slideCount int) carousel.Spec {
	infinite := true
	if c.Infinite != nil {
		infinite = *c.Infinite
	}
	ease := c.CSSEase
	if ease == "" {
		ease = DefaultCSSEase
	}
	return carousel.Spec{
		SlideCount:     slideCount,
		SlidesToShow:   c.SlidesToShow,
		SlidesToScroll: c.SlidesToScroll,
		Infinite:       infinite,
		CenterMode:     c.CenterMode,
		CenterPadding:  c.CenterPadding,
		RTL:            c.RTL,
		Fade:           c.Fade,
		Vertical:       c.Vertical,
		VariableWidth:  c.VariableWidth,
		Unslick:        c.Unslick,
		Speed:          time.Duration(c.SpeedMS) * time.Millisecond,
		CSSEase:        ease,
		LazyLoad:       c.LazyLoad,
	}
}

// AutoplayInterval returns the autoplay delay, never below MinAutoplaySpeed
func (c CarouselConfig) AutoplayInterval() time.Duration {
	d := time.Duration(c.AutoplaySpeedMS) * time.Millisecond
	if d <= 0 {
		return DefaultAutoplaySpeed
	}
	return max(d, MinAutoplaySpeed)
}

// DotsEnabled reports whether pagination dots are drawn
func (c CarouselConfig) DotsEnabled() bool {
	return c.Dots == nil || *c.Dots
}
