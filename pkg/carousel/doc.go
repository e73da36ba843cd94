// Package carousel is the computational core of a carousel ("slider") widget.
//
// Given a configuration snapshot (Spec) and an ordered list of slides it
// decides which slides are visible, which synthetic wrap-around clones are
// needed for an infinite loop, how every slide is classified
// (active/center/current/cloned), and how pagination dots map onto the
// scroll position. Every function is pure: nothing is cached between calls
// and inputs are never mutated, so concurrent calls with different snapshots
// need no locking.
//
// # Basic Usage
//
// The caller owns the mutable state (current slide, lazy-load history) and
// rebuilds the snapshot on every change:
//
//	spec := carousel.Spec{
//		SlideCount:     len(slides),
//		SlidesToShow:   3,
//		SlidesToScroll: 1,
//		CurrentSlide:   current,
//		Infinite:       true,
//	}
//	track, err := carousel.BuildTrack(spec, slides, carousel.DefaultBounds(spec))
//	if err != nil {
//		return err
//	}
//	dots, err := carousel.BuildDots(spec, slides)
//
// # Click Delegation
//
// Directives and dots never change state themselves. Activating one delivers
// a Command to a Handler; ChangeSlide and ResolveSlide turn that command
// into the next current slide.
//
//	spec.FocusOnSelect = carousel.HandlerFunc(func(cmd carousel.Command) {
//		current = carousel.ResolveSlide(spec, carousel.ChangeSlide(spec, cmd))
//	})
package carousel
