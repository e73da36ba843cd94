package carousel

// LazySlidesOnLeft is how many slides left of the current one must be hydrated.
func LazySlidesOnLeft(s Spec) int {
	if !s.CenterMode {
		return 0
	}
	return s.SlidesToShow/2 + paddingSlide(s)
}

// LazySlidesOnRight is how many slides from the current one onward must be hydrated.
func LazySlidesOnRight(s Spec) int {
	if !s.CenterMode {
		return s.SlidesToShow
	}
	return (s.SlidesToShow-1)/2 + 1 + paddingSlide(s)
}

func paddingSlide(s Spec) int {
	if s.CenterPadding > 0 {
		return 1
	}
	return 0
}

// LazyStartIndex is the first index of the visible lazy-load window.
func LazyStartIndex(s Spec) int {
	return s.CurrentSlide - LazySlidesOnLeft(s)
}

// LazyEndIndex is one past the last index of the visible lazy-load window.
func LazyEndIndex(s Spec) int {
	return s.CurrentSlide + LazySlidesOnRight(s)
}

// OnDemandLazySlides lists the indices in the lazy window that the caller
// has not hydrated yet. The caller merges them into its own history.
func OnDemandLazySlides(s Spec) []int {
	var slides []int
	for i := LazyStartIndex(s); i < LazyEndIndex(s); i++ {
		if !s.IsLazyLoaded(i) {
			slides = append(slides, i)
		}
	}
	return slides
}

// PreCloneCount is the number of leading duplicates needed so scrolling
// backward never exposes empty space.
func PreCloneCount(s Spec) int {
	if s.Unslick || !s.Infinite {
		return 0
	}
	if s.VariableWidth {
		return s.SlideCount
	}
	n := s.SlidesToShow
	if s.CenterMode {
		n++
	}
	return n
}

// PostCloneCount is the number of trailing duplicates.
func PostCloneCount(s Spec) int {
	if s.Unslick || !s.Infinite {
		return 0
	}
	return s.SlideCount
}

// TotalSlides counts real slides plus clones as laid out on the track.
func TotalSlides(s Spec) int {
	if s.SlideCount == 1 {
		return 1
	}
	return PreCloneCount(s) + s.SlideCount + PostCloneCount(s)
}
