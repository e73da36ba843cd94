package carousel

// ChangeSlide computes the raw target slide for a command. The result may lie
// outside [0, SlideCount) on an infinite carousel; ResolveSlide maps it back.
func ChangeSlide(s Spec, cmd Command) int {
	count, scroll, current := s.SlideCount, max(s.SlidesToScroll, 1), s.CurrentSlide

	indexOffset := 0
	if count%scroll == 0 {
		indexOffset = mod(count-current, scroll)
	}

	switch cmd.Kind {
	case KindPrevious:
		slideOffset := scroll
		if indexOffset != 0 {
			slideOffset = s.SlidesToShow - indexOffset
		}
		if !s.Infinite {
			return current - scroll
		}
		return current - slideOffset

	case KindNext:
		if !s.Infinite {
			return current + scroll
		}
		if indexOffset != 0 {
			return current + indexOffset
		}
		return current + scroll

	case KindDots:
		return cmd.Index * max(cmd.SlidesToScroll, 1)

	case KindChildren:
		target := cmd.Index
		if s.Infinite {
			dir := siblingDirection(s, target)
			if target > cmd.CurrentSlide && dir == directionLeft {
				target -= count
			} else if target < cmd.CurrentSlide && dir == directionRight {
				target += count
			}
		}
		return target

	default:
		return cmd.Index
	}
}

// ResolveSlide maps a raw target onto the slide that becomes current once the
// move settles.
func ResolveSlide(s Spec, target int) int {
	count := s.SlideCount
	if count <= 0 {
		return 0
	}
	scroll := max(s.SlidesToScroll, 1)
	current := s.CurrentSlide
	final := target

	switch {
	case s.Fade:
		if !s.Infinite && (target < 0 || target >= count) {
			return clampSlide(current, count)
		}
		final = mod(target, count)

	case target < 0:
		switch {
		case !s.Infinite:
			final = 0
		case count%scroll != 0:
			final = count - count%scroll
		default:
			final = target + count
		}

	case !canGoNext(s) && target > current:
		final = current

	case s.CenterMode && target >= count:
		final = count - 1
		if s.Infinite {
			final = 0
		}

	case target >= count:
		switch {
		case !s.Infinite:
			final = count - s.SlidesToShow
		case count%scroll != 0:
			final = 0
		default:
			final = target - count
		}
	}

	if s.Infinite {
		return mod(final, count)
	}
	return clampSlide(final, count)
}

func canGoNext(s Spec) bool {
	if s.Infinite {
		return true
	}
	if s.CenterMode {
		return s.CurrentSlide < s.SlideCount-1
	}
	return s.SlideCount > s.SlidesToShow && s.CurrentSlide < s.SlideCount-s.SlidesToShow
}

type direction int

const (
	directionLeft direction = iota
	directionRight
)

func siblingDirection(s Spec, target int) direction {
	if target > s.CurrentSlide {
		if target > s.CurrentSlide+slidesOnRight(s) {
			return directionLeft
		}
		return directionRight
	}
	if target < s.CurrentSlide-slidesOnLeft(s) {
		return directionRight
	}
	return directionLeft
}

func slidesOnRight(s Spec) int {
	if s.CenterMode {
		right := (s.SlidesToShow-1)/2 + 1 + paddingSlide(s)
		if s.RTL && s.SlidesToShow%2 == 0 {
			right++
		}
		return right
	}
	if s.RTL {
		return 0
	}
	return s.SlidesToShow - 1
}

func slidesOnLeft(s Spec) int {
	if s.CenterMode {
		left := (s.SlidesToShow-1)/2 + 1 + paddingSlide(s)
		if !s.RTL && s.SlidesToShow%2 == 0 {
			left++
		}
		return left
	}
	if s.RTL {
		return s.SlidesToShow - 1
	}
	return 0
}

func clampSlide(i, count int) int {
	return min(max(i, 0), count-1)
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
