// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Carousel Defaults
// =============================================================================

const (
	// DefaultSlidesToShow is how many slides are visible at once
	DefaultSlidesToShow = 3

	// DefaultSlidesToScroll is how many slides one next/previous step moves
	DefaultSlidesToScroll = 1

	// DefaultSpeed is the transition speed handed to the fade style
	DefaultSpeed = 500 * time.Millisecond

	// DefaultCSSEase is the transition curve handed to the fade style
	DefaultCSSEase = "ease"

	// DefaultAutoplaySpeed is the delay between automatic advances
	DefaultAutoplaySpeed = 3 * time.Second

	// MinAutoplaySpeed keeps autoplay from spinning the render loop
	MinAutoplaySpeed = 250 * time.Millisecond

	// DefaultItemCount is the number of generated demo slides when none are given
	DefaultItemCount = 8
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// MinSlideWidth is the narrowest a slide box is drawn, borders included
	MinSlideWidth = 8

	// DefaultSlideHeight is the height of a slide box, borders included
	DefaultSlideHeight = 7

	// DotsHeight is the height of the dot row
	DotsHeight = 1

	// StatusBarHeight is the height of the status line
	StatusBarHeight = 1

	// FallbackWidth is used when the terminal size is unknown
	FallbackWidth = 80

	// NormalFPS is the refresh rate of the interactive program
	NormalFPS = 30
)

// =============================================================================
// Glyphs
// =============================================================================

const (
	// DotActive marks the dot covering the current slide.
	DotActive = "●"
	// DotInactive marks every other dot.
	DotInactive = "○"
	// ArrowPrev is drawn left of the track.
	ArrowPrev = string(rune(0xf053))
	// ArrowNext is drawn right of the track.
	ArrowNext = string(rune(0xf054))
	// PlaceholderGlyph fills slides that are not hydrated yet.
	PlaceholderGlyph = "░"
	// CloneMarker tags cloned slides in the title.
	CloneMarker = "⧉"
	// AutoplayIcon is shown in the status line while autoplay runs.
	AutoplayIcon = "▶"
	// PausedIcon is shown in the status line while autoplay is paused.
	PausedIcon = "⏸"
)

const (
	// DotActiveASCII is the ASCII fallback for DotActive.
	DotActiveASCII = "*"
	// DotInactiveASCII is the ASCII fallback for DotInactive.
	DotInactiveASCII = "o"
	// ArrowPrevASCII is the ASCII fallback for ArrowPrev.
	ArrowPrevASCII = "<"
	// ArrowNextASCII is the ASCII fallback for ArrowNext.
	ArrowNextASCII = ">"
	// PlaceholderGlyphASCII is the ASCII fallback for PlaceholderGlyph.
	PlaceholderGlyphASCII = "."
	// CloneMarkerASCII is the ASCII fallback for CloneMarker.
	CloneMarkerASCII = "~"
	// AutoplayIconASCII is the ASCII fallback for AutoplayIcon.
	AutoplayIconASCII = ">"
	// PausedIconASCII is the ASCII fallback for PausedIcon.
	PausedIconASCII = "="
)

// =============================================================================
// Per-view appearance
// =============================================================================

// DotIcon returns the dot glyph, honoring ascii_only
func (a AppearanceConfig) DotIcon(active bool) string {
	switch {
	case a.ASCIIOnly && active:
		return DotActiveASCII
	case a.ASCIIOnly:
		return DotInactiveASCII
	case active:
		return DotActive
	default:
		return DotInactive
	}
}

// ArrowIcon returns the previous or next arrow, honoring ascii_only
func (a AppearanceConfig) ArrowIcon(next bool) string {
	switch {
	case a.ASCIIOnly && next:
		return ArrowNextASCII
	case a.ASCIIOnly:
		return ArrowPrevASCII
	case next:
		return ArrowNext
	default:
		return ArrowPrev
	}
}

// PlaceholderFill returns the fill glyph for slides that are not hydrated
func (a AppearanceConfig) PlaceholderFill() string {
	if a.ASCIIOnly {
		return PlaceholderGlyphASCII
	}
	return PlaceholderGlyph
}

// CloneTag returns the marker shown in the title of cloned slides
func (a AppearanceConfig) CloneTag() string {
	if a.ASCIIOnly {
		return CloneMarkerASCII
	}
	return CloneMarker
}

// AutoplayIndicator returns the autoplay indicator for the given state
func (a AppearanceConfig) AutoplayIndicator(paused bool) string {
	switch {
	case a.ASCIIOnly && paused:
		return PausedIconASCII
	case a.ASCIIOnly:
		return AutoplayIconASCII
	case paused:
		return PausedIcon
	default:
		return AutoplayIcon
	}
}

// Height returns the slide box height, falling back to DefaultSlideHeight
func (a AppearanceConfig) Height() int {
	if a.SlideHeight <= 0 {
		return DefaultSlideHeight
	}
	return a.SlideHeight
}

// ValidBorderStyles lists the accepted appearance.border_style values
var ValidBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}

// Border returns the lipgloss Border for border_style; ascii_only forces ASCII
func (a AppearanceConfig) Border() lipgloss.Border {
	if a.ASCIIOnly || a.BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch a.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
