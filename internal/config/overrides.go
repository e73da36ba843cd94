package config

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config value.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// BorderStyle overrides the slide border style
	BorderStyle string

	// ShowClones draws the whole track
	ShowClones bool

	// ThemeName is the theme to load
	ThemeName string

	// SlidesToShow and SlidesToScroll override the carousel window (0 means use config)
	SlidesToShow   int
	SlidesToScroll int

	// Flags below are tri-state: nil means not set on the command line
	Infinite   *bool
	CenterMode *bool
	RTL        *bool
	Fade       *bool
	Vertical   *bool
	LazyLoad   *bool
	Autoplay   *bool
}

// ApplyOverrides writes CLI flag overrides into userConfig. Unset flags keep
// the config values. Each view reads its appearance from the config it was
// given, so nothing here is global.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if userConfig == nil {
		return
	}

	a := &userConfig.Appearance
	// ASCII Only and Show Clones - OR of CLI flag and user config
	a.ASCIIOnly = a.ASCIIOnly || overrides.ASCIIOnly
	a.ShowClones = a.ShowClones || overrides.ShowClones

	// Border Style and Theme - CLI flag takes precedence
	if overrides.BorderStyle != "" {
		a.BorderStyle = overrides.BorderStyle
	}
	if overrides.ThemeName != "" {
		a.Theme = overrides.ThemeName
	}

	c := &userConfig.Carousel
	if overrides.SlidesToShow > 0 {
		c.SlidesToShow = overrides.SlidesToShow
	}
	if overrides.SlidesToScroll > 0 {
		c.SlidesToScroll = overrides.SlidesToScroll
	}
	if overrides.Infinite != nil {
		c.Infinite = overrides.Infinite
	}
	applyBool(&c.CenterMode, overrides.CenterMode)
	applyBool(&c.RTL, overrides.RTL)
	applyBool(&c.Fade, overrides.Fade)
	applyBool(&c.Vertical, overrides.Vertical)
	applyBool(&c.LazyLoad, overrides.LazyLoad)
	applyBool(&c.Autoplay, overrides.Autoplay)
}

func applyBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
