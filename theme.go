package docmd

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so rendered
// documentation automatically matches any color scheme.
type Theme struct {
	Accent int // link text
	Muted  int // URLs, code gutters, language labels
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Muted:  8,
	}
}
