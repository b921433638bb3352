package grid

// UnderlineStyle selects one of the underline decoration variants.
type UnderlineStyle int

const (
	// Underline is a single straight line.
	Underline UnderlineStyle = iota
	// UnderDouble is two straight lines, the second 2px above the first.
	UnderDouble
	// UnderCurl is a wavy line of alternating quadratic arcs.
	UnderCurl
	// UnderDash is a dashed line with 6:2 dash/gap ratio.
	UnderDash
	// UnderDot is a dotted line with 1:1 dash/gap ratio.
	UnderDot
)

// String returns the name of the underline style.
func (u UnderlineStyle) String() string {
	switch u {
	case Underline:
		return "Underline"
	case UnderDouble:
		return "UnderDouble"
	case UnderCurl:
		return "UnderCurl"
	case UnderDash:
		return "UnderDash"
	case UnderDot:
		return "UnderDot"
	default:
		return "Unknown"
	}
}

// Colors holds the three optional color channels of a style.
// A nil channel means "inherit from the default style".
type Colors struct {
	Foreground *Color
	Background *Color
	Special    *Color
}

// NewColors creates a Colors value from optional channels.
func NewColors(fg, bg, special *Color) Colors {
	return Colors{Foreground: fg, Background: bg, Special: special}
}

// Style describes how a run of cells is drawn. Styles are immutable once
// constructed and shared by pointer across every cell that uses them, so
// mutating a Style after handing it to the renderer is a data race.
type Style struct {
	Colors Colors

	// Blend is background transparency in percent, 0 (opaque) to 100
	// (fully transparent).
	Blend int

	// Underline selects a decoration variant, nil for none.
	Underline *UnderlineStyle

	Strikethrough bool

	// Reverse swaps the foreground and background channels, including
	// their fallbacks.
	Reverse bool

	Bold   bool
	Italic bool
}

// NewStyle creates a style with the given colors and no attributes.
func NewStyle(colors Colors) *Style {
	return &Style{Colors: colors}
}

// Foreground resolves the style's foreground against the default colors.
// With Reverse set, the background channel is used instead.
func (s *Style) Foreground(def Colors) Color {
	if s.Reverse {
		return resolve(s.Colors.Background, *def.Background)
	}
	return resolve(s.Colors.Foreground, *def.Foreground)
}

// Background resolves the style's background against the default colors.
// With Reverse set, the foreground channel is used instead.
func (s *Style) Background(def Colors) Color {
	if s.Reverse {
		return resolve(s.Colors.Foreground, *def.Foreground)
	}
	return resolve(s.Colors.Background, *def.Background)
}

// Special resolves the style's special (decoration) color against the
// default colors. Underlines and strikethrough marks draw with it.
func (s *Style) Special(def Colors) Color {
	return resolve(s.Colors.Special, *def.Special)
}

// CoarseStyle is the subset of a style that affects font selection and
// shaping. Shaped runs are cached per text and coarse style.
type CoarseStyle struct {
	Bold   bool
	Italic bool
}

// CoarseStyle returns the font-affecting subset of the style.
func (s *Style) CoarseStyle() CoarseStyle {
	return CoarseStyle{Bold: s.Bold, Italic: s.Italic}
}
