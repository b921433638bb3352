package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultFontSize is the font size in points used when a font
// specification does not name one.
const DefaultFontSize = 14.0

// ErrInvalidFontSpec is returned when a font specification string cannot
// be parsed.
var ErrInvalidFontSpec = errors.New("grid: invalid font spec")

// FontHinting selects how glyph outlines are fitted to the pixel grid
// when the shaper computes metrics.
type FontHinting int

const (
	// HintingFull snaps stems and baselines to whole pixels. The zero
	// value, so options default to it.
	HintingFull FontHinting = iota
	// HintingVertical snaps only the vertical metrics.
	HintingVertical
	// HintingNone uses the unfitted outlines.
	HintingNone
)

// String returns the name of the hinting mode.
func (h FontHinting) String() string {
	switch h {
	case HintingFull:
		return "Full"
	case HintingVertical:
		return "Vertical"
	case HintingNone:
		return "None"
	default:
		return "Unknown"
	}
}

// FontOptions is the structured form of a font selection: an ordered
// fallback list of families plus the size, variant flags and hinting
// shared by all of them.
type FontOptions struct {
	// Families are font family names in fallback order. Empty means
	// "whatever fonts the shaper already has".
	Families []string

	// Size is the font size in points.
	Size float64

	Bold   bool
	Italic bool

	// Hinting is not part of the spec string grammar; set it through
	// UpdateFontOptions.
	Hinting FontHinting
}

// DefaultFontOptions returns options with no families, the default size
// and full hinting.
func DefaultFontOptions() FontOptions {
	return FontOptions{Size: DefaultFontSize}
}

// ParseFontSpec parses a font specification string in the classic
// "guifont" form:
//
//	Family One,Family_Two:h14:b:i
//
// Families are comma-separated and come first; underscores and
// backslash-escaped spaces both read as spaces in family names. The
// remaining colon-separated fields set the size ("h" followed by a
// number), bold ("b") and italic ("i"). Unrecognized fields are skipped.
//
// An empty spec returns DefaultFontOptions. A malformed size field
// returns an error wrapping ErrInvalidFontSpec.
func ParseFontSpec(spec string) (FontOptions, error) {
	opts := DefaultFontOptions()
	if spec == "" {
		return opts, nil
	}

	parts := splitFontSpec(spec)
	for _, family := range strings.Split(parts[0], ",") {
		family = strings.TrimSpace(normalizeFamily(family))
		if family != "" {
			opts.Families = append(opts.Families, family)
		}
	}

	for _, field := range parts[1:] {
		switch {
		case field == "":
		case field == "b":
			opts.Bold = true
		case field == "i":
			opts.Italic = true
		case field[0] == 'h':
			size, err := strconv.ParseFloat(field[1:], 64)
			if err != nil || size <= 0 {
				return opts, fmt.Errorf("%w: bad size field %q", ErrInvalidFontSpec, field)
			}
			opts.Size = size
		default:
			Logger().Warn("skipping unknown font spec field", "field", field)
		}
	}

	return opts, nil
}

// splitFontSpec splits on ':' while honoring backslash escapes, so
// "Font\:Name:h12" keeps the escaped colon inside the family name.
func splitFontSpec(spec string) []string {
	var parts []string
	var cur strings.Builder
	escaped := false
	for _, r := range spec {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == ':':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// normalizeFamily resolves the two space spellings in family names.
func normalizeFamily(family string) string {
	family = strings.ReplaceAll(family, "\\ ", " ")
	family = strings.ReplaceAll(family, "\\:", ":")
	family = strings.ReplaceAll(family, "_", " ")
	return family
}
