package gotext

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/grid"
)

// pointsPerInch and pixelsPerInch convert point sizes to pixel sizes at
// the conventional 96 DPI before the scale factor applies.
const (
	pointsPerInch = 72.0
	pixelsPerInch = 96.0
)

// widthProbe is the rune set measured for the cell width. The widest
// advance wins, so a proportional primary font cannot shrink the cell
// below its widest common glyph.
const widthProbe = "Mmw1"

// CurrentSize implements grid.Shaper.
func (s *CachingShaper) CurrentSize() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentSizeLocked()
}

func (s *CachingShaper) currentSizeLocked() float64 {
	return s.options.Size * (pixelsPerInch / pointsPerInch) * s.scaleFactor
}

// FontBaseDimensions implements grid.Shaper. The width is the widest
// probe-rune advance in the primary font, the height is the font's line
// height plus linespace. Without fonts the em size approximates both.
func (s *CachingShaper) FontBaseDimensions() grid.Dimensions {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.currentSizeLocked()
	dims := grid.Dimensions{
		Width:  int(math.Ceil(size * 0.6)),
		Height: int(math.Ceil(size*1.2)) + s.linespace,
	}

	if m, ok := s.metricsLocked(); ok {
		dims.Height = s.cellHeightLocked(m)
		if w := s.probeWidthLocked(size); w > 0 {
			dims.Width = int(math.Ceil(w))
		}
	}

	if dims.Width < 1 {
		dims.Width = 1
	}
	if dims.Height < 1 {
		dims.Height = 1
	}
	return dims
}

// YAdjustment implements grid.Shaper. Half the linespace goes above the
// baseline so extra leading pads the cell symmetrically.
func (s *CachingShaper) YAdjustment() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.yAdjustmentLocked()
}

func (s *CachingShaper) yAdjustmentLocked() float64 {
	ascent := s.currentSizeLocked() * 0.8
	if m, ok := s.metricsLocked(); ok {
		ascent = fixedToFloat(m.Ascent)
	}
	return math.Ceil(ascent + float64(s.linespace)/2)
}

// UnderlinePosition implements grid.Shaper. The underline sits half the
// descent below the baseline; the returned value is that line's distance
// up from the cell's bottom edge, at least one pixel.
func (s *CachingShaper) UnderlinePosition() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.metricsLocked()
	if !ok {
		return 2
	}

	underlineY := s.yAdjustmentLocked() + fixedToFloat(m.Descent)/2
	pos := float64(s.cellHeightLocked(m)) - underlineY
	if pos < 1 {
		pos = 1
	}
	return pos
}

// hintingLocked maps the configured hinting mode to the x/image enum.
func (s *CachingShaper) hintingLocked() font.Hinting {
	switch s.options.Hinting {
	case grid.HintingVertical:
		return font.HintingVertical
	case grid.HintingNone:
		return font.HintingNone
	default:
		return font.HintingFull
	}
}

// metricsLocked returns the primary font's metrics at the current size.
// ok is false when no font is registered or the metrics are unreadable.
func (s *CachingShaper) metricsLocked() (font.Metrics, bool) {
	active := s.activeFontsLocked()
	if len(active) == 0 {
		return font.Metrics{}, false
	}

	var buf sfnt.Buffer
	m, err := active[0].meta.Metrics(&buf, floatToFixed(s.currentSizeLocked()), s.hintingLocked())
	if err != nil {
		return font.Metrics{}, false
	}
	return m, true
}

// cellHeightLocked is the cell height in whole pixels for the given
// primary font metrics.
func (s *CachingShaper) cellHeightLocked(m font.Metrics) int {
	return int(math.Ceil(fixedToFloat(m.Height))) + s.linespace
}

// probeWidthLocked measures the widest advance over the width probe
// runes in the primary font. Returns 0 when no probe rune is covered.
func (s *CachingShaper) probeWidthLocked(size float64) float64 {
	active := s.activeFontsLocked()
	if len(active) == 0 {
		return 0
	}

	meta := active[0].meta
	ppem := floatToFixed(size)
	hinting := s.hintingLocked()
	var buf sfnt.Buffer
	widest := 0.0
	for _, r := range widthProbe {
		gi, err := meta.GlyphIndex(&buf, r)
		if err != nil || gi == 0 {
			continue
		}
		adv, err := meta.GlyphAdvance(&buf, gi, ppem, hinting)
		if err != nil {
			continue
		}
		if w := fixedToFloat(adv); w > widest {
			widest = w
		}
	}
	return widest
}
