package gotext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/grid"
)

// fontEntry is one registered font, parsed once per consumer: go-text
// shapes with the typesetting font, metrics and coverage queries go
// through the x/image sfnt font.
type fontEntry struct {
	source *grid.FontSource

	// shaped is read-only and safe for concurrent use, unlike font.Face.
	shaped *font.Font

	meta   *opentype.Font
	family string
}

// parseEntry parses the source bytes with both parsers.
func parseEntry(source *grid.FontSource) (*fontEntry, error) {
	data := source.Data()

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: parsing font %q for shaping: %w", source.Name(), err)
	}

	meta, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gotext: parsing font %q for metrics: %w", source.Name(), err)
	}

	family := source.Name()
	if family == "" {
		if name, err := meta.Name(nil, sfnt.NameIDFamily); err == nil {
			family = name
		}
	}

	return &fontEntry{
		source: source,
		shaped: face.Font,
		meta:   meta,
		family: family,
	}, nil
}

// AddFont registers a font. Later fonts serve as fallbacks for earlier
// ones unless the font options reorder them by family name.
func (s *CachingShaper) AddFont(source *grid.FontSource) error {
	entry, err := parseEntry(source)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fonts = append(s.fonts, entry)
	s.generation++
	return nil
}

// AddFontBytes registers a font from raw TTF or OTF data. The data is
// copied; the name is the family callers select the font by, or empty to
// use the family name from the font itself.
func (s *CachingShaper) AddFontBytes(data []byte, name string) error {
	source, err := grid.NewFontSource(data, name)
	if err != nil {
		return err
	}
	return s.AddFont(source)
}

// AddFontFile registers a font loaded from a file path.
func (s *CachingShaper) AddFontFile(path, name string) error {
	source, err := grid.NewFontSourceFromFile(path, name)
	if err != nil {
		return err
	}
	return s.AddFont(source)
}

// FontNames implements grid.Shaper.
func (s *CachingShaper) FontNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.activeFontsLocked()
	names := make([]string, len(active))
	for i, entry := range active {
		names[i] = entry.family
	}
	return names
}

// activeFontsLocked returns the fallback chain for the current options:
// fonts matching requested families first, in request order, then the
// remaining registered fonts in registration order.
func (s *CachingShaper) activeFontsLocked() []*fontEntry {
	if len(s.options.Families) == 0 {
		return s.fonts
	}

	active := make([]*fontEntry, 0, len(s.fonts))
	used := make(map[*fontEntry]bool, len(s.fonts))
	for _, family := range s.options.Families {
		for _, entry := range s.fonts {
			if !used[entry] && strings.EqualFold(entry.family, family) {
				active = append(active, entry)
				used[entry] = true
				break
			}
		}
	}
	for _, entry := range s.fonts {
		if !used[entry] {
			active = append(active, entry)
		}
	}
	return active
}

// hasFamilyLocked reports whether a font with the given family name is
// registered. The comparison is case-insensitive.
func (s *CachingShaper) hasFamilyLocked(family string) bool {
	for _, entry := range s.fonts {
		if strings.EqualFold(entry.family, family) {
			return true
		}
	}
	return false
}

// entryForRuneLocked picks the first font in the chain whose cmap covers
// r. Runes nothing covers map to the primary font, so they render as its
// notdef glyph.
func (s *CachingShaper) entryForRuneLocked(active []*fontEntry, r rune) int {
	for i, entry := range active {
		if gi, err := entry.meta.GlyphIndex(nil, r); err == nil && gi != 0 {
			return i
		}
	}
	return 0
}
