package gotext

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/internal/cache"
)

// shapedBlobCacheSize bounds the shaped-run cache. Entries from stale
// generations age out through ordinary LRU eviction.
const shapedBlobCacheSize = 1024

// shapeKey identifies one cached shaping result. The generation changes
// on every font mutation, so stale results are never returned.
type shapeKey struct {
	text       string
	style      grid.CoarseStyle
	generation uint64
}

// CachingShaper implements grid.Shaper with go-text/typesetting's
// HarfBuzz port. See the package documentation for the fallback and
// caching behavior.
//
// CachingShaper is safe for concurrent use.
type CachingShaper struct {
	mu          sync.Mutex
	fonts       []*fontEntry
	options     grid.FontOptions
	scaleFactor float64
	linespace   int
	generation  uint64
	blobCache   *cache.Cache[shapeKey, []*grid.TextBlob]
	hb          shaping.HarfbuzzShaper
}

var _ grid.Shaper = (*CachingShaper)(nil)

// NewCachingShaper creates a shaper with no fonts and default options.
// Register fonts with AddFont before shaping; until then ShapeCached
// returns nil and the metric methods report em-based estimates.
func NewCachingShaper(scaleFactor float64) *CachingShaper {
	if scaleFactor <= 0 {
		scaleFactor = 1.0
	}
	return &CachingShaper{
		options:     grid.DefaultFontOptions(),
		scaleFactor: scaleFactor,
		blobCache:   cache.New[shapeKey, []*grid.TextBlob](shapedBlobCacheSize),
	}
}

// ShapeCached implements grid.Shaper. The returned blobs are shared with
// the cache and must be treated as immutable.
func (s *CachingShaper) ShapeCached(text string, style grid.CoarseStyle) []*grid.TextBlob {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := shapeKey{text: text, style: style, generation: s.generation}
	return s.blobCache.GetOrCreate(key, func() []*grid.TextBlob {
		return s.shapeLocked(text)
	})
}

// UpdateScaleFactor implements grid.Shaper. Non-positive factors are
// ignored.
func (s *CachingShaper) UpdateScaleFactor(scaleFactor float64) {
	if scaleFactor <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scaleFactor = scaleFactor
	s.generation++
}

// UpdateFont implements grid.Shaper. On a parse error the current
// options are kept and the error is returned.
func (s *CachingShaper) UpdateFont(spec string) error {
	opts, err := grid.ParseFontSpec(spec)
	if err != nil {
		return err
	}
	s.UpdateFontOptions(opts)
	return nil
}

// UpdateFontOptions implements grid.Shaper. Requested families with no
// registered font are logged and skipped at shaping time; the remaining
// registered fonts still serve as fallbacks.
func (s *CachingShaper) UpdateFontOptions(opts grid.FontOptions) {
	if opts.Size <= 0 {
		opts.Size = grid.DefaultFontSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, family := range opts.Families {
		if !s.hasFamilyLocked(family) {
			grid.Logger().Warn("requested font family is not registered", "family", family)
		}
	}
	s.options = opts
	s.generation++
}

// UpdateLinespace implements grid.Shaper.
func (s *CachingShaper) UpdateLinespace(px int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.linespace = px
	s.generation++
}

// shapeLocked shapes text into blobs, splitting runs on direction and
// font fallback changes. Pen position accumulates across blobs so the
// renderer can draw every blob of a line at the same origin.
func (s *CachingShaper) shapeLocked(text string) []*grid.TextBlob {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	active := s.activeFontsLocked()
	if len(active) == 0 {
		return nil
	}

	size := s.currentSizeLocked()
	var blobs []*grid.TextBlob
	penX := 0.0

	for _, run := range bidiRuns(text) {
		dir := di.DirectionLTR
		if run.rtl {
			dir = di.DirectionRTL
		}

		for _, span := range s.fontSpansLocked(active, runes, run) {
			entry := active[span.font]
			input := shaping.Input{
				Text:      runes,
				RunStart:  span.start,
				RunEnd:    span.end,
				Direction: dir,
				// font.Face carries mutable shaping state and is not
				// safe to share; each call wraps the read-only Font.
				Face:     font.NewFace(entry.shaped),
				Size:     floatToFixed(size),
				Script:   detectScript(runes[span.start:span.end]),
				Language: language.NewLanguage("en"),
			}

			out := s.hb.Shape(input)
			blob := &grid.TextBlob{
				Source: entry.source,
				Size:   size,
				Text:   string(runes[span.start:span.end]),
				Glyphs: make([]grid.Glyph, 0, len(out.Glyphs)),
			}
			for _, g := range out.Glyphs {
				blob.Glyphs = append(blob.Glyphs, grid.Glyph{
					ID: uint32(g.GlyphID),
					X:  penX + fixedToFloat(g.XOffset),
					// go-text offsets are y-up, blob coordinates y-down.
					Y:       -fixedToFloat(g.YOffset),
					Cluster: g.TextIndex() - span.start,
				})
				penX += fixedToFloat(g.Advance)
			}
			blobs = append(blobs, blob)
		}
	}

	return blobs
}

// fontSpan is a half-open rune range shaped with one font.
type fontSpan struct {
	start, end int
	font       int
}

// fontSpansLocked splits one bidi run into spans of consecutive runes
// covered by the same font in the fallback chain.
func (s *CachingShaper) fontSpansLocked(active []*fontEntry, runes []rune, run bidiRun) []fontSpan {
	var spans []fontSpan
	spanStart := run.start
	current := s.entryForRuneLocked(active, runes[run.start])
	for i := run.start + 1; i < run.end; i++ {
		next := s.entryForRuneLocked(active, runes[i])
		if next != current {
			spans = append(spans, fontSpan{start: spanStart, end: i, font: current})
			spanStart = i
			current = next
		}
	}
	return append(spans, fontSpan{start: spanStart, end: run.end, font: current})
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Runs are already split by direction and font, so
// a single script per run is a safe assumption.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
