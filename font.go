package grid

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyFontData is returned when a font is created from no bytes.
var ErrEmptyFontData = errors.New("grid: empty font data")

// FontSource is a loaded font file. It owns the raw bytes; shapers and
// canvas backends parse those bytes with their own parsers and cache the
// result keyed by the *FontSource pointer, so one FontSource should be
// shared for the lifetime of the font.
//
// FontSource is immutable after creation and safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
// The name is the family name callers will select the font by.
func NewFontSource(data []byte, name string) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data: dataCopy,
		name: name,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path, name string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to read font file: %w", err)
	}

	return NewFontSource(data, name)
}

// Data returns the raw font bytes. The returned slice is owned by the
// FontSource and must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("grid: FontSource must not be copied by value")
	}
}
