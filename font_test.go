package grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	src, err := NewFontSource(goregular.TTF, "Go Regular")
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	if src.Name() != "Go Regular" {
		t.Errorf("Name() = %q, want %q", src.Name(), "Go Regular")
	}
	if len(src.Data()) != len(goregular.TTF) {
		t.Errorf("Data() length = %d, want %d", len(src.Data()), len(goregular.TTF))
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	src, err := NewFontSource(data, "probe")
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	data[0] = 9
	if src.Data()[0] != 1 {
		t.Error("mutating the input slice changed the stored font data")
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource(nil, "empty"); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	src, err := NewFontSourceFromFile(path, "Go Regular")
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if len(src.Data()) != len(goregular.TTF) {
		t.Errorf("Data() length = %d, want %d", len(src.Data()), len(goregular.TTF))
	}
}

func TestNewFontSourceFromMissingFile(t *testing.T) {
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "nope.ttf"), "x"); err == nil {
		t.Error("NewFontSourceFromFile(missing) = nil error, want one")
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	src, err := NewFontSource(goregular.TTF, "Go Regular")
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("using a by-value copy of FontSource should panic")
		}
	}()
	copied := *src
	_ = copied.Name()
}
