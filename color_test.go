package grid

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"rrggbb", "#ff0000", RGB(1, 0, 0)},
		{"rrggbb no hash", "00ff00", RGB(0, 1, 0)},
		{"rgb shorthand", "#f00", RGB(1, 0, 0)},
		{"rgb shorthand expands", "abc", RGBA(170.0/255, 187.0/255, 204.0/255, 1)},
		{"rgba shorthand", "#f008", RGBA(1, 0, 0, 136.0/255)},
		{"rrggbbaa", "#ff000080", RGBA(1, 0, 0, 128.0/255)},
		{"invalid length", "#ff00", Black},
		{"empty", "", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"red", 0, 1, 1, RGB(1, 0, 0)},
		{"green", 120, 1, 1, RGB(0, 1, 0)},
		{"blue", 240, 1, 1, RGB(0, 0, 1)},
		{"black", 0, 0, 0, Black},
		{"white", 0, 0, 1, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSV(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("HSV(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestHSVIsOpaque(t *testing.T) {
	if got := HSV(137.5, 0.3, 0.3); got.A != 1 {
		t.Errorf("HSV alpha = %v, want 1", got.A)
	}
}

func TestWithAlpha(t *testing.T) {
	got := Red.WithAlpha(0.5)
	if want := RGBA(1, 0, 0, 0.5); got != want {
		t.Errorf("Red.WithAlpha(0.5) = %+v, want %+v", got, want)
	}
	// The receiver is untouched.
	if Red.A != 1 {
		t.Errorf("Red.A = %v after WithAlpha, want 1", Red.A)
	}
}

func TestColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.NRGBA
	}{
		{"red", Red, color.NRGBA{R: 255, A: 255}},
		{"white", White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"out of range clamps", RGBA(2, -1, 0, 1), color.NRGBA{R: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, A: 255})
	if got != Red {
		t.Errorf("FromColor(opaque red) = %+v, want %+v", got, Red)
	}
}

func TestResolve(t *testing.T) {
	if got := resolve(nil, Black); got != Black {
		t.Errorf("resolve(nil, black) = %+v, want the default", got)
	}
	if got := resolve(&Red, Black); got != Red {
		t.Errorf("resolve(&red, black) = %+v, want the override", got)
	}
}
