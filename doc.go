// Package grid renders character-cell grids onto 2D drawing surfaces.
//
// # Overview
//
// grid is a Pure Go cell compositor for terminal and editor UIs in the
// GoGPU ecosystem. Given a grid position, a cell count, and a style, it
// paints background rectangles and composites shaped glyph runs, underline
// decorations, and strikethrough marks on any surface that implements the
// Canvas interface.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/grid"
//	    "github.com/gogpu/grid/backend/ggcanvas"
//	    "github.com/gogpu/grid/shapers/gotext"
//	)
//
//	shaper := gotext.NewCachingShaper(1.0)
//	shaper.AddFontBytes(fontData, "JetBrains Mono")
//
//	gr := grid.New(shaper, 1.0)
//	canvas, err := ggcanvas.New(800, 600)
//
//	style := &grid.Style{Colors: grid.Colors{Foreground: &grid.Red}}
//	gr.DrawBackground(canvas, grid.GridPos{X: 2, Y: 1}, 5, style)
//	gr.DrawForeground(canvas, "hello", grid.GridPos{X: 2, Y: 1}, 5, style)
//
// # Architecture
//
// The package is organized into:
//   - Public API: GridRenderer, Style, Canvas, Shaper, Paint, Path, Point, Rect
//   - Shapers: shapers/gotext (HarfBuzz shaping via go-text/typesetting)
//   - Backends: backend/ggcanvas (gogpu/gg surface), backend/record (op log)
//
// The renderer owns no surface and no fonts. Both arrive through the Canvas
// and Shaper interfaces, so tests can record draw commands and production
// code can rasterize through gg.
//
// # Coordinate System
//
// Grid positions are whole cells, origin at the top-left, X increasing
// right and Y increasing down. Pixel coordinates follow the same
// orientation. A cell is FontDimensions wide and tall; conversions between
// the two domains are elementwise.
//
// # Draw Order
//
// Callers composite a frame as two passes over the damaged cells: all
// backgrounds first (DrawBackground), then all foregrounds
// (DrawForeground). Backgrounds replace destination pixels, foregrounds
// blend over them, so the passes must not be interleaved within a row.
package grid

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
