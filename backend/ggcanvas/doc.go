// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas renders grid draw calls with the gg 2D library.
//
// Canvas adapts a gg.Context to the grid.Canvas interface so a
// grid.GridRenderer can composite cells into a real pixel buffer. The
// data flow is:
//
//	grid.GridRenderer (draw calls) -> gg.Context -> Pixmap (CPU)
//
// # Mapping
//
// Save and Restore map to the context's Push and Pop, which snapshot the
// transform, paint, clip and mask together, so clip rectangles set
// between them end with the cell that needed them. Rectangles fill or
// stroke through the context's path machinery, dashed paints install the
// pattern with SetDash before stroking, and text blobs rasterize by
// loading each glyph's outline from the blob's font source and filling
// it at the glyph position.
//
// gg's software pipeline always composites source-over and always
// antialiases; paints asking for source blending or aliased edges draw
// the same way. Opaque cell backgrounds are unaffected.
//
// # Usage
//
//	canvas, err := ggcanvas.New(800, 600)
//	if err != nil {
//		...
//	}
//	renderer.DrawBackground(canvas, pos, width, style)
//	renderer.DrawForeground(canvas, "text", pos, width, style)
//	err = canvas.Err() // first drawing error, if any
//
// The finished frame is available through Image, EncodePNG or SavePNG.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per
// goroutine, or use external synchronization.
package ggcanvas
