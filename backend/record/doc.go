// Package record provides a Canvas that captures draw calls as typed
// operations instead of rasterizing them.
//
// The recording canvas serves two purposes: tests assert on the exact
// operation sequence a renderer produced, and recordings can be replayed
// onto any other Canvas later (batching, thumbnails, export).
//
// Design follows Cairo's approach of typed command structs for
// inspectability, rather than a binary serialization format. Paints and
// paths are deep-copied at record time, so an Op stays valid however the
// caller reuses its buffers.
//
// # Example
//
//	rec := record.New()
//	gr.DrawForeground(rec, "hi", grid.GridPos{}, 2, style)
//
//	for _, op := range rec.Ops() {
//	    switch op := op.(type) {
//	    case record.ClipOp:
//	        // inspect op.Rect
//	    case record.TextBlobOp:
//	        // inspect op.Blob, op.Origin, op.Paint
//	    }
//	}
//
//	rec.Replay(ggCanvas) // rasterize the same sequence
package record
