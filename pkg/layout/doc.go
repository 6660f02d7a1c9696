// Package layout arranges rectangular media items into cells on a fixed-size
// canvas.
//
// # Overview
//
// The engine turns a list of [Item] values (an opaque index plus an aspect
// ratio) and canvas dimensions into a list of [Cell] rectangles. Each cell
// carries the [Item.Index] of the item it was computed for in
// [Cell.MediaIndex], so callers can map the geometry back to their own
// registry. The engine never keeps references to caller items.
//
// # Algorithms
//
// Five strategies are available, selected with [Options.Type]:
//
//   - [Grid]: uniform cells, aspect ratios ignored
//   - [Dynamic]: variable-height rows that honour each item's aspect ratio (default)
//   - [Masonry]: fixed-width columns filled shortest-column-first
//   - [Treemap]: squarified treemap, areas proportional to item weights
//   - [Pack]: shelf bin-packing, scaled and centred to fit the canvas
//
// Unknown or empty algorithm names resolve to [Dynamic], see [ParseAlgorithm].
//
// # Usage
//
//	items := []layout.Item{
//	    {Index: 0, Aspect: 16.0 / 9.0},
//	    {Index: 1, Aspect: 1},
//	    {Index: 2, Aspect: 9.0 / 16.0},
//	}
//	cells := layout.Calculate(items, layout.Options{
//	    Type:   layout.Dynamic,
//	    Width:  1920,
//	    Height: 1080,
//	    Gap:    10,
//	})
//	cells = layout.Clamp(cells, 1920, 1080)
//
// # Precision
//
// All coordinates and sizes are floored to whole pixels. Neighbouring cells may
// overlap or leave a gap of one pixel; [Clamp] only guarantees that every cell
// lies inside the canvas.
//
// # Input Sanitizing
//
// Aspect ratios that are zero, negative, NaN or infinite are replaced with
// [MinAspect] so every algorithm stays total. Non-positive treemap areas fall
// back to the derived weight.
//
// # Concurrency
//
// Every function is a pure computation over its arguments. Calls share no
// state and are safe to run concurrently.
package layout
