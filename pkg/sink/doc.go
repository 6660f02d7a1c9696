// Package sink renders computed layouts to output formats.
//
// # Overview
//
// A [Document] is the serializable form of one layout run: the canvas, the
// algorithm that produced it and one [DocumentCell] per placed item. Sinks
// turn a Document into bytes:
//
//   - [RenderJSON]: pretty-printed JSON, readable back with [ParseJSON]
//   - [RenderSVG]: a wireframe preview of the cells
//
// # SVG Preview
//
// The SVG output draws each cell as an outlined rectangle on the canvas
// background. It shows where media would go, not the media itself:
//
//	svg := sink.RenderSVG(doc, sink.WithLabels(), sink.WithFill())
//
// Options:
//   - [WithLabels]: print the item label (or ID, or index) centred in each cell
//   - [WithFill]: fill cells with a colour derived from the item index
//   - [WithBackground]: canvas colour (default "#1e1e1e")
package sink
