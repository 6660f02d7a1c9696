// Package manifest reads layout requests from JSON, TOML and YAML files.
//
// # Overview
//
// A manifest names the canvas, the layout algorithm and the media items to
// arrange. It is the file-based counterpart of an API request and is what the
// mosaic CLI consumes:
//
//	{
//	  "canvas": {"width": 1920, "height": 1080},
//	  "algorithm": "masonry",
//	  "gap": 8,
//	  "columns": 3,
//	  "items": [
//	    {"id": "beach", "width": 4032, "height": 3024},
//	    {"id": "clip", "aspect": 1.7778},
//	    {"id": "poster", "aspect": 0.6667, "area": 2}
//	  ]
//	}
//
// The same document in TOML:
//
//	algorithm = "masonry"
//	gap = 8
//
//	[canvas]
//	width = 1920
//	height = 1080
//
//	[[items]]
//	id = "beach"
//	width = 4032
//	height = 3024
//
// # Item Fields
//
// Each item provides its shape either as an explicit aspect ratio or as the
// natural width and height of the media. Items with neither get the default
// 16:9 aspect ratio. Optional fields:
//   - id, label: opaque strings echoed into exports
//   - area: treemap weight
//
// Items are indexed by their position in the list; that index is what layout
// cells refer to.
//
// # Formats
//
// The format is chosen from the file extension: .json, .toml, .yaml or .yml.
// Use [Decode] with an explicit [Format] for streams.
package manifest
