// Package pkg provides the core libraries for mosaic collage layouts.
//
// # Overview
//
// Mosaic arranges media items, each with an aspect ratio, into cells on a
// fixed-size canvas. The pkg directory is organized as:
//
//  1. [layout] - The layout engine (grid, dynamic, masonry, treemap, pack)
//  2. [manifest] - JSON, TOML and YAML layout request documents
//  3. [pipeline] - Orchestration (validate → layout → clamp → render)
//  4. [sink] - Output documents (JSON, wireframe SVG)
//  5. [errors] - Coded errors and input validation
//  6. [observability] - Hooks for metrics and tracing
//
// # Architecture
//
// The typical data flow:
//
//	Manifest (json/toml/yaml)
//	         ↓
//	    [manifest] package (decode + validate)
//	         ↓
//	    [layout] package (cell rectangles)
//	         ↓
//	    [sink] package (JSON document, SVG preview)
//
// # Quick Start
//
// The engine can be used on its own:
//
//	import "github.com/matzehuels/mosaic/pkg/layout"
//
//	items := []layout.Item{{Index: 0, Aspect: 16.0 / 9}, {Index: 1, Aspect: 0.75}}
//	cells := layout.Calculate(items, layout.Options{
//	    Type:   layout.Treemap,
//	    Width:  1920,
//	    Height: 1080,
//	    Gap:    8,
//	})
//	cells = layout.Clamp(cells, 1920, 1080)
//
// Or through the pipeline, which validates input and renders output:
//
//	m, _ := manifest.Read("photos.toml")
//	result, err := pipeline.NewRunner(logger).Execute(ctx, pipeline.FromManifest(m))
//
// The layout engine is pure: it holds no state, never logs and never
// mutates its inputs, so it is safe for concurrent use.
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/layout
// [manifest]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/manifest
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/pipeline
// [sink]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/sink
// [errors]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/observability
package pkg
