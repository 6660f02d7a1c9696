// Package pipeline provides the layout pipeline shared by the CLI and the API.
//
// A run validates its options, converts the request into layout items, runs
// the layout engine, optionally clamps the cells to the canvas and renders
// the requested output formats. Centralizing this keeps the CLI and the HTTP
// server behaving identically.
//
// # Usage
//
//	m, err := manifest.Read("photos.toml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.FromManifest(m))
//	if err != nil {
//	    return err
//	}
//	doc := result.Artifacts[pipeline.FormatJSON]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/manifest"
	"github.com/matzehuels/mosaic/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1920

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 1080
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
}

// =============================================================================
// Options
// =============================================================================

// Options holds everything needed to run one layout.
// Zero values are replaced by SetDefaults.
type Options struct {
	Algorithm layout.Algorithm `json:"algorithm"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Gap       int              `json:"gap,omitempty"`
	Columns   int              `json:"columns,omitempty"`
	Rows      int              `json:"rows,omitempty"`

	// NoClamp skips the bounds clamping post-pass.
	NoClamp bool `json:"no_clamp,omitempty"`

	// Formats lists the artifacts to render (json, svg).
	Formats []string `json:"formats,omitempty"`

	// SVG rendering
	Labels bool `json:"labels,omitempty"`
	Fill   bool `json:"fill,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills zero-valued fields with defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Validate checks canvas, gap, grid and format fields.
func (o *Options) Validate() error {
	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateGap(o.Gap, o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateGrid(o.Columns, o.Rows); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ValidateAndSetDefaults applies defaults and then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// LayoutOptions returns the engine options for this run.
func (o Options) LayoutOptions() layout.Options {
	return layout.Options{
		Type:    o.Algorithm,
		Width:   o.Width,
		Height:  o.Height,
		Gap:     o.Gap,
		Columns: o.Columns,
		Rows:    o.Rows,
	}
}

// SVGOptions returns the sink options selected by Labels and Fill.
func (o Options) SVGOptions() []sink.SVGOption {
	var opts []sink.SVGOption
	if o.Labels {
		opts = append(opts, sink.WithLabels())
	}
	if o.Fill {
		opts = append(opts, sink.WithFill())
	}
	return opts
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be json or svg)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Request and Result
// =============================================================================

// Request is one layout run: the items, their identifiers and the options.
type Request struct {
	Items   []layout.Item
	Meta    []sink.Meta
	Options Options
}

// FromManifest builds a request from a decoded manifest.
// The manifest's algorithm name is resolved leniently; see UnknownAlgorithm.
func FromManifest(m *manifest.Manifest) Request {
	lo := m.Options()
	meta := make([]sink.Meta, len(m.Items))
	for i, e := range m.Items {
		meta[i] = sink.Meta{ID: e.ID, Label: e.Label}
	}
	return Request{
		Items: m.LayoutItems(),
		Meta:  meta,
		Options: Options{
			Algorithm: lo.Type,
			Width:     lo.Width,
			Height:    lo.Height,
			Gap:       lo.Gap,
			Columns:   lo.Columns,
			Rows:      lo.Rows,
		},
	}
}

// UnknownAlgorithm reports whether the manifest names an algorithm that
// will fall back to dynamic. An empty name is not unknown.
func UnknownAlgorithm(m *manifest.Manifest) bool {
	if m.Algorithm == "" {
		return false
	}
	_, ok := layout.ParseAlgorithm(m.Algorithm)
	return !ok
}

// Result holds the output of a pipeline run.
type Result struct {
	ID        string
	Document  sink.Document
	Cells     []layout.Cell
	Artifacts map[string][]byte
	Stats     Stats
}

// Stats records sizes and timings of a run.
type Stats struct {
	Items      int
	Cells      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// String formats the stats for log output.
func (s Stats) String() string {
	return fmt.Sprintf("%d items, %d cells, layout %s, render %s",
		s.Items, s.Cells, s.LayoutTime.Round(time.Microsecond), s.RenderTime.Round(time.Microsecond))
}
