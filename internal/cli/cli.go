// Package cli implements the mosaic command-line interface.
//
// # Commands
//
//   - layout: compute cell positions for a manifest and write them as JSON
//   - preview: render a wireframe SVG of a manifest or a saved layout
//   - explore: interactive terminal viewer that cycles algorithms and gaps
//   - serve: run the HTTP API
//   - algorithms: list the layout algorithms
//   - completion: generate shell completion scripts
//
// Manifests are JSON, TOML or YAML files describing the canvas and the
// items; see package manifest.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/manifest"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "mosaic"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mosaic arranges media items into collage layouts",
		Long: `Mosaic is a CLI tool for arranging images and videos into non-overlapping
cells on a fixed-size canvas. It supports grid, dynamic, masonry, treemap and
pack layouts and writes the resulting rectangles as JSON or a wireframe SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Layout Flags
// =============================================================================

// layoutFlags are the manifest overrides shared by layout, preview and explore.
type layoutFlags struct {
	algorithm string
	width     int
	height    int
	gap       int
	columns   int
	rows      int
	noClamp   bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.algorithm, "type", "t", "", "layout algorithm: "+strings.Join(algorithmNames(), ", "))
	fs.IntVar(&f.width, "width", 0, "canvas width in pixels")
	fs.IntVar(&f.height, "height", 0, "canvas height in pixels")
	fs.IntVar(&f.gap, "gap", 0, "spacing between and around cells")
	fs.IntVar(&f.columns, "columns", 0, "column count (grid, masonry)")
	fs.IntVar(&f.rows, "rows", 0, "row count (grid)")
	fs.BoolVar(&f.noClamp, "no-clamp", false, "skip clamping cells to the canvas")

	cmd.ValidArgsFunction = completeManifest
	_ = cmd.RegisterFlagCompletionFunc("type", completeAlgorithm)
}

// apply overrides the manifest with every flag the user set explicitly.
func (f *layoutFlags) apply(cmd *cobra.Command, m *manifest.Manifest) {
	fs := cmd.Flags()
	if fs.Changed("type") {
		m.Algorithm = f.algorithm
	}
	if fs.Changed("width") {
		m.Canvas.Width = f.width
	}
	if fs.Changed("height") {
		m.Canvas.Height = f.height
	}
	if fs.Changed("gap") {
		m.Gap = f.gap
	}
	if fs.Changed("columns") {
		m.Columns = f.columns
	}
	if fs.Changed("rows") {
		m.Rows = f.rows
	}
}

// loadRequest reads a manifest, applies flag overrides and builds a
// pipeline request. Overrides are validated along with the manifest.
func (c *CLI) loadRequest(cmd *cobra.Command, path string, flags *layoutFlags) (pipeline.Request, *manifest.Manifest, error) {
	m, err := manifest.Read(path)
	if err != nil {
		return pipeline.Request{}, nil, err
	}
	logManifest(c.Logger, path, m)
	flags.apply(cmd, m)
	if err := m.Validate(); err != nil {
		return pipeline.Request{}, nil, err
	}
	if pipeline.UnknownAlgorithm(m) {
		c.Logger.Warn("unknown algorithm, using dynamic", "algorithm", m.Algorithm)
	}

	req := pipeline.FromManifest(m)
	req.Options.NoClamp = flags.noClamp
	req.Options.Logger = c.Logger
	return req, m, nil
}

// algorithmNames lists algorithm names in display order.
func algorithmNames() []string {
	algs := layout.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.String()
	}
	return names
}
