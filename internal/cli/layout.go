package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// layoutCommand creates the layout command for computing cell positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		showTable bool
		flags     layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [manifest]",
		Short: "Compute cell positions for a manifest",
		Long: `Compute cell positions for a manifest.

The layout command reads a JSON, TOML or YAML manifest describing the canvas
and the media items, runs the selected algorithm and writes a layout.json
document listing one rectangle per item. Flags override manifest fields.

Cells are clamped to the canvas unless --no-clamp is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], &flags, output, showTable)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <manifest>.layout.json)")
	cmd.Flags().BoolVar(&showTable, "table", false, "print the cells as a table")
	flags.register(cmd)

	return cmd
}

// runLayout loads the manifest, computes the layout and writes the JSON document.
func (c *CLI) runLayout(cmd *cobra.Command, input string, flags *layoutFlags, output string, showTable bool) error {
	ctx := cmd.Context()
	req, _, err := c.loadRequest(cmd, input, flags)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}
	req.Options.Formats = []string{pipeline.FormatJSON}

	r := startRun(c.Logger)
	result, err := pipeline.NewRunner(c.Logger).Execute(ctx, req)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	r.finished(req.Options, result.Stats)

	outputPath := output
	if outputPath == "" {
		outputPath = outputName(input, ".layout.json")
	}
	if err := os.WriteFile(outputPath, result.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if showTable {
		fmt.Fprintln(cmd.OutOrStdout(), cellTable(result.Document))
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.Items, result.Stats.Cells, req.Options.Algorithm)
	printNewline()
	printNextStep("Preview", appName+" preview "+outputPath)

	return nil
}

// outputName replaces the extension of input with suffix.
func outputName(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}
