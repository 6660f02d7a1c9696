package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/sink"
)

// layoutSuffix marks files written by the layout command.
const layoutSuffix = ".layout.json"

// previewCommand creates the preview command for rendering wireframe SVGs.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output string
		labels bool
		fill   bool
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "preview [manifest|layout.json]",
		Short: "Render a wireframe SVG of a layout",
		Long: `Render a wireframe SVG of a layout.

The input is either a manifest, which is laid out first, or a layout.json
document written by 'layout'. Layout flags only apply to manifests.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			var svgOpts []sink.SVGOption
			if labels {
				svgOpts = append(svgOpts, sink.WithLabels())
			}
			if fill {
				svgOpts = append(svgOpts, sink.WithFill())
			}

			var (
				data []byte
				err  error
			)
			if strings.HasSuffix(input, layoutSuffix) {
				data, err = previewDocument(input, svgOpts)
			} else {
				data, err = c.previewManifest(cmd, input, &flags, labels, fill)
			}
			if err != nil {
				return err
			}

			outputPath := output
			if outputPath == "" {
				outputPath = strings.TrimSuffix(input, layoutSuffix)
				outputPath = outputName(outputPath, ".svg")
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Preview complete")
			printFile(outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().BoolVar(&labels, "labels", false, "print item labels inside cells")
	cmd.Flags().BoolVar(&fill, "fill", false, "fill cells with per-item colours")
	flags.register(cmd)

	return cmd
}

func previewDocument(path string, opts []sink.SVGOption) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, err
	}
	doc, err := sink.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return sink.RenderSVG(doc, opts...), nil
}

func (c *CLI) previewManifest(cmd *cobra.Command, path string, flags *layoutFlags, labels, fill bool) ([]byte, error) {
	req, _, err := c.loadRequest(cmd, path, flags)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	req.Options.Formats = []string{pipeline.FormatSVG}
	req.Options.Labels = labels
	req.Options.Fill = fill

	r := startRun(c.Logger)
	result, err := pipeline.NewRunner(c.Logger).Execute(cmd.Context(), req)
	if err != nil {
		return nil, fmt.Errorf("compute layout: %w", err)
	}
	r.finished(req.Options, result.Stats)
	return result.Artifacts[pipeline.FormatSVG], nil
}
