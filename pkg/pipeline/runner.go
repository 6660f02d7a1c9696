package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/sink"
)

// Runner executes layout requests.
//
// The Runner is stateless apart from its logger, so multiple goroutines can
// share one Runner with different requests.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs layout and rendering for req.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	opts := req.Options
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	for _, it := range req.Items {
		if err := errors.ValidateAspect(it.Index, it.Aspect); err != nil {
			return nil, err
		}
		if it.Area < 0 {
			return nil, errors.New(errors.ErrCodeInvalidItem, "item %d: area cannot be negative, got %v", it.Index, it.Area)
		}
	}

	result := &Result{
		ID:        uuid.NewString(),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats:     Stats{Items: len(req.Items)},
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cells, layoutTime := r.layout(ctx, req.Items, opts)
	result.Cells = cells
	result.Stats.Cells = len(cells)
	result.Stats.LayoutTime = layoutTime
	logger.Debug("layout complete", "id", result.ID, "algorithm", opts.Algorithm, "items", len(req.Items), "cells", len(cells), "duration", layoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Document = sink.NewDocument(opts.LayoutOptions(), cells, req.Meta)
	renderTime, err := r.render(ctx, result, opts)
	result.Stats.RenderTime = renderTime
	if err != nil {
		return nil, err
	}
	logger.Debug("render complete", "id", result.ID, "formats", opts.Formats, "duration", renderTime)

	return result, nil
}

func (r *Runner) layout(ctx context.Context, items []layout.Item, opts Options) ([]layout.Cell, time.Duration) {
	name := opts.Algorithm.String()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, name, len(items))

	start := time.Now()
	cells := layout.Calculate(items, opts.LayoutOptions())
	if !opts.NoClamp {
		cells = layout.Clamp(cells, opts.Width, opts.Height)
	}
	elapsed := time.Since(start)

	hooks.OnLayoutComplete(ctx, name, len(cells), elapsed, nil)
	return cells, elapsed
}

func (r *Runner) render(ctx context.Context, result *Result, opts Options) (elapsed time.Duration, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		elapsed = time.Since(start)
		hooks.OnRenderComplete(ctx, opts.Formats, elapsed, err)
	}()

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		var data []byte
		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(result.Document)
			if err != nil {
				return 0, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
		case FormatSVG:
			data = sink.RenderSVG(result.Document, opts.SVGOptions()...)
		default:
			return 0, fmt.Errorf("unsupported format: %s", format)
		}
		result.Artifacts[format] = data
	}
	return 0, nil
}
