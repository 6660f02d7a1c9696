package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/manifest"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// newLogger creates a logger that writes to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logManifest records what was loaded from path at debug level.
func logManifest(l *log.Logger, path string, m *manifest.Manifest) {
	l.Debug("manifest loaded",
		"path", path,
		"items", len(m.Items),
		"canvas", fmt.Sprintf("%dx%d", m.Canvas.Width, m.Canvas.Height),
		"algorithm", m.Algorithm)
}

// run measures one pipeline execution started by a command.
type run struct {
	logger *log.Logger
	start  time.Time
}

func startRun(l *log.Logger) *run {
	return &run{logger: l, start: time.Now()}
}

// finished logs "Laid out N items" with the algorithm, the cell count and
// the wall time since startRun.
func (r *run) finished(opts pipeline.Options, stats pipeline.Stats) {
	r.logger.Info(fmt.Sprintf("Laid out %d items", stats.Items),
		"algorithm", opts.Algorithm,
		"cells", stats.Cells,
		"clamped", !opts.NoClamp,
		"elapsed", time.Since(r.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
