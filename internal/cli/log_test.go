package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/manifest"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

func TestLogManifestLevels(t *testing.T) {
	m := &manifest.Manifest{Canvas: manifest.Canvas{Width: 800, Height: 600}, Algorithm: "grid", Items: make([]manifest.Entry, 3)}

	tests := []struct {
		name    string
		level   log.Level
		wantLog bool
	}{
		{"hidden at info", log.InfoLevel, false},
		{"shown at debug", log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logManifest(newLogger(&buf, tt.level), "photos.toml", m)
			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Fatalf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
			if tt.wantLog {
				for _, want := range []string{"manifest loaded", "photos.toml", "items=3", "canvas=800x600"} {
					if !strings.Contains(buf.String(), want) {
						t.Errorf("output %q missing %q", buf.String(), want)
					}
				}
			}
		})
	}
}

func TestRunFinished(t *testing.T) {
	var buf bytes.Buffer
	r := startRun(newLogger(&buf, log.InfoLevel))
	r.finished(
		pipeline.Options{Algorithm: layout.Treemap, NoClamp: true},
		pipeline.Stats{Items: 3, Cells: 3},
	)

	out := buf.String()
	for _, want := range []string{"Laid out 3 items", "algorithm=treemap", "cells=3", "clamped=false", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLayoutCommandLogsRun(t *testing.T) {
	path := writeManifest(t, "photos.toml", testManifest)

	var buf bytes.Buffer
	root := New(&buf, log.DebugLevel).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"layout", path, "--type", "masonry"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("layout: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"manifest loaded", "algorithm=grid", "Laid out 3 items", "algorithm=masonry"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), l))
	if got != l {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	got.Info("serving", "addr", ":8080")
	if !strings.Contains(buf.String(), "addr=:8080") {
		t.Errorf("output = %q", buf.String())
	}
}
