package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/sink"
)

const testManifest = `algorithm = "grid"
gap = 10

[canvas]
width = 800
height = 600

[[items]]
id = "a"
aspect = 1.5

[[items]]
id = "b"
width = 1080
height = 1920

[[items]]
id = "c"
`

func writeManifest(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func readDocument(t *testing.T, path string) sink.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	doc, err := sink.ParseJSON(data)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return doc
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()
	want := []string{"layout", "preview", "explore", "serve", "algorithms", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	path := writeManifest(t, "photos.toml", testManifest)
	if _, err := execute(t, "layout", path); err != nil {
		t.Fatalf("layout: %v", err)
	}

	doc := readDocument(t, outputName(path, ".layout.json"))
	if doc.Algorithm != "grid" || doc.Width != 800 || doc.Height != 600 || doc.Gap != 10 {
		t.Errorf("document header = %+v", doc)
	}
	if len(doc.Cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(doc.Cells))
	}
	if c := doc.Cells[0]; c.X != 10 || c.Y != 10 || c.Width != 385 || c.Height != 285 || c.ID != "a" {
		t.Errorf("first cell = %+v", c)
	}
}

func TestLayoutCommandOverrides(t *testing.T) {
	path := writeManifest(t, "photos.toml", testManifest)
	out := filepath.Join(t.TempDir(), "custom.json")
	stdout, err := execute(t, "layout", path, "-o", out, "--type", "masonry", "--width", "400", "--gap", "0", "--table")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	doc := readDocument(t, out)
	if doc.Algorithm != "masonry" || doc.Width != 400 || doc.Gap != 0 {
		t.Errorf("document header = %+v", doc)
	}
	for _, c := range doc.Cells {
		if c.X+c.Width > 400 {
			t.Errorf("cell %+v exceeds overridden width", c)
		}
	}
	if !strings.Contains(stdout, "Height") || !strings.Contains(stdout, "a") {
		t.Errorf("table output missing: %q", stdout)
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		args []string
		code errors.Code
	}{
		{"unknown extension", "photos.txt", testManifest, nil, errors.ErrCodeInvalidManifest},
		{"bad override", "photos.toml", testManifest, []string{"--gap", "400"}, errors.ErrCodeInvalidGap},
		{"bad item", "photos.json", `{"canvas":{"width":10,"height":10},"items":[{"aspect":-2}]}`, nil, errors.ErrCodeInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.file, tt.body)
			_, err := execute(t, append([]string{"layout", path}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}

	_, err := execute(t, "layout", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestPreviewCommand(t *testing.T) {
	path := writeManifest(t, "photos.yaml", `
canvas: {width: 640, height: 480}
algorithm: treemap
items:
  - {label: "Sunset & sea", aspect: 1.7}
  - {aspect: 0.8, area: 3}
`)
	if _, err := execute(t, "preview", path, "--labels"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	svg, err := os.ReadFile(outputName(path, ".svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("Sunset &amp; sea")) {
		t.Errorf("svg = %s", svg)
	}
}

func TestPreviewFromLayout(t *testing.T) {
	path := writeManifest(t, "photos.toml", testManifest)
	if _, err := execute(t, "layout", path); err != nil {
		t.Fatalf("layout: %v", err)
	}
	layoutPath := outputName(path, ".layout.json")
	if _, err := execute(t, "preview", layoutPath); err != nil {
		t.Fatalf("preview: %v", err)
	}
	svg, err := os.ReadFile(outputName(path, ".svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if got := bytes.Count(svg, []byte(`class="cell"`)); got != 3 {
		t.Errorf("svg has %d cells, want 3", got)
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := execute(t, "algorithms")
	if err != nil {
		t.Fatalf("algorithms: %v", err)
	}
	for _, name := range algorithmNames() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q", name)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "mosaic") {
		t.Error("bash completion should mention the binary name")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestManifestCompletion(t *testing.T) {
	for _, sub := range []string{"layout", "preview", "explore"} {
		t.Run(sub, func(t *testing.T) {
			out, err := execute(t, cobra.ShellCompRequestCmd, sub, "")
			if err != nil {
				t.Fatalf("complete: %v", err)
			}
			for _, ext := range manifestExtensions {
				if !strings.Contains(out, ext+"\n") {
					t.Errorf("completion %q missing extension %q", out, ext)
				}
			}
			if !strings.Contains(out, fmt.Sprintf(":%d\n", cobra.ShellCompDirectiveFilterFileExt)) {
				t.Errorf("completion %q should filter by extension", out)
			}
		})
	}

	out, err := execute(t, cobra.ShellCompRequestCmd, "layout", "photos.toml", "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if strings.Contains(out, "toml\n") {
		t.Errorf("second argument should not complete files: %q", out)
	}
}

func TestAlgorithmFlagCompletion(t *testing.T) {
	out, err := execute(t, cobra.ShellCompRequestCmd, "preview", "--type", "t")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(out, "treemap\t"+layout.Treemap.Summary()) {
		t.Errorf("completion %q missing treemap", out)
	}
	if strings.Contains(out, "grid") {
		t.Errorf("completion %q should only offer names starting with t", out)
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct{ in, suffix, want string }{
		{"photos.toml", ".layout.json", "photos.layout.json"},
		{"dir/set.yaml", ".svg", "dir/set.svg"},
		{"noext", ".svg", "noext.svg"},
	}
	for _, tt := range tests {
		if got := outputName(tt.in, tt.suffix); got != tt.want {
			t.Errorf("outputName(%q, %q) = %q, want %q", tt.in, tt.suffix, got, tt.want)
		}
	}
}
