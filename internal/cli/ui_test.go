package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/sink"
)

func TestCellTable(t *testing.T) {
	doc := sink.Document{
		Width: 100, Height: 100,
		Cells: []sink.DocumentCell{
			{Index: 0, X: 1, Y: 2, Width: 30, Height: 40, ID: "hero"},
			{Index: 7, X: 50, Y: 2, Width: 30, Height: 40},
		},
	}
	out := cellTable(doc)
	for _, want := range []string{"Index", "hero", "30", "40", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n") + 1; got < 5 {
		t.Errorf("table has %d lines, want header, border and two rows", got)
	}
}

func TestAlgorithmTable(t *testing.T) {
	out := algorithmTable()
	for _, name := range algorithmNames() {
		if !strings.Contains(out, name) {
			t.Errorf("table missing %q", name)
		}
	}
}
