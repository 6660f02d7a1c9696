package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/layout"
)

func sampleDocument() Document {
	opts := layout.Options{Type: layout.Grid, Width: 200, Height: 100}
	cells := layout.Calculate([]layout.Item{{Index: 0, Aspect: 1}, {Index: 1, Aspect: 1}}, opts)
	return NewDocument(opts, cells, []Meta{{ID: "a", Label: "Beach <2024>"}})
}

func TestNewDocument(t *testing.T) {
	doc := sampleDocument()

	if doc.Algorithm != "grid" || doc.Width != 200 || doc.Height != 100 {
		t.Errorf("header = %+v", doc)
	}
	if len(doc.Cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(doc.Cells))
	}
	if doc.Cells[0].ID != "a" || doc.Cells[0].Label != "Beach <2024>" {
		t.Errorf("cell 0 meta = %+v", doc.Cells[0])
	}
	if doc.Cells[1].ID != "" {
		t.Errorf("cell 1 should have no meta, got %+v", doc.Cells[1])
	}
	if doc.Cells[1].X != 100 || doc.Cells[1].Width != 100 {
		t.Errorf("cell 1 = %+v, want 100 wide at x=100", doc.Cells[1])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := sampleDocument()
	data, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !strings.Contains(string(data), `"algorithm": "grid"`) {
		t.Errorf("JSON missing algorithm:\n%s", data)
	}

	back, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	got, want := back.LayoutCells(), doc.LayoutCells()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRenderJSONEmptyCells(t *testing.T) {
	data, err := RenderJSON(Document{Algorithm: "dynamic", Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !strings.Contains(string(data), `"cells": []`) {
		t.Errorf("empty layout should serialize cells as []:\n%s", data)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"width":0,"height":0}`)); err == nil {
		t.Error("ParseJSON should reject a zero canvas")
	}
	if _, err := ParseJSON([]byte(`{`)); err == nil {
		t.Error("ParseJSON should reject malformed JSON")
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sampleDocument(), WithLabels(), WithFill()))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("not an SVG document:\n%s", svg)
	}
	if n := strings.Count(svg, `class="cell"`); n != 2 {
		t.Errorf("got %d cell rects, want 2", n)
	}
	if !strings.Contains(svg, "Beach &lt;2024&gt;") {
		t.Error("label should be escaped and present")
	}
	if !strings.Contains(svg, ">#1</text>") {
		t.Error("cell without meta should be labelled by index")
	}
}

func TestRenderSVGOutlineOnly(t *testing.T) {
	svg := string(RenderSVG(sampleDocument(), WithBackground("white")))
	if strings.Contains(svg, "<text") {
		t.Error("labels should be off by default")
	}
	if !strings.Contains(svg, `fill="none"`) {
		t.Error("cells should be outlines without WithFill")
	}
	if !strings.Contains(svg, `fill="white"`) {
		t.Error("background option not applied")
	}
}
