package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/mosaic/pkg/layout"
)

// Meta carries the caller's identifiers for one item.
type Meta struct {
	ID    string
	Label string
}

// Document is the unified serialization format for a layout run.
type Document struct {
	Algorithm string         `json:"algorithm"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Gap       int            `json:"gap,omitempty"`
	Cells     []DocumentCell `json:"cells"`
}

// DocumentCell is a placed cell plus the identifiers of its item.
type DocumentCell struct {
	Index  int    `json:"index"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	ID     string `json:"id,omitempty"`
	Label  string `json:"label,omitempty"`
}

// NewDocument combines layout output with item identifiers. meta is indexed
// by media index and may be shorter than the item list or nil.
func NewDocument(opts layout.Options, cells []layout.Cell, meta []Meta) Document {
	doc := Document{
		Algorithm: opts.Type.String(),
		Width:     opts.Width,
		Height:    opts.Height,
		Gap:       opts.Gap,
		Cells:     make([]DocumentCell, len(cells)),
	}
	for i, c := range cells {
		dc := DocumentCell{Index: c.MediaIndex, X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
		if c.MediaIndex >= 0 && c.MediaIndex < len(meta) {
			dc.ID = meta[c.MediaIndex].ID
			dc.Label = meta[c.MediaIndex].Label
		}
		doc.Cells[i] = dc
	}
	return doc
}

// LayoutCells returns the document's cells as layout cells.
func (d Document) LayoutCells() []layout.Cell {
	cells := make([]layout.Cell, len(d.Cells))
	for i, c := range d.Cells {
		cells[i] = layout.Cell{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height, MediaIndex: c.Index}
	}
	return cells
}

// title returns the text shown for a cell: label, then ID, then index.
func (c DocumentCell) title() string {
	switch {
	case c.Label != "":
		return c.Label
	case c.ID != "":
		return c.ID
	}
	return fmt.Sprintf("#%d", c.Index)
}

// RenderJSON serializes a Document to pretty-printed JSON bytes.
func RenderJSON(d Document) ([]byte, error) {
	if d.Cells == nil {
		d.Cells = []DocumentCell{}
	}
	return json.MarshalIndent(d, "", "  ")
}

// ParseJSON deserializes a Document produced by RenderJSON.
func ParseJSON(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return Document{}, fmt.Errorf("layout must have a positive canvas, got %dx%d", d.Width, d.Height)
	}
	return d, nil
}
