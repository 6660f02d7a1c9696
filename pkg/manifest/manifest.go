package manifest

import (
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/layout"
)

// Manifest is a complete layout request.
type Manifest struct {
	Canvas    Canvas  `json:"canvas" toml:"canvas" yaml:"canvas"`
	Algorithm string  `json:"algorithm,omitempty" toml:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Gap       int     `json:"gap,omitempty" toml:"gap,omitempty" yaml:"gap,omitempty"`
	Columns   int     `json:"columns,omitempty" toml:"columns,omitempty" yaml:"columns,omitempty"`
	Rows      int     `json:"rows,omitempty" toml:"rows,omitempty" yaml:"rows,omitempty"`
	Items     []Entry `json:"items" toml:"items" yaml:"items"`
}

// Canvas holds the output dimensions in pixels.
type Canvas struct {
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`
}

// Entry describes one media item.
type Entry struct {
	ID     string  `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Label  string  `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Aspect float64 `json:"aspect,omitempty" toml:"aspect,omitempty" yaml:"aspect,omitempty"`
	Width  int     `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height int     `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Area   float64 `json:"area,omitempty" toml:"area,omitempty" yaml:"area,omitempty"`
}

// Item converts the entry at position index into a layout item.
// An explicit aspect wins over media dimensions.
func (e Entry) Item(index int) layout.Item {
	var it layout.Item
	switch {
	case e.Aspect != 0:
		it = layout.Item{Index: index, Aspect: e.Aspect}
	case e.Width != 0 || e.Height != 0:
		it = layout.FromMedia(&layout.Media{Width: e.Width, Height: e.Height}, index)
	default:
		it = layout.FromMedia(nil, index)
	}
	it.Area = e.Area
	return it
}

// LayoutItems converts all entries, indexed by position.
func (m *Manifest) LayoutItems() []layout.Item {
	items := make([]layout.Item, len(m.Items))
	for i, e := range m.Items {
		items[i] = e.Item(i)
	}
	return items
}

// Options returns the layout options described by the manifest.
// Unknown algorithm names resolve to dynamic.
func (m *Manifest) Options() layout.Options {
	alg, _ := layout.ParseAlgorithm(m.Algorithm)
	return layout.Options{
		Type:    alg,
		Width:   m.Canvas.Width,
		Height:  m.Canvas.Height,
		Gap:     m.Gap,
		Columns: m.Columns,
		Rows:    m.Rows,
	}
}

// Validate checks canvas, gap, grid and item fields.
func (m *Manifest) Validate() error {
	if err := errors.ValidateCanvas(m.Canvas.Width, m.Canvas.Height); err != nil {
		return err
	}
	if err := errors.ValidateGap(m.Gap, m.Canvas.Width, m.Canvas.Height); err != nil {
		return err
	}
	if err := errors.ValidateGrid(m.Columns, m.Rows); err != nil {
		return err
	}
	for i, e := range m.Items {
		if e.Aspect != 0 {
			if err := errors.ValidateAspect(i, e.Aspect); err != nil {
				return err
			}
		}
		if e.Width < 0 || e.Height < 0 {
			return errors.New(errors.ErrCodeInvalidItem, "item %d: dimensions cannot be negative, got %dx%d", i, e.Width, e.Height)
		}
		if (e.Width > 0) != (e.Height > 0) {
			return errors.New(errors.ErrCodeInvalidItem, "item %d: width and height must both be set, got %dx%d", i, e.Width, e.Height)
		}
		if e.Area < 0 {
			return errors.New(errors.ErrCodeInvalidItem, "item %d: area cannot be negative, got %v", i, e.Area)
		}
	}
	return nil
}
