package sink

import (
	"bytes"
	"fmt"
	"html"
)

// palette holds cell fill colours, picked by item index.
var palette = []string{
	"#e07a5f", "#3d405b", "#81b29a", "#f2cc8f",
	"#6d597a", "#b56576", "#457b9d", "#e9c46a",
}

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels     bool
	fill       bool
	background string
}

// WithLabels prints each cell's title in its centre.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithFill fills cells with a per-item colour instead of outlines only.
func WithFill() SVGOption { return func(r *svgRenderer) { r.fill = true } }

// WithBackground sets the canvas colour.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG draws the document's cells as a wireframe SVG.
func RenderSVG(d Document, opts ...SVGOption) []byte {
	r := svgRenderer{background: "#1e1e1e"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		d.Width, d.Height, d.Width, d.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		d.Width, d.Height, html.EscapeString(r.background))

	for _, c := range d.Cells {
		r.renderCell(&buf, c)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderCell(buf *bytes.Buffer, c DocumentCell) {
	color := palette[abs(c.Index)%len(palette)]
	fill := "none"
	if r.fill {
		fill = color
	}
	fmt.Fprintf(buf, `  <rect class="cell" data-index="%d" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		c.Index, c.X, c.Y, max(c.Width, 0), max(c.Height, 0), fill, color)

	if !r.labels {
		return
	}
	size := max(10, min(c.Width, c.Height)/8)
	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="sans-serif" font-size="%d" fill="#f4f1de" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		c.X+c.Width/2, c.Y+c.Height/2, size, html.EscapeString(c.title()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
