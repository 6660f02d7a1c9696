package layout

import (
	"cmp"
	"math"
	"slices"
)

type rect struct {
	x, y, w, h float64
}

func (r rect) right() float64  { return r.x + r.w }
func (r rect) bottom() float64 { return r.y + r.h }

type weighted struct {
	index int
	area  float64
}

// TreemapLayout partitions the canvas (minus a gap border) into one rectangle
// per item using the squarified treemap algorithm. Rectangle areas are
// proportional to item weights; their shapes approach squares rather than the
// items' own aspect ratios.
//
// An item's weight is its Area when positive, otherwise max(1, Aspect).
// Interior edges are pulled in by half the gap on each side so neighbours are
// separated by one gap.
func TreemapLayout(items []Item, width, height, gap int) []Cell {
	if len(items) == 0 {
		return []Cell{}
	}

	bounds := rect{
		x: float64(gap),
		y: float64(gap),
		w: float64(width - 2*gap),
		h: float64(height - 2*gap),
	}
	t := treemap{bounds: bounds, half: float64(gap) / 2, cells: make([]Cell, 0, len(items))}

	if bounds.w <= 0 || bounds.h <= 0 {
		for _, it := range items {
			t.cells = append(t.cells, Cell{X: gap, Y: gap, MediaIndex: it.Index})
		}
		return t.cells
	}

	t.squarify(normalizeWeights(items, bounds.w*bounds.h), bounds)
	return t.cells
}

// normalizeWeights scales item weights to sum to total and sorts them largest first.
func normalizeWeights(items []Item, total float64) []weighted {
	ws := make([]weighted, len(items))
	var sum float64
	for i, it := range items {
		a := it.Area
		if !(a > 0) || math.IsInf(a, 0) {
			a = max(1, sanitizeAspect(it.Aspect))
		}
		ws[i] = weighted{index: it.Index, area: a}
		sum += a
	}
	for i := range ws {
		ws[i].area = ws[i].area / sum * total
	}
	slices.SortStableFunc(ws, func(a, b weighted) int {
		return cmp.Compare(b.area, a.area)
	})
	return ws
}

// treemap accumulates cells for a single TreemapLayout call.
type treemap struct {
	bounds rect
	half   float64
	cells  []Cell
}

// squarify lays out rest inside free, one row or column at a time.
func (t *treemap) squarify(rest []weighted, free rect) {
	for len(rest) > 0 {
		if len(rest) == 1 {
			t.place(rest[0].index, free.x, free.y, free.right(), free.bottom())
			return
		}

		// Wide rectangles get a column along the left edge, tall ones a row along the top.
		column := free.w >= free.h
		side := min(free.w, free.h)

		n := 1
		for n < len(rest) && worst(rest[:n+1], side) <= worst(rest[:n], side) {
			n++
		}

		var sum float64
		for _, w := range rest[:n] {
			sum += w.area
		}
		thickness := sum / side

		// Neighbours share the exact same float edge so snapping never opens a seam.
		var offset float64
		for _, w := range rest[:n] {
			next := offset + w.area/thickness
			if column {
				t.place(w.index, free.x, free.y+offset, free.x+thickness, free.y+next)
			} else {
				t.place(w.index, free.x+offset, free.y, free.x+next, free.y+thickness)
			}
			offset = next
		}

		if column {
			free.x += thickness
			free.w -= thickness
		} else {
			free.y += thickness
			free.h -= thickness
		}
		rest = rest[n:]
	}
}

// worst returns the largest aspect ratio among row members laid against side.
func worst(row []weighted, side float64) float64 {
	var sum float64
	for _, w := range row {
		sum += w.area
	}
	thickness := sum / side

	var ratio float64
	for _, w := range row {
		extent := w.area / thickness
		ratio = max(ratio, thickness/extent, extent/thickness)
	}
	return ratio
}

// place snaps the rectangle spanning (x0,y0)-(x1,y1) to pixels after
// insetting every edge that borders another cell. A strip thinner than the
// gap yields a zero-sized cell.
func (t *treemap) place(index int, x0, y0, x1, y1 float64) {
	if x0 > t.bounds.x+edgeEps {
		x0 += t.half
	}
	if y0 > t.bounds.y+edgeEps {
		y0 += t.half
	}
	if x1 < t.bounds.right()-edgeEps {
		x1 -= t.half
	}
	if y1 < t.bounds.bottom()-edgeEps {
		y1 -= t.half
	}

	x, y := snap(x0), snap(y0)
	t.cells = append(t.cells, Cell{
		X:          x,
		Y:          y,
		Width:      max(0, snap(x1)-x),
		Height:     max(0, snap(y1)-y),
		MediaIndex: index,
	})
}
