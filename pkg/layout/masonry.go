package layout

import "math"

// MasonryLayout places items into equal-width columns, always appending to the
// currently shortest column. When columns is not positive it defaults to
// max(2, ceil(sqrt(len(items)))).
//
// If the tallest column ends up taller than the canvas, every cell's Y and
// Height are scaled by (height-gap)/tallest. X and Width are left alone, so a
// squeezed layout no longer matches the items' aspect ratios.
func MasonryLayout(items []Item, width, height, gap, columns int) []Cell {
	if len(items) == 0 {
		return []Cell{}
	}
	if columns <= 0 {
		columns = max(2, int(math.Ceil(math.Sqrt(float64(len(items))))))
	}

	colW := floor(float64(width-gap*(columns+1)) / float64(columns))
	heights := make([]int, columns)
	for i := range heights {
		heights[i] = gap
	}

	cells := make([]Cell, 0, len(items))
	for _, it := range items {
		col := shortest(heights)
		h := floor(float64(colW) / sanitizeAspect(it.Aspect))
		cells = append(cells, Cell{
			X:          gap + col*(colW+gap),
			Y:          heights[col],
			Width:      colW,
			Height:     h,
			MediaIndex: it.Index,
		})
		heights[col] += h + gap
	}

	tallest := heights[0]
	for _, h := range heights[1:] {
		tallest = max(tallest, h)
	}
	if tallest > height {
		scale := float64(height-gap) / float64(tallest)
		for i := range cells {
			cells[i].Y = floor(float64(cells[i].Y) * scale)
			cells[i].Height = floor(float64(cells[i].Height) * scale)
		}
	}
	return cells
}

// shortest returns the index of the lowest column, preferring the leftmost on ties.
func shortest(heights []int) int {
	best := 0
	for i, h := range heights {
		if h < heights[best] {
			best = i
		}
	}
	return best
}
