package layout

// DynamicLayout fills the canvas with rows of cells that keep each item's
// aspect ratio; only the row height varies.
//
// A single item is centred at the largest size that fits. Otherwise items are
// grouped with PartitionRows, every row gets the height at which it would span
// the available width, and all heights are scaled by one factor so the rows
// fill the available height. The last cell of each row absorbs rounding slack
// up to the right margin.
//
// Cell widths are floor(rowHeight*aspect). A row whose widths would leave no
// room for its last cell gets the height at which it spans the available
// width exactly, so its cells keep their aspect ratios.
func DynamicLayout(items []Item, width, height, gap int) []Cell {
	switch len(items) {
	case 0:
		return []Cell{}
	case 1:
		return []Cell{centered(items[0], width, height, gap)}
	}

	availW := float64(width - 2*gap)
	rows := PartitionRows(items, float64(width)/float64(height))

	ideal := make([]float64, len(rows))
	var totalIdeal float64
	for i, row := range rows {
		rowW := availW - float64(gap*(len(row)-1))
		ideal[i] = rowW / sumAspect(row)
		totalIdeal += ideal[i]
	}

	availH := float64(height - gap*(len(rows)+1))
	scale := availH / totalIdeal

	cells := make([]Cell, 0, len(items))
	right := width - gap
	y := gap
	for i, row := range rows {
		rowH := floor(ideal[i] * scale)
		widths := rowWidths(row, rowH, gap, right)
		if widths[len(widths)-1] <= 0 {
			rowH = floor(ideal[i])
			widths = rowWidths(row, rowH, gap, right)
		}

		x := gap
		for j, it := range row {
			cells = append(cells, Cell{X: x, Y: y, Width: widths[j], Height: rowH, MediaIndex: it.Index})
			x += widths[j] + gap
		}
		y += rowH + gap
	}
	return cells
}

// rowWidths returns floor(rowH*aspect) for every cell of a row but the last,
// which takes whatever is left up to right.
func rowWidths(row []Item, rowH, gap, right int) []int {
	widths := make([]int, len(row))
	x := gap
	for j, it := range row[:len(row)-1] {
		widths[j] = floor(float64(rowH) * it.Aspect)
		x += widths[j] + gap
	}
	widths[len(row)-1] = right - x
	return widths
}

// centered sizes a single item to the available area and centres it on the
// axis it does not fill.
//
// The item's aspect is compared with the aspect of the area inside the gap
// margins, not the whole canvas, so a full-width item never overflows the
// available height.
func centered(it Item, width, height, gap int) Cell {
	aspect := sanitizeAspect(it.Aspect)
	availW, availH := width-2*gap, height-2*gap
	availAspect := float64(availW) / float64(availH)

	c := Cell{MediaIndex: it.Index}
	if aspect > availAspect {
		c.Width = availW
		c.Height = floor(float64(availW) / aspect)
		c.X = gap
		c.Y = gap + floor(float64(availH-c.Height)/2)
	} else {
		c.Height = availH
		c.Width = floor(float64(availH) * aspect)
		c.X = gap + floor(float64(availW-c.Width)/2)
		c.Y = gap
	}
	return c
}

func sumAspect(row []Item) float64 {
	var s float64
	for _, it := range row {
		s += it.Aspect
	}
	return s
}
