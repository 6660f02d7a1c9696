package layout

import "math"

// GridLayout places count uniform cells in a columns×rows grid. If either
// columns or rows is not positive both are derived: columns = ceil(sqrt(count)),
// rows = ceil(count/columns). Cell i sits at column i%columns, row i/columns
// and its MediaIndex is i.
//
// Aspect ratios play no role, which is why the function takes a count rather
// than items. Grid slots beyond count are not emitted.
func GridLayout(count, width, height, columns, rows, gap int) []Cell {
	if count <= 0 {
		return []Cell{}
	}
	if columns <= 0 || rows <= 0 {
		columns = int(math.Ceil(math.Sqrt(float64(count))))
		rows = int(math.Ceil(float64(count) / float64(columns)))
	}

	cellW := floor(float64(width-gap*(columns+1)) / float64(columns))
	cellH := floor(float64(height-gap*(rows+1)) / float64(rows))

	cells := make([]Cell, count)
	for i := range cells {
		col, row := i%columns, i/columns
		cells[i] = Cell{
			X:          gap + col*(cellW+gap),
			Y:          gap + row*(cellH+gap),
			Width:      cellW,
			Height:     cellH,
			MediaIndex: i,
		}
	}
	return cells
}
