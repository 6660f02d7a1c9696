package layout

// Clamp returns copies of cells that lie within a width×height canvas.
// Sizes are capped to the canvas first, then positions are clamped into
// [0, canvas-size]. Overlaps between cells are left as they are.
//
// Clamp is idempotent and never modifies its input.
func Clamp(cells []Cell, width, height int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		c.Width = min(c.Width, width)
		c.Height = min(c.Height, height)
		c.X = clampInt(c.X, 0, width-c.Width)
		c.Y = clampInt(c.Y, 0, height-c.Height)
		out[i] = c
	}
	return out
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
