package layout

import "testing"

func TestGridLayoutDerivesColumns(t *testing.T) {
	cells := GridLayout(9, 1920, 1080, 0, 0, 0)
	if len(cells) != 9 {
		t.Fatalf("got %d cells, want 9", len(cells))
	}

	xs := map[int]bool{}
	for _, c := range cells {
		xs[c.X] = true
	}
	if len(xs) != 3 {
		t.Errorf("got %d distinct columns, want 3", len(xs))
	}
}

func TestGridLayoutExplicit(t *testing.T) {
	cells := GridLayout(4, 1000, 1000, 2, 2, 10)
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}
	if cells[0].X != 10 || cells[0].Y != 10 {
		t.Errorf("first cell at (%d,%d), want (10,10)", cells[0].X, cells[0].Y)
	}
	if cells[1].X <= cells[0].X {
		t.Errorf("second cell x = %d, want > %d", cells[1].X, cells[0].X)
	}

	want := []Cell{
		{X: 10, Y: 10, Width: 485, Height: 485, MediaIndex: 0},
		{X: 505, Y: 10, Width: 485, Height: 485, MediaIndex: 1},
		{X: 10, Y: 505, Width: 485, Height: 485, MediaIndex: 2},
		{X: 505, Y: 505, Width: 485, Height: 485, MediaIndex: 3},
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, cells[i], want[i])
		}
	}
}

func TestGridLayoutPartialRow(t *testing.T) {
	// 5 items derive a 3x2 grid; the sixth slot stays empty.
	cells := GridLayout(5, 900, 600, 0, 0, 0)
	if len(cells) != 5 {
		t.Fatalf("got %d cells, want 5", len(cells))
	}
	last := cells[4]
	if last.X != 300 || last.Y != 300 || last.Width != 300 || last.Height != 300 {
		t.Errorf("last cell = %+v, want 300x300 at (300,300)", last)
	}
}

func TestGridLayoutOnlyColumnsDerivesBoth(t *testing.T) {
	a := GridLayout(6, 1200, 800, 6, 0, 0)
	b := GridLayout(6, 1200, 800, 0, 0, 0)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d = %+v, want derived %+v", i, a[i], b[i])
		}
	}
}

func TestGridLayoutZeroCount(t *testing.T) {
	if cells := GridLayout(0, 1920, 1080, 0, 0, 0); len(cells) != 0 {
		t.Errorf("got %d cells, want none", len(cells))
	}
}
