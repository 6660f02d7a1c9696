package layout

import "testing"

func TestPackLayoutFitsCanvas(t *testing.T) {
	items := append(mixedItems(), Item{Index: 7, Aspect: 3}, Item{Index: 8, Aspect: 0.3})
	const w, h, gap = 1920, 1080, 10

	cells := PackLayout(items, w, h, gap)
	if len(cells) != len(items) {
		t.Fatalf("got %d cells, want %d", len(cells), len(items))
	}
	for _, c := range cells {
		if c.X < gap || c.Y < gap || c.Right() > w-gap || c.Bottom() > h-gap {
			t.Errorf("cell %+v leaves the gap margin", c)
		}
		if c.Width <= 0 || c.Height <= 0 {
			t.Errorf("cell %+v has non-positive size", c)
		}
	}
}

func TestPackLayoutSingleCentered(t *testing.T) {
	cells := PackLayout([]Item{{Index: 0, Aspect: 1}}, 1000, 500, 0)
	c := cells[0]
	if c.Height < 499 || c.Height > 500 || c.Width < 499 || c.Width > 500 {
		t.Errorf("cell %+v, want ~500x500", c)
	}
	if c.X < 249 || c.X > 250 || c.Y != 0 {
		t.Errorf("cell %+v, want centred at x~250", c)
	}
}

func TestPackLayoutSharesShelves(t *testing.T) {
	// Four squares start at side ~707, so a 2000 wide canvas holds two per shelf.
	cells := PackLayout(squares(4), 2000, 1000, 0)

	ys := map[int]int{}
	for _, c := range cells {
		ys[c.Y]++
	}
	if len(ys) != 2 {
		t.Errorf("got %d shelves, want 2: %+v", len(ys), cells)
	}
}

func TestPackLayoutKeepsAspect(t *testing.T) {
	items := []Item{{0, 2, 0}, {1, 0.5, 0}, {2, 1, 0}}
	for _, c := range PackLayout(items, 1600, 900, 0) {
		want := items[c.MediaIndex].Aspect
		got := float64(c.Width) / float64(c.Height)
		if got < want*0.97 || got > want*1.03 {
			t.Errorf("cell %+v aspect %.3f, want ~%.3f", c, got, want)
		}
	}
}
