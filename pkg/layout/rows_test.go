package layout

import "testing"

func squares(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Index: i, Aspect: 1}
	}
	return items
}

func rowSizes(rows [][]Item) []int {
	sizes := make([]int, len(rows))
	for i, r := range rows {
		sizes[i] = len(r)
	}
	return sizes
}

func TestPartitionRows(t *testing.T) {
	tests := []struct {
		name         string
		n            int
		canvasAspect float64
		want         []int
	}{
		{"single", 1, 1, []int{1}},
		{"wide canvas keeps one row", 4, 4, []int{4}},
		{"even split", 4, 1, []int{2, 2}},
		{"uneven split", 5, 1, []int{3, 2}},
		{"orphan merged", 7, 1, []int{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowSizes(PartitionRows(squares(tt.n), tt.canvasAspect))
			if len(got) != len(tt.want) {
				t.Fatalf("row sizes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("row sizes = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestPartitionRowsSortsWidestFirst(t *testing.T) {
	items := []Item{{0, 0.5, 0}, {1, 2, 0}, {2, 1, 0}, {3, 3, 0}}
	rows := PartitionRows(items, 1)

	var order []int
	for _, r := range rows {
		for _, it := range r {
			order = append(order, it.Index)
		}
	}
	want := []int{3, 1, 2, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPartitionRowsEmpty(t *testing.T) {
	if rows := PartitionRows(nil, 1); len(rows) != 0 {
		t.Errorf("got %d rows, want none", len(rows))
	}
}
