package layout

import (
	"cmp"
	"math"
	"slices"
)

// PartitionRows groups items into rows for DynamicLayout.
//
// Items are sorted by aspect ratio, widest first, so that similar shapes end up
// together. The target number of rows is
//
//	max(1, round(sqrt(n / (canvasAspect / averageAspect))))
//
// and rows are filled greedily with ceil(n/targetRows) items each. A single
// trailing item is merged into the previous row as long as that row stays
// within one item of the target. The returned items are copies with sanitized
// aspect ratios.
func PartitionRows(items []Item, canvasAspect float64) [][]Item {
	n := len(items)
	if n == 0 {
		return nil
	}

	sorted := make([]Item, n)
	var sum float64
	for i, it := range items {
		it.Aspect = sanitizeAspect(it.Aspect)
		sorted[i] = it
		sum += it.Aspect
	}
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return cmp.Compare(b.Aspect, a.Aspect)
	})

	avg := sum / float64(n)
	targetRows := 1
	if canvasAspect > 0 {
		targetRows = max(1, int(math.Round(math.Sqrt(float64(n)/(canvasAspect/avg)))))
	}
	perRow := int(math.Ceil(float64(n) / float64(targetRows)))

	var rows [][]Item
	for start := 0; start < n; start += perRow {
		end := min(start+perRow, n)
		rows = append(rows, sorted[start:end:end])
	}

	if last := len(rows) - 1; last > 0 && len(rows[last]) == 1 {
		if prev := rows[last-1]; len(prev)+1 <= perRow+1 {
			rows[last-1] = append(prev, rows[last][0])
			rows = rows[:last]
		}
	}
	return rows
}
