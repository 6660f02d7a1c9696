package layout

import (
	"cmp"
	"math"
	"slices"
)

type shelf struct {
	y, height, used float64
}

type packed struct {
	index      int
	x, y, w, h float64
}

// PackLayout packs items onto horizontal shelves and then scales the result
// to fit the canvas.
//
// Every item starts at the same target height sqrt(width*height/n) with a
// width that keeps its aspect ratio. Items are taken tallest first and placed
// on the first shelf that has room and is tall enough; otherwise a new shelf
// opens below the others. The finished arrangement is scaled uniformly and
// centred inside the canvas minus the gap margin.
func PackLayout(items []Item, width, height, gap int) []Cell {
	if len(items) == 0 {
		return []Cell{}
	}

	g := float64(gap)
	targetH := math.Sqrt(float64(width) * float64(height) / float64(len(items)))

	boxes := make([]packed, len(items))
	for i, it := range items {
		boxes[i] = packed{index: it.Index, w: targetH * sanitizeAspect(it.Aspect), h: targetH}
	}
	slices.SortStableFunc(boxes, func(a, b packed) int {
		return cmp.Compare(b.h, a.h)
	})

	var shelves []shelf
	nextY := g
	for i := range boxes {
		b := &boxes[i]
		placed := false
		for s := range shelves {
			sh := &shelves[s]
			if sh.used+b.w+g <= float64(width) && sh.height >= b.h {
				b.x, b.y = sh.used, sh.y
				sh.used += b.w + g
				placed = true
				break
			}
		}
		if !placed {
			shelves = append(shelves, shelf{y: nextY, height: b.h, used: g + b.w + g})
			b.x, b.y = g, nextY
			nextY += b.h + g
		}
	}

	return fitPacked(boxes, width, height, gap)
}

// fitPacked scales the raw arrangement to the canvas and centres it.
func fitPacked(boxes []packed, width, height, gap int) []Cell {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range boxes {
		minX, minY = min(minX, b.x), min(minY, b.y)
		maxX, maxY = max(maxX, b.x+b.w), max(maxY, b.y+b.h)
	}

	availW := float64(width - 2*gap)
	availH := float64(height - 2*gap)
	boxW, boxH := maxX-minX, maxY-minY
	scale := min(availW/boxW, availH/boxH)

	offX := float64(gap) + (availW-boxW*scale)/2 - minX*scale
	offY := float64(gap) + (availH-boxH*scale)/2 - minY*scale

	cells := make([]Cell, len(boxes))
	for i, b := range boxes {
		cells[i] = Cell{
			X:          snap(offX + b.x*scale),
			Y:          snap(offY + b.y*scale),
			Width:      snap(b.w * scale),
			Height:     snap(b.h * scale),
			MediaIndex: b.index,
		}
	}
	return cells
}
