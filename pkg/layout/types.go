package layout

import "math"

const (
	// DefaultAspect is the aspect ratio assumed for media without dimensions.
	DefaultAspect = 16.0 / 9.0

	// MinAspect replaces aspect ratios that are not strictly positive and finite.
	MinAspect = 0.01
)

// Item is a single media item to be placed.
type Item struct {
	// Index identifies the item in the caller's list and is echoed in Cell.MediaIndex.
	Index int `json:"index"`

	// Aspect is width divided by height of the item's natural content.
	Aspect float64 `json:"aspect"`

	// Area is an optional weight consulted only by the treemap. Zero means unset.
	Area float64 `json:"area,omitempty"`
}

// Cell is a positioned rectangle assigned to one item.
type Cell struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	MediaIndex int `json:"index"`
}

// Right returns the x coordinate just past the cell's right edge.
func (c Cell) Right() int { return c.X + c.Width }

// Bottom returns the y coordinate just past the cell's bottom edge.
func (c Cell) Bottom() int { return c.Y + c.Height }

// Options configures a single layout invocation.
type Options struct {
	Type   Algorithm
	Width  int
	Height int
	Gap    int

	// Columns and Rows are consulted by Grid (both) and Masonry (Columns).
	// Zero lets the algorithm derive them.
	Columns int
	Rows    int

	// Padding is reserved and currently unused by every algorithm.
	Padding int
}

// sanitizeAspect maps aspect ratios that would break the geometry to MinAspect.
func sanitizeAspect(a float64) float64 {
	if !(a > 0) || math.IsInf(a, 0) {
		return MinAspect
	}
	return a
}

// edgeEps absorbs float drift when snapping computed edges to pixels.
const edgeEps = 1e-6

// floor truncates toward negative infinity and converts to int.
func floor(v float64) int {
	return int(math.Floor(v))
}

// snap floors v, treating values within edgeEps below an integer as that integer.
func snap(v float64) int {
	return floor(v + edgeEps)
}
