package layout

import "fmt"

// Algorithm selects one of the layout strategies.
// The zero value is Dynamic.
type Algorithm int

const (
	Dynamic Algorithm = iota
	Grid
	Masonry
	Treemap
	Pack
)

var algorithmNames = [...]string{
	Dynamic: "dynamic",
	Grid:    "grid",
	Masonry: "masonry",
	Treemap: "treemap",
	Pack:    "pack",
}

var algorithmSummaries = [...]string{
	Dynamic: "aspect-preserving rows, centred on the canvas",
	Grid:    "uniform cells, aspect ratio ignored",
	Masonry: "equal-width columns, filled shortest first",
	Treemap: "squarified treemap weighted by area",
	Pack:    "shelf packing of equal-height items",
}

// Algorithms returns every algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{Grid, Dynamic, Masonry, Treemap, Pack}
}

// String returns the algorithm's canonical lowercase name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Summary returns a one-line description of the algorithm.
func (a Algorithm) Summary() string {
	if a < 0 || int(a) >= len(algorithmSummaries) {
		return ""
	}
	return algorithmSummaries[a]
}

// ParseAlgorithm resolves a case-sensitive algorithm name. Unknown and empty
// names resolve to Dynamic with ok set to false.
func ParseAlgorithm(name string) (a Algorithm, ok bool) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), true
		}
	}
	return Dynamic, false
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// Dynamic without error.
func (a *Algorithm) UnmarshalText(text []byte) error {
	*a, _ = ParseAlgorithm(string(text))
	return nil
}
