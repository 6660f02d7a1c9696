package layout

// Calculate runs the algorithm selected by opts.Type over items.
// Gap, Columns and Rows are passed through; algorithms ignore what they
// do not use. An empty item list yields an empty result.
func Calculate(items []Item, opts Options) []Cell {
	switch opts.Type {
	case Grid:
		cells := GridLayout(len(items), opts.Width, opts.Height, opts.Columns, opts.Rows, opts.Gap)
		for i := range cells {
			cells[i].MediaIndex = items[cells[i].MediaIndex].Index
		}
		return cells
	case Masonry:
		return MasonryLayout(items, opts.Width, opts.Height, opts.Gap, opts.Columns)
	case Treemap:
		return TreemapLayout(items, opts.Width, opts.Height, opts.Gap)
	case Pack:
		return PackLayout(items, opts.Width, opts.Height, opts.Gap)
	case Dynamic:
		return DynamicLayout(items, opts.Width, opts.Height, opts.Gap)
	default:
		return DynamicLayout(items, opts.Width, opts.Height, opts.Gap)
	}
}
