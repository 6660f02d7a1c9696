package layout

// Media describes the natural dimensions of an image or video.
type Media struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Aspect returns Width/Height, or DefaultAspect when either dimension is not positive.
func (m *Media) Aspect() float64 {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return DefaultAspect
	}
	return float64(m.Width) / float64(m.Height)
}

// FromMedia builds an Item for the media at index. A nil media gets DefaultAspect.
func FromMedia(m *Media, index int) Item {
	return Item{Index: index, Aspect: m.Aspect()}
}
