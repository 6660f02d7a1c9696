package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxCanvasSide bounds either canvas dimension.
const MaxCanvasSide = 1 << 15

// ValidateCanvas checks that both canvas dimensions are positive and bounded.
// The layout engine accepts any dimensions, but non-positive ones only
// produce degenerate cells.
func ValidateCanvas(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidCanvas, "canvas must be positive, got %dx%d", width, height)
	}
	if width > MaxCanvasSide || height > MaxCanvasSide {
		return New(ErrCodeInvalidCanvas, "canvas too large (max %d per side), got %dx%d", MaxCanvasSide, width, height)
	}
	return nil
}

// ValidateGap checks that gap is non-negative and leaves room inside the canvas.
func ValidateGap(gap, width, height int) error {
	if gap < 0 {
		return New(ErrCodeInvalidGap, "gap cannot be negative, got %d", gap)
	}
	if 2*gap >= width || 2*gap >= height {
		return New(ErrCodeInvalidGap, "gap %d leaves no room on a %dx%d canvas", gap, width, height)
	}
	return nil
}

// ValidateGrid checks explicit column and row counts. Zero means derive.
func ValidateGrid(columns, rows int) error {
	if columns < 0 {
		return New(ErrCodeInvalidGrid, "columns cannot be negative, got %d", columns)
	}
	if rows < 0 {
		return New(ErrCodeInvalidGrid, "rows cannot be negative, got %d", rows)
	}
	return nil
}

// ValidateAspect checks that an item's aspect ratio is positive and finite.
// The engine clamps bad values instead of failing; this lets callers reject
// them up front.
func ValidateAspect(index int, aspect float64) error {
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return New(ErrCodeInvalidItem, "item %d: aspect ratio must be positive and finite, got %v", index, aspect)
	}
	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "manifest filename contains invalid control characters")
		}
	}

	return nil
}
