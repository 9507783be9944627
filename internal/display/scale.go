package display

import (
	"math"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// Matrix geometry.
const (
	Size = 8
	// PixelsPerBar is the height of a full bar.
	PixelsPerBar = 8
	// barOffset lifts values slightly so mid-range readings round up.
	barOffset = 0.05
)

// BarHeight scales value within span to the index of the topmost lit pixel:
// round(8 * ((value - low) / (high - low) + 0.05)) - 1, clamped to [0, 7].
func BarHeight(value float64, span climate.Range) int {
	if span.Span() <= 0 || math.IsNaN(value) || math.IsInf(value, -1) {
		return 0
	}

	h := math.Round(PixelsPerBar*((value-span.Low)/span.Span()+barOffset)) - 1

	// Clamp before converting: huge or infinite values have no defined int form.
	return int(math.Max(0, math.Min(Size-1, h)))
}

// clamp limits an index to the matrix.
func clamp(i int) int {
	return min(max(i, 0), Size-1)
}
