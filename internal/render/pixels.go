package render

import "math"

// MaxPixelRatio caps surface density on high-DPI monitors.
const MaxPixelRatio = 2

// PixelRatio clamps a monitor scale factor to (0, MaxPixelRatio].
// Unknown or non-positive factors give 1.
func PixelRatio(scale float64) float64 {
	if math.IsNaN(scale) || scale <= 0 {
		return 1
	}
	return math.Min(scale, MaxPixelRatio)
}

// DeviceSize converts a logical size to device pixels, never below 1×1.
func DeviceSize(width, height int, ratio float64) (int, int) {
	w := int(math.Ceil(float64(width) * ratio))
	h := int(math.Ceil(float64(height) * ratio))
	return max(w, 1), max(h, 1)
}
