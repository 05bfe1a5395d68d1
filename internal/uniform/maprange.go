package uniform

// MapRange linearly remaps value from [fromLow,fromHigh] to [toLow,toHigh].
// Values outside the source range extrapolate; an empty source range gives NaN or Inf.
func MapRange(value, fromLow, fromHigh, toLow, toHigh float64) float64 {
	percentage := (value - fromLow) / (fromHigh - fromLow)
	return toLow + percentage*(toHigh-toLow)
}
