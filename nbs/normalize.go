package nbs

import "math"

// Normalize converts a tick delta at the authored tempo (hundredths of ticks
// per second) into TargetTicksPerSecond units, rounding half away from zero.
// The result is clamped to the uint16 range; a NaN intermediate yields 0.
func Normalize(tempo, delta uint16) uint16 {
	v := math.Round(float64(delta) * (TargetTicksPerSecond / (float64(tempo) / 100.0)))
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}
