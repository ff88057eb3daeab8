package sbd

import "math"

// FrequencySentinel marks a frequency axis the instrument could not resolve
// on board. It is distinct from a legitimate zero.
const FrequencySentinel = 999

// frequencyResolved reports whether the encoded axis bounds are real
// values. Either bound at the sentinel means the whole axis is unresolved.
func frequencyResolved(min, max float64) bool {
	return min != FrequencySentinel && max != FrequencySentinel
}

// sentinelAxis returns an axis of n bins filled with the sentinel.
func sentinelAxis(n int) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = FrequencySentinel
	}
	return axis
}

// arangeAxis reconstructs a legacy-format frequency axis from its encoded
// (min, max, step) triple: min, min+step, ... up to and including max.
func arangeAxis(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	stop := max + step
	n := int(math.Ceil((stop - min) / step))
	if n < 0 {
		n = 0
	}
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = min + float64(i)*step
	}
	return axis
}

// linspaceAxis reconstructs a compact-format frequency axis by linear
// interpolation of n bins between min and max inclusive.
func linspaceAxis(min, max float64, n int) []float64 {
	axis := make([]float64, n)
	if n == 1 {
		axis[0] = min
		return axis
	}
	step := (max - min) / float64(n-1)
	for i := range axis {
		axis[i] = min + float64(i)*step
	}
	return axis
}
