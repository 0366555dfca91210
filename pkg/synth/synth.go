// Package synth samples arbitrary amplitude functions over one normalized
// time period [0, 1).
package synth

// AmplitudeFunc maps a time position in [0, 1) to an amplitude.
// data is caller-owned state shared by every call of one Synth pass.
type AmplitudeFunc[T any] func(t float64, data *T) float64

// Synth evaluates fn at n evenly spaced time positions 0, 1/n, ..., (n-1)/n
// and returns the amplitudes in order.
//
// The time position is accumulated (t += 1/n), so for large n it drifts
// slightly from i/n. n <= 0 yields an empty slice and fn is never called.
func Synth[T any](fn AmplitudeFunc[T], data *T, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	return SynthInto(make([]float64, n), fn, data)
}

// SynthInto is like Synth but fills dst, using len(dst) as the sample count.
func SynthInto[T any](dst []float64, fn AmplitudeFunc[T], data *T) []float64 {
	n := len(dst)
	if n == 0 {
		return dst
	}

	step := 1.0 / float64(n)
	t := 0.0
	for i := range dst {
		dst[i] = fn(t, data)
		t += step
	}
	return dst
}
