// Package pcm converts rendered periods to integer sample representations.
// Values are scaled, never clamped.
package pcm

const FullScale = 0x7fffffff

// Convert []float64 to []int32 at full scale
func Float64ToInt32(input []float64) []int32 {
	output := make([]int32, len(input))
	for i, v := range input {
		output[i] = int32(v * FullScale)
	}
	return output
}

// Convert []int32 to []float64
func Int32ToFloat64(input []int32) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = float64(v) / FullScale
	}
	return output
}

func Float64ToQ15(input []float64) []Q15 {
	output := make([]Q15, len(input))
	for i, v := range input {
		output[i] = FromFloat(v)
	}
	return output
}

func Q15ToFloat64(input []Q15) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = v.Float()
	}
	return output
}
