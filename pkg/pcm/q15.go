package pcm

// Q15 is a fixed-point sample with 15 fractional bits.
// It is stored in 32 bits so that 1.0 (32768) stays representable.
type Q15 int32

const (
	Q15Shift = 15
	Q15One   = Q15(1 << Q15Shift)
)

func (q Q15) Int32() int32 {
	return int32(q)
}

func (q Q15) Add(other Q15) Q15 {
	return q + other
}

func (q Q15) Sub(other Q15) Q15 {
	return q - other
}

func (q Q15) Mul(other Q15) Q15 {
	return Q15((int64(q) * int64(other)) >> Q15Shift)
}

func (q Q15) Abs() Q15 {
	if q < 0 {
		return -q
	}
	return q
}

func (q Q15) Float() float64 {
	return float64(q) / float64(Q15One)
}

func FromFloat(f float64) Q15 {
	return Q15(int32(f * float64(Q15One)))
}
