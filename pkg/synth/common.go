package synth

import (
	"math"

	"golang.org/x/exp/rand"
)

// The waveforms below take their frequency as cycles per period, so
// Synth(Sin, &cycles, n) renders cycles full sine cycles over n samples.

func Sin(t float64, cycles *float64) float64 {
	return math.Sin(2 * math.Pi * *cycles * t)
}

func Cos(t float64, cycles *float64) float64 {
	return math.Cos(2 * math.Pi * *cycles * t)
}

func Square(t float64, cycles *float64) float64 {
	if frac(*cycles*t) < 0.5 {
		return 1
	}
	return -1
}

func Saw(t float64, cycles *float64) float64 {
	return 2*frac(*cycles*t) - 1
}

func Triangle(t float64, cycles *float64) float64 {
	p := frac(*cycles * t)
	switch {
	case p < 0.25:
		return 4 * p
	case p < 0.75:
		return 2 - 4*p
	default:
		return 4*p - 4
	}
}

// frac returns the fractional part of x in [0, 1), also for negative x.
func frac(x float64) float64 {
	return x - math.Floor(x)
}

type Carrier struct {
	Amplitude float64
	Cycles    float64
	Phase     float64
}

func CarrierWave(t float64, c *Carrier) float64 {
	return c.Amplitude * math.Sin(2*math.Pi*c.Cycles*t+c.Phase)
}

// Chirp sweeps linearly from StartCycles to EndCycles over the period.
type Chirp struct {
	StartCycles float64
	EndCycles   float64
}

func ChirpWave(t float64, c *Chirp) float64 {
	k := c.EndCycles - c.StartCycles
	return math.Sin(2 * math.Pi * (k/2*t + c.StartCycles) * t)
}

// Noise is uniform white noise in [-1, 1) from a seeded source.
type Noise struct {
	rng *rand.Rand
}

func NewNoise(seed uint64) *Noise {
	return &Noise{rng: rand.New(rand.NewSource(seed))}
}

func NoiseWave(_ float64, n *Noise) float64 {
	return 2*n.rng.Float64() - 1
}

// Oscillator is a phase accumulator. It ignores the time position and
// advances its own phase by Increment on every call, so its output depends
// on how many samples were taken before.
type Oscillator struct {
	Increment float64
	phase     float64
}

func (o *Oscillator) Reset() { o.phase = 0 }

func OscillatorWave(_ float64, o *Oscillator) float64 {
	x := math.Sin(2 * math.Pi * o.phase)
	_, o.phase = math.Modf(o.phase + o.Increment)
	return x
}
