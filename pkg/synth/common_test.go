package synth

import (
	"math"
	"reflect"
	"testing"
)

func TestWaveforms(t *testing.T) {
	tests := []struct {
		name     string
		fn       AmplitudeFunc[float64]
		expected []float64
	}{
		{"Sin", Sin, []float64{0, 1, 0, -1}},
		{"Cos", Cos, []float64{1, 0, -1, 0}},
		{"Square", Square, []float64{1, 1, -1, -1}},
		{"Saw", Saw, []float64{-1, -0.5, 0, 0.5}},
		{"Triangle", Triangle, []float64{0, 1, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycles := 1.0
			out := Synth(tt.fn, &cycles, 4)
			if !almostEqual(out, tt.expected, epsilon) {
				t.Errorf("Expected %v, but got %v", tt.expected, out)
			}
		})
	}
}

func TestWaveformCycles(t *testing.T) {
	cycles := 2.0
	out := Synth(Square, &cycles, 8)
	expected := []float64{1, 1, -1, -1, 1, 1, -1, -1}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("Expected %v, but got %v", expected, out)
	}
}

func TestFrac(t *testing.T) {
	for x, want := range map[float64]float64{
		0:     0,
		0.25:  0.25,
		1.5:   0.5,
		-0.25: 0.75,
		-1:    0,
	} {
		if got := frac(x); got != want {
			t.Errorf("frac(%v): expected %v, got %v", x, want, got)
		}
	}
}

func TestCarrierWave(t *testing.T) {
	c := Carrier{Amplitude: 2, Cycles: 1, Phase: math.Pi / 2}
	out := Synth(CarrierWave, &c, 4)
	expected := []float64{2, 0, -2, 0}
	if !almostEqual(out, expected, epsilon) {
		t.Errorf("Expected %v, but got %v", expected, out)
	}
}

func TestChirpWave(t *testing.T) {
	t.Run("Constant sweep is a sine", func(t *testing.T) {
		c := Chirp{StartCycles: 3, EndCycles: 3}
		cycles := 3.0
		got := Synth(ChirpWave, &c, 64)
		want := Synth(Sin, &cycles, 64)
		if !almostEqual(got, want, epsilon) {
			t.Errorf("Expected %v, but got %v", want, got)
		}
	})

	t.Run("Rising sweep", func(t *testing.T) {
		c := Chirp{StartCycles: 0, EndCycles: 8}
		out := Synth(ChirpWave, &c, 1000)
		for i, v := range out {
			pos := float64(i) / 1000
			want := math.Sin(2 * math.Pi * 4 * pos * pos)
			if math.Abs(v-want) > 1e-6 {
				t.Fatalf("sample %d: expected %v, got %v", i, want, v)
			}
		}
	})
}

func TestNoiseWave(t *testing.T) {
	a := Synth(NoiseWave, NewNoise(42), 256)
	b := Synth(NoiseWave, NewNoise(42), 256)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected identical noise for identical seeds")
	}

	c := Synth(NoiseWave, NewNoise(43), 256)
	if reflect.DeepEqual(a, c) {
		t.Errorf("expected different noise for different seeds")
	}

	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("sample %d: %v is outside [-1, 1)", i, v)
		}
	}
}

func TestNoiseStateAdvances(t *testing.T) {
	n := NewNoise(7)
	first := Synth(NoiseWave, n, 16)
	second := Synth(NoiseWave, n, 16)
	if reflect.DeepEqual(first, second) {
		t.Errorf("expected the noise source to continue across passes")
	}
}

func TestOscillatorWave(t *testing.T) {
	o := Oscillator{Increment: 0.125}

	first := Synth(OscillatorWave, &o, 4)
	expected := []float64{0, math.Sqrt2 / 2, 1, math.Sqrt2 / 2}
	if !almostEqual(first, expected, epsilon) {
		t.Errorf("Expected %v, but got %v", expected, first)
	}

	second := Synth(OscillatorWave, &o, 4)
	expected = []float64{0, -math.Sqrt2 / 2, -1, -math.Sqrt2 / 2}
	if !almostEqual(second, expected, epsilon) {
		t.Errorf("Expected %v, but got %v", expected, second)
	}

	o.Reset()
	again := Synth(OscillatorWave, &o, 4)
	if !reflect.DeepEqual(again, first) {
		t.Errorf("Expected %v after reset, but got %v", first, again)
	}
}
