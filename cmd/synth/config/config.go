package config

import (
	"fmt"
	"os"
	"strconv"

	"periodicsynth/internel/utils"
	"periodicsynth/pkg/pcm"
	"periodicsynth/pkg/synth"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_SAMPLES = 8000
	DEFAULT_FORMAT  = "txt"
	DEFAULT_PATH    = "samples.txt"
)

type Voice struct {
	Wave      string   `yaml:"wave"`
	Cycles    float64  `yaml:"cycles"`
	Amplitude *float64 `yaml:"amplitude"` // nil means 1
	Phase     float64  `yaml:"phase"`
	EndCycles float64  `yaml:"end_cycles"` // chirp only
	Seed      uint64   `yaml:"seed"`       // noise only
}

type Config struct {
	Samples int `yaml:"samples"`

	Output struct {
		Format string `yaml:"format"`
		Path   string `yaml:"path"`
	} `yaml:"output"`

	Voices []Voice `yaml:"voices"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	config := Config{Samples: DEFAULT_SAMPLES}
	config.Output.Format = DEFAULT_FORMAT
	config.Output.Path = DEFAULT_PATH

	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	if config.Samples < 0 {
		return nil, fmt.Errorf("samples must not be negative, got %d", config.Samples)
	}
	if len(config.Voices) == 0 {
		return nil, fmt.Errorf("no voices configured")
	}

	return &config, nil
}

func (v Voice) amplitude() float64 {
	if v.Amplitude == nil {
		return 1
	}
	return *v.Amplitude
}

// RenderVoice samples a single voice over one period of n samples.
func RenderVoice(v Voice, n int) ([]float64, error) {
	var signal []float64

	switch v.Wave {
	case "sin":
		signal = synth.Synth(synth.Sin, &v.Cycles, n)
	case "cos":
		signal = synth.Synth(synth.Cos, &v.Cycles, n)
	case "square":
		signal = synth.Synth(synth.Square, &v.Cycles, n)
	case "saw":
		signal = synth.Synth(synth.Saw, &v.Cycles, n)
	case "triangle":
		signal = synth.Synth(synth.Triangle, &v.Cycles, n)
	case "carrier":
		c := synth.Carrier{Amplitude: v.amplitude(), Cycles: v.Cycles, Phase: v.Phase}
		return synth.Synth(synth.CarrierWave, &c, n), nil
	case "chirp":
		c := synth.Chirp{StartCycles: v.Cycles, EndCycles: v.EndCycles}
		signal = synth.Synth(synth.ChirpWave, &c, n)
	case "noise":
		signal = synth.Synth(synth.NoiseWave, synth.NewNoise(v.Seed), n)
	case "oscillator":
		o := synth.Oscillator{}
		if n > 0 {
			o.Increment = v.Cycles / float64(n)
		}
		signal = synth.Synth(synth.OscillatorWave, &o, n)
	default:
		return nil, fmt.Errorf("unknown wave %q", v.Wave)
	}

	if a := v.amplitude(); a != 1 {
		for i := range signal {
			signal[i] *= a
		}
	}
	return signal, nil
}

// Render sums all voices sample by sample. The mix is not clamped.
func Render(config *Config) ([]float64, error) {
	mix := make([]float64, config.Samples)
	for i, v := range config.Voices {
		signal, err := RenderVoice(v, config.Samples)
		if err != nil {
			return nil, fmt.Errorf("voice %d: %w", i, err)
		}
		for j, s := range signal {
			mix[j] += s
		}
	}
	return mix, nil
}

// Write dumps samples to the configured output as a raw array or text.
func Write(config *Config, samples []float64) error {
	path := config.Output.Path
	switch config.Output.Format {
	case "txt":
		return utils.WriteTxt(path, samples, func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
	case "f64":
		return utils.WriteBinary(path, samples)
	case "i32":
		return utils.WriteBinary(path, pcm.Float64ToInt32(samples))
	case "q15":
		return utils.WriteBinary(path, pcm.Float64ToQ15(samples))
	default:
		return fmt.Errorf("unknown output format %q", config.Output.Format)
	}
}
