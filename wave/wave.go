// Package wave generates sampled periodic waveforms.
//
// It is the data source for the polyline simplifier: a waveform sampled at
// audio rate yields hundreds of points per cycle, most of which a display
// does not need.
package wave

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/polyline"
)

// ErrInvalidConfig is returned for configurations that cannot be sampled.
var ErrInvalidConfig = errors.New("wave: invalid config")

// Shape selects the periodic function that is sampled.
type Shape int

const (
	// Sine is sin(2*pi*t).
	Sine Shape = iota
	// Square is +1 for the first half of each cycle and -1 for the second.
	Square
	// Triangle rises from 0 to 1, falls to -1 and returns to 0.
	Triangle
	// Sawtooth rises linearly from 0 to 1, jumps to -1 and rises to 0.
	Sawtooth
)

var shapeNames = [...]string{
	Sine:     "sine",
	Square:   "square",
	Triangle: "triangle",
	Sawtooth: "sawtooth",
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a shape name as returned by Shape.String.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, name)
}

// MaxSamples bounds the number of samples a Config may produce.
const MaxSamples = 1 << 26

// Config describes a waveform to sample.
type Config struct {
	SampleRate float64 // samples per second
	Frequency  float64 // cycles per second
	Amplitude  float64
	Cycles     float64
	Shape      Shape
}

// DefaultConfig returns one cycle of a unit 60 Hz sine sampled at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Frequency:  60,
		Amplitude:  1,
		Cycles:     1,
		Shape:      Sine,
	}
}

// SamplesPerCycle returns SampleRate / Frequency.
func (c Config) SamplesPerCycle() float64 {
	return c.SampleRate / c.Frequency
}

// Validate reports whether the config can be sampled.
func (c Config) Validate() error {
	switch {
	case !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0):
		return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, c.SampleRate)
	case !(c.Frequency > 0) || math.IsInf(c.Frequency, 0):
		return fmt.Errorf("%w: frequency %v", ErrInvalidConfig, c.Frequency)
	case !(c.Cycles > 0) || math.IsInf(c.Cycles, 0):
		return fmt.Errorf("%w: cycles %v", ErrInvalidConfig, c.Cycles)
	case math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0):
		return fmt.Errorf("%w: amplitude %v", ErrInvalidConfig, c.Amplitude)
	case c.Shape < Sine || c.Shape > Sawtooth:
		return fmt.Errorf("%w: shape %v", ErrInvalidConfig, c.Shape)
	case !(c.SamplesPerCycle()*c.Cycles <= MaxSamples):
		return fmt.Errorf("%w: %v samples exceeds %d", ErrInvalidConfig, c.SamplesPerCycle()*c.Cycles, MaxSamples)
	}
	return nil
}

// Samples returns int(SamplesPerCycle*Cycles) samples of the waveform.
// Sample i of a sine is Amplitude*sin(2*pi*i/SamplesPerCycle).
func (c Config) Samples() ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	spc := c.SamplesPerCycle()
	n := int(spc * c.Cycles)
	out := make([]float64, n)
	for i := range out {
		out[i] = c.Amplitude * c.Shape.at(float64(i), spc)
	}

	polyline.Logger().Debug("wave: sampled",
		"shape", c.Shape.String(),
		"samples", n,
		"samplesPerCycle", spc)
	return out, nil
}

// Polyline returns the samples as points (i, sample[i]).
func (c Config) Polyline() (polyline.Polyline, error) {
	s, err := c.Samples()
	if err != nil {
		return nil, err
	}
	return polyline.FromSamples(s), nil
}

// at evaluates the shape at sample i of a cycle spc samples long.
func (s Shape) at(i, spc float64) float64 {
	if s == Sine {
		return math.Sin(2 * math.Pi * i / spc)
	}

	phase := i / spc
	t := phase - math.Floor(phase)
	switch s {
	case Square:
		if t < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		switch {
		case t < 0.25:
			return 4 * t
		case t < 0.75:
			return 2 - 4*t
		default:
			return 4*t - 4
		}
	default: // Sawtooth
		if t < 0.5 {
			return 2 * t
		}
		return 2*t - 2
	}
}
