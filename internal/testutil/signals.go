// Package testutil provides deterministic signal fixtures for tests and the
// demo command: sines, seeded noise, oscillation bursts, and a minimal
// band-pass coefficient fixture. Filter design is deliberately not part of
// the public library; the fixture here exists so tests can supply the
// pre-built filter the detector requires.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-hfo/dsp/filter/biquad"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AddSineBurst adds a sine oscillation of the given frequency and amplitude
// to signal, starting at sample start and lasting length samples. The burst
// is truncated at the signal end.
func AddSineBurst(signal []float64, freqHz, sampleRate, amplitude float64, start, length int) {
	step := 2 * math.Pi * freqHz / sampleRate
	for i := 0; i < length && start+i < len(signal); i++ {
		signal[start+i] += amplitude * math.Sin(step*float64(i))
	}
}

// BandPass returns a single RBJ band-pass section (constant 0 dB peak gain)
// centered on centerHz with quality factor q. Test fixture only: the library
// itself applies caller-supplied filters and never designs them.
func BandPass(centerHz, q, sampleRate float64) []biquad.Coefficients {
	w0 := 2 * math.Pi * centerHz / sampleRate
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha

	return []biquad.Coefficients{{
		B0: alpha / a0,
		B1: 0,
		B2: -alpha / a0,
		A1: -2 * math.Cos(w0) / a0,
		A2: (1 - alpha) / a0,
	}}
}
