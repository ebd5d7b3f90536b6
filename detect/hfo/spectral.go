package hfo

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	timestats "github.com/cwbudde/algo-hfo/stats/time"
)

// ErrEventOutOfRange is returned by Characterize when an event interval does
// not lie inside the signal.
var ErrEventOutOfRange = errors.New("hfo: event interval out of signal range")

// minFeatureFFTSize zero-pads short event chunks so the reported peak
// frequency has usable bin resolution (sampleRate/256 Hz at minimum size).
const minFeatureFFTSize = 256

// Features describes the spectral content of a detected event, measured on
// its raw-signal chunk.
type Features struct {
	Event Event

	// PeakFreqHz is the frequency of the largest magnitude bin above DC.
	PeakFreqHz float64

	// PeakMagnitude is the linear magnitude of that bin.
	PeakMagnitude float64

	// RMS is the root-mean-square amplitude of the raw chunk.
	RMS float64

	// Duration is the event length in seconds.
	Duration float64
}

// Characterize computes spectral features for each event over the raw
// signal it was detected in. Events are processed in order; the result has
// one entry per event.
func (d *Detector) Characterize(signal []float64, events []Event) ([]Features, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	if d.sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	out := make([]Features, 0, len(events))

	for _, ev := range events {
		if ev.Start < 0 || ev.End < ev.Start || ev.End >= len(signal) {
			return nil, fmt.Errorf("%w: [%d, %d]", ErrEventOutOfRange, ev.Start, ev.End)
		}

		feat, err := d.characterize(ev, signal[ev.Start:ev.End+1])
		if err != nil {
			return nil, err
		}

		out = append(out, feat)
	}

	return out, nil
}

func (d *Detector) characterize(ev Event, chunk []float64) (Features, error) {
	fftSize := nextPowerOf2(len(chunk))
	if fftSize < minFeatureFFTSize {
		fftSize = minFeatureFFTSize
	}

	// Hann-windowed, zero-padded chunk.
	in := make([]complex128, fftSize)
	norm := 2 * math.Pi / float64(len(chunk)-1)
	for i, x := range chunk {
		w := 1.0
		if len(chunk) > 1 {
			w = 0.5 * (1 - math.Cos(norm*float64(i)))
		}
		in[i] = complex(x*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Features{}, fmt.Errorf("hfo: fft plan: %w", err)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return Features{}, fmt.Errorf("hfo: forward fft: %w", err)
	}

	// Magnitudes of the non-negative-frequency bins via the SIMD kernel.
	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Largest bin above DC.
	peakBin := 1
	for i := 2; i < bins; i++ {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	return Features{
		Event:         ev,
		PeakFreqHz:    float64(peakBin) * d.sampleRate / float64(fftSize),
		PeakMagnitude: mag[peakBin],
		RMS:           timestats.RMS(chunk),
		Duration:      float64(len(chunk)) / d.sampleRate,
	}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
