// Package zerophase provides forward-backward (zero-phase) IIR filtering.
//
// Running a filter forward and then backward over the signal cancels the
// filter's phase delay, so features in the output stay sample-aligned with
// the input. This matters whenever indices found in the filtered signal are
// mapped back onto the raw signal, as HFO detection does.
//
// Edge transients are suppressed by extending the signal on both sides with
// an odd reflection of itself before filtering (Gustafsson's method), then
// discarding the extensions.
package zerophase

import (
	"errors"

	"github.com/cwbudde/algo-hfo/dsp/filter/biquad"
)

// Errors returned by Filter.
var (
	ErrNoSections     = errors.New("zerophase: filter has no sections")
	ErrSignalTooShort = errors.New("zerophase: signal must be longer than 3x the filter order")
)

// Filter applies a biquad cascade with zero phase distortion.
//
// A Filter owns mutable delay-line state and is not safe for concurrent use;
// create one per goroutine. Successive calls are independent (state is reset
// on every pass).
type Filter struct {
	chain *biquad.Chain
}

// New creates a zero-phase filter from pre-built second-order sections.
func New(sections []biquad.Coefficients) *Filter {
	return &Filter{chain: biquad.NewChain(sections)}
}

// Order returns the order of the underlying cascade for a single pass.
// The effective order of the zero-phase result is twice this.
func (f *Filter) Order() int {
	return f.chain.Order()
}

// Filter returns the zero-phase filtered signal. The output has the same
// length as the input and no time shift relative to it.
//
// The signal must be longer than 3x the filter order (the reflection pad
// length on each side); shorter inputs return [ErrSignalTooShort]. The input
// is not modified.
func (f *Filter) Filter(signal []float64) ([]float64, error) {
	if f.chain.NumSections() == 0 {
		return nil, ErrNoSections
	}

	n := len(signal)

	pad := 3 * f.chain.Order()
	if n <= pad {
		return nil, ErrSignalTooShort
	}

	// Odd reflection about the first and last samples.
	ext := make([]float64, n+2*pad)
	for i := 0; i < pad; i++ {
		ext[i] = 2*signal[0] - signal[pad-i]
		ext[n+pad+i] = 2*signal[n-1] - signal[n-2-i]
	}
	copy(ext[pad:], signal)

	// Forward pass.
	f.chain.Reset()
	f.chain.ProcessBlock(ext)

	// Backward pass.
	reverse(ext)
	f.chain.Reset()
	f.chain.ProcessBlock(ext)
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])

	return out, nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
