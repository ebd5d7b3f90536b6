// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters.
//
// This package provides the processing runtime only. Coefficient design is
// out of scope: callers supply pre-built sections (the band-pass specification
// of an HFO detection run is caller-owned input).
package biquad
