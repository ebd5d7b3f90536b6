// Package hfo detects fast-ripple high-frequency oscillations (HFOs) in
// local field potential recordings using the method of Staba et al. (2002).
//
// The pipeline has five stages:
//
//  1. Zero-phase band-pass filtering of the raw signal with a
//     caller-supplied filter (see dsp/filter/zerophase).
//  2. A 3 ms rectified moving-mean envelope of the filtered signal.
//  3. Segmentation: envelope samples at or above mean + StdsRMS*std form
//     candidate segments; runs shorter than 6 ms are dropped.
//  4. Merging: candidates separated by at most 10 ms coalesce into one.
//  5. Validation: a merged segment qualifies as an event when the rectified
//     raw signal inside it has at least MinPeaks local maxima strictly above
//     mean + StdsPeaks*std of the rectified filtered signal.
//
// All thresholds use whole-signal statistics with the population standard
// deviation (n divisor). Event indices are 0-based closed intervals into the
// input signal. An empty result is a normal outcome, not an error.
//
// # Usage
//
//	filter := zerophase.New(sections) // caller-designed band-pass sections
//	events, err := hfo.Detect(signal, 2000, filter)
//	if err != nil {
//	    // invalid input: empty signal, bad rate, incompatible filter
//	}
//	for _, ev := range events {
//	    fmt.Println(ev.Start, ev.End)
//	}
//
// Detected events can be characterized spectrally with
// [Detector.Characterize], which reports each event's dominant frequency
// and energy from a windowed FFT of its raw chunk.
package hfo
