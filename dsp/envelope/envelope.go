// Package envelope provides sliding-window magnitude estimates of a signal:
// rectification, centered moving mean, and centered moving RMS.
//
// Windows that extend beyond the signal boundary are truncated to the
// available samples rather than zero-padded, so boundary outputs are means
// over fewer samples, never biased toward zero. Output length always equals
// input length.
package envelope

import "math"

// Rectify returns |x| for every sample.
func Rectify(signal []float64) []float64 {
	out := make([]float64, len(signal))
	for i, x := range signal {
		out[i] = math.Abs(x)
	}

	return out
}

// MovingMean returns the centered moving average of the signal.
//
// Each output sample is the mean over a window of the given width centered
// on it. For even widths the window takes window/2 samples before and
// window/2-1 samples after the center. A window of one or less returns a
// copy of the input.
func MovingMean(signal []float64, window int) []float64 {
	n := len(signal)
	out := make([]float64, n)

	if window <= 1 {
		copy(out, signal)
		return out
	}

	before := window / 2
	after := window - before - 1

	// Running sum over the truncated window: add the sample entering on the
	// right, drop the one leaving on the left.
	var sum float64
	count := 0

	for i := 0; i < after && i < n; i++ {
		sum += signal[i]
		count++
	}

	for i := 0; i < n; i++ {
		if i+after < n {
			sum += signal[i+after]
			count++
		}

		if i-before-1 >= 0 {
			sum -= signal[i-before-1]
			count--
		}

		out[i] = sum / float64(count)
	}

	return out
}

// MovingRMS returns the centered moving root-mean-square of the signal,
// with the same window and truncation conventions as [MovingMean].
func MovingRMS(signal []float64, window int) []float64 {
	n := len(signal)
	out := make([]float64, n)

	if window <= 1 {
		for i, x := range signal {
			out[i] = math.Abs(x)
		}
		return out
	}

	before := window / 2
	after := window - before - 1

	var sumSq float64
	count := 0

	for i := 0; i < after && i < n; i++ {
		sumSq += signal[i] * signal[i]
		count++
	}

	for i := 0; i < n; i++ {
		if i+after < n {
			sumSq += signal[i+after] * signal[i+after]
			count++
		}

		if i-before-1 >= 0 {
			sumSq -= signal[i-before-1] * signal[i-before-1]
			count--
		}

		// Running subtraction can leave tiny negative residue.
		ms := sumSq / float64(count)
		if ms < 0 {
			ms = 0
		}

		out[i] = math.Sqrt(ms)
	}

	return out
}
