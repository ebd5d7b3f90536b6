// Package time provides whole-signal time-domain statistics used by the
// detection thresholds: mean, population standard deviation, and RMS.
package time

import "math"

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// MeanStdDev returns the mean and the population standard deviation
// (n divisor, not n-1) of the signal in a single pass, using Welford's
// online algorithm for numerical stability.
//
// The population convention is fixed here so that detection thresholds of
// the form mean + k*std are reproducible across implementations.
func MeanStdDev(signal []float64) (mean, std float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0
	}

	var m2 float64
	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, math.Sqrt(m2 / float64(n))
}

// StdDev returns the population standard deviation of the signal.
// See [MeanStdDev] for the divisor convention.
func StdDev(signal []float64) float64 {
	_, std := MeanStdDev(signal)
	return std
}
