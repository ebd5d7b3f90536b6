// Package peaks provides local-maximum detection with a minimum-height floor,
// the findpeaks-equivalent primitive of the detection pipeline.
package peaks

// Find returns the indices of local maxima in the signal that are strictly
// greater than minHeight.
//
// A sample is a local maximum when it is strictly greater than both of its
// neighbors. A flat plateau that is strictly risen into and strictly fallen
// out of counts as a single peak at its first sample. The first and last
// samples are never peaks. The returned indices are ascending.
func Find(signal []float64, minHeight float64) []int {
	var found []int

	n := len(signal)
	i := 1

	for i < n-1 {
		if signal[i] <= signal[i-1] {
			i++
			continue
		}

		// Risen strictly; walk across any plateau.
		j := i
		for j+1 < n && signal[j+1] == signal[i] {
			j++
		}

		if j+1 < n && signal[j+1] < signal[i] && signal[i] > minHeight {
			found = append(found, i)
		}

		i = j + 1
	}

	return found
}

// Finder is a stateless adapter exposing [Find] as a method, so it can plug
// into interfaces that accept a peak-finding strategy.
type Finder struct{}

// Find calls the package-level [Find].
func (Finder) Find(signal []float64, minHeight float64) []int {
	return Find(signal, minHeight)
}
