package hfo

// Event is a detected oscillation: a closed interval of 0-based sample
// indices into the input signal. Start <= End and both are valid indices,
// so the event spans End-Start+1 samples.
type Event struct {
	Start int
	End   int
}

// Len returns the event length in samples.
func (e Event) Len() int {
	return e.End - e.Start + 1
}

// segmentAbove returns the maximal runs of consecutive indices where
// values[i] >= threshold, keeping only runs of at least minLength samples.
// Runs are emitted in ascending order of start index.
func segmentAbove(values []float64, threshold float64, minLength int) []Event {
	var segs []Event

	start := -1
	for i, v := range values {
		if v >= threshold {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 {
			if i-start >= minLength {
				segs = append(segs, Event{Start: start, End: i - 1})
			}
			start = -1
		}
	}

	if start >= 0 && len(values)-start >= minLength {
		segs = append(segs, Event{Start: start, End: len(values) - 1})
	}

	return segs
}

// mergeClose coalesces segments separated by gaps of at most maxGap samples.
// The input must be sorted by start index and non-overlapping, which
// segmentAbove guarantees. The scan repeats until a full pass produces no
// merge, so no two surviving segments remain within maxGap of each other.
// The input slice is not modified.
func mergeClose(segs []Event, maxGap int) []Event {
	if len(segs) < 2 {
		return segs
	}

	out := append([]Event(nil), segs...)

	for {
		merged := false

		w := 0
		for r := 1; r < len(out); r++ {
			if out[r].Start-out[w].End-1 <= maxGap {
				out[w].End = out[r].End
				merged = true
			} else {
				w++
				out[w] = out[r]
			}
		}
		out = out[:w+1]

		if !merged {
			return out
		}
	}
}
