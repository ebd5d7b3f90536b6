package hfo

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-hfo/internal/testutil"
)

func TestCharacterizePeakFrequency(t *testing.T) {
	signal := rippleRecording(250, 2.0, 80, 10000)

	d := NewDetector(identityFilter{}, testSampleRate)

	feats, err := d.Characterize(signal, []Event{{Start: 10000, End: 10079}})
	if err != nil {
		t.Fatal(err)
	}

	if len(feats) != 1 {
		t.Fatalf("got %d feature sets, want 1", len(feats))
	}

	f := feats[0]

	// 80-sample chunk zero-padded to 256 bins: resolution 7.8 Hz at 2 kHz.
	if math.Abs(f.PeakFreqHz-250) > 10 {
		t.Errorf("PeakFreqHz = %g, want ~250", f.PeakFreqHz)
	}

	// 40 ms event.
	if math.Abs(f.Duration-0.040) > 1e-9 {
		t.Errorf("Duration = %g, want 0.040", f.Duration)
	}

	// Sine of amplitude 2 has RMS ~ 2/sqrt(2); noise shifts it slightly.
	if math.Abs(f.RMS-2/math.Sqrt2) > 0.1 {
		t.Errorf("RMS = %g, want ~%g", f.RMS, 2/math.Sqrt2)
	}

	if f.PeakMagnitude <= 0 {
		t.Errorf("PeakMagnitude = %g, want > 0", f.PeakMagnitude)
	}

	if f.Event != (Event{Start: 10000, End: 10079}) {
		t.Errorf("Event = %v", f.Event)
	}
}

func TestCharacterizeDistinguishesFrequencies(t *testing.T) {
	signal := make([]float64, 4000)
	testutil.AddSineBurst(signal, 150, testSampleRate, 1.0, 500, 200)
	testutil.AddSineBurst(signal, 400, testSampleRate, 1.0, 2000, 200)

	d := NewDetector(identityFilter{}, testSampleRate)

	feats, err := d.Characterize(signal, []Event{
		{Start: 500, End: 699},
		{Start: 2000, End: 2199},
	})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(feats[0].PeakFreqHz-150) > 10 {
		t.Errorf("first event PeakFreqHz = %g, want ~150", feats[0].PeakFreqHz)
	}

	if math.Abs(feats[1].PeakFreqHz-400) > 10 {
		t.Errorf("second event PeakFreqHz = %g, want ~400", feats[1].PeakFreqHz)
	}
}

func TestCharacterizeDetectedEvents(t *testing.T) {
	// Full pipeline then feature extraction, the intended composition.
	signal := rippleRecording(250, 2.0, 80, 10000)

	d := NewDetector(rippleFilter(), testSampleRate)

	events, err := d.Detect(signal)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("detected %d events, want 1", len(events))
	}

	feats, err := d.Characterize(signal, events)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(feats[0].PeakFreqHz-250) > 15 {
		t.Errorf("PeakFreqHz = %g, want ~250", feats[0].PeakFreqHz)
	}
}

func TestCharacterizeEventOutOfRange(t *testing.T) {
	d := NewDetector(identityFilter{}, testSampleRate)

	signal := make([]float64, 100)

	for _, ev := range []Event{
		{Start: -1, End: 10},
		{Start: 50, End: 100},
		{Start: 30, End: 20},
	} {
		_, err := d.Characterize(signal, []Event{ev})
		if !errors.Is(err, ErrEventOutOfRange) {
			t.Errorf("event %v: err = %v, want ErrEventOutOfRange", ev, err)
		}
	}
}

func TestCharacterizeEmptySignal(t *testing.T) {
	d := NewDetector(identityFilter{}, testSampleRate)

	_, err := d.Characterize(nil, nil)
	if !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("err = %v, want ErrEmptySignal", err)
	}
}

func TestCharacterizeNoEvents(t *testing.T) {
	d := NewDetector(identityFilter{}, testSampleRate)

	feats, err := d.Characterize(make([]float64, 100), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(feats) != 0 {
		t.Fatalf("got %d feature sets for no events, want 0", len(feats))
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {80, 128}, {256, 256}, {257, 512},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
