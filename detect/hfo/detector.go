package hfo

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hfo/dsp/envelope"
	"github.com/cwbudde/algo-hfo/dsp/peaks"
	timestats "github.com/cwbudde/algo-hfo/stats/time"
)

// Stage durations of the Staba detector, in seconds. These are properties of
// the method, converted to samples at the detector's sample rate.
const (
	// EnvelopeWindowDuration is the width of the rectified moving-mean
	// envelope window.
	EnvelopeWindowDuration = 0.003

	// MinEventDuration is the shortest threshold-crossing run that becomes
	// a candidate segment.
	MinEventDuration = 0.006

	// MaxMergeGapDuration is the widest gap between candidate segments that
	// is coalesced into a single event.
	MaxMergeGapDuration = 0.010
)

// Errors returned by the detector. An empty event list is a normal result,
// never an error.
var (
	ErrEmptySignal       = errors.New("hfo: signal is empty")
	ErrInvalidSampleRate = errors.New("hfo: sample rate must be positive")
	ErrNilFilter         = errors.New("hfo: band-pass filter is required")
)

// Filterer applies a pre-built band-pass filter to a signal and returns a
// same-length result with zero phase distortion. Zero phase matters: the
// detector correlates indices between the filtered and raw signal, so the
// filter must not shift features in time. dsp/filter/zerophase provides the
// standard implementation.
type Filterer interface {
	Filter(signal []float64) ([]float64, error)
}

// PeakFinder returns the ascending indices of local maxima in signal that
// are strictly greater than minHeight. dsp/peaks provides the standard
// implementation.
type PeakFinder interface {
	Find(signal []float64, minHeight float64) []int
}

// Detector detects fast-ripple high-frequency oscillations in a single
// channel of local field potential data, following Staba et al. (2002):
// band-pass filter, rectified moving-mean envelope, mean+k*std thresholding,
// duration-qualified segmentation, gap merging, and peak-count validation
// against the raw signal.
//
// A Detector is stateless between calls but shares its Filterer, whose
// implementations typically carry delay-line state; do not share one
// Detector across goroutines.
type Detector struct {
	cfg        Config
	sampleRate float64
	filter     Filterer
	finder     PeakFinder
}

// NewDetector creates a detector for signals sampled at sampleRate Hz,
// band-pass filtered by the supplied (caller-designed) filter. Options
// override the published Staba thresholds.
func NewDetector(filter Filterer, sampleRate float64, opts ...Option) *Detector {
	d := &Detector{
		cfg:        DefaultConfig(),
		sampleRate: sampleRate,
		filter:     filter,
		finder:     peaks.Finder{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d
}

// Config returns the detector's threshold configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// SampleRate returns the configured sample rate in Hz.
func (d *Detector) SampleRate() float64 {
	return d.sampleRate
}

// Detect returns the detected events as closed, 0-based index intervals into
// signal, sorted ascending by start and pairwise non-overlapping. A nil
// slice means no events qualified, which is a normal outcome; errors are
// reserved for invalid input (empty signal, bad sample rate, missing or
// incompatible filter).
func (d *Detector) Detect(signal []float64) ([]Event, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	if d.sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if d.filter == nil {
		return nil, ErrNilFilter
	}

	filtered, err := d.filter.Filter(signal)
	if err != nil {
		return nil, fmt.Errorf("hfo: band-pass stage: %w", err)
	}

	rectified := envelope.Rectify(filtered)

	window := int(math.Round(EnvelopeWindowDuration * d.sampleRate))
	env := envelope.MovingMean(rectified, window)

	// Both thresholds come from whole-signal statistics (population std,
	// see stats/time), computed once per call.
	envMean, envStd := timestats.MeanStdDev(env)
	rmsThreshold := envMean + d.cfg.StdsRMS*envStd

	minLength := int(math.Round(MinEventDuration * d.sampleRate))

	candidates := segmentAbove(env, rmsThreshold, minLength)
	if len(candidates) == 0 {
		return nil, nil
	}

	maxGap := int(math.Round(MaxMergeGapDuration * d.sampleRate))
	merged := mergeClose(candidates, maxGap)

	absMean, absStd := timestats.MeanStdDev(rectified)
	peakThreshold := absMean + d.cfg.StdsPeaks*absStd

	// Validation counts peaks in the rectified *raw* signal, not the
	// filtered one: a genuine oscillation must be visible as repeated
	// super-threshold excursions in the original recording.
	var events []Event
	for _, seg := range merged {
		chunk := envelope.Rectify(signal[seg.Start : seg.End+1])
		if len(d.finder.Find(chunk, peakThreshold)) >= d.cfg.MinPeaks {
			events = append(events, seg)
		}
	}

	return events, nil
}

// Detect is a one-shot convenience wrapper around [NewDetector] and
// [Detector.Detect].
func Detect(signal []float64, sampleRate float64, filter Filterer, opts ...Option) ([]Event, error) {
	return NewDetector(filter, sampleRate, opts...).Detect(signal)
}
