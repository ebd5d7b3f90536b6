package hfo

// Default detection parameters from Staba et al. (2002).
const (
	DefaultStdsRMS   = 5.0
	DefaultStdsPeaks = 3.0
	DefaultMinPeaks  = 6
)

// Config holds the tunable detection parameters. The stage durations
// (envelope window, minimum event duration, merge gap) are fixed properties
// of the method and derived from the sample rate; see the package constants.
type Config struct {
	// StdsRMS scales the envelope standard deviation added to the envelope
	// mean to form the segmentation threshold.
	StdsRMS float64

	// StdsPeaks scales the rectified-filtered-signal standard deviation
	// added to its mean to form the peak-validation threshold.
	StdsPeaks float64

	// MinPeaks is the number of rectified raw-signal peaks above the
	// validation threshold a merged segment needs to qualify as an event.
	MinPeaks int
}

// Option mutates a Config or the detector's pluggable strategies.
type Option func(*Detector)

// DefaultConfig returns the published Staba detection parameters.
func DefaultConfig() Config {
	return Config{
		StdsRMS:   DefaultStdsRMS,
		StdsPeaks: DefaultStdsPeaks,
		MinPeaks:  DefaultMinPeaks,
	}
}

// WithStdsRMS sets the envelope-threshold multiplier.
func WithStdsRMS(stds float64) Option {
	return func(d *Detector) {
		if stds > 0 {
			d.cfg.StdsRMS = stds
		}
	}
}

// WithStdsPeaks sets the peak-threshold multiplier.
func WithStdsPeaks(stds float64) Option {
	return func(d *Detector) {
		if stds > 0 {
			d.cfg.StdsPeaks = stds
		}
	}
}

// WithMinPeaks sets the minimum qualifying peak count per event.
func WithMinPeaks(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.cfg.MinPeaks = n
		}
	}
}

// WithPeakFinder replaces the default peak-finding strategy
// (see the dsp/peaks package).
func WithPeakFinder(finder PeakFinder) Option {
	return func(d *Detector) {
		if finder != nil {
			d.finder = finder
		}
	}
}
