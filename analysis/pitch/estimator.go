package pitch

import (
	"math"

	"github.com/voicelab/voxrange/analysis/windowing"
)

const (
	// Mean absolute level below which a frame is treated as silence
	// without paying for windowing or correlation.
	silenceLevelThreshold = 1e-4

	// RMS of the windowed frame below which the frame is too quiet to
	// carry a usable period.
	quietRMSThreshold = 1e-3
)

// Estimator detects the fundamental frequency of short voice frames
// using a normalized autocorrelation search.
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - Boersma, P. (1993). "Accurate short-term analysis of the fundamental frequency"
//
// The estimator owns its Hann window and regenerates it lazily when the
// observed frame length changes, so a single Estimator is safe for one
// session at a time; concurrent sessions should each hold their own.
type Estimator struct {
	settings AnalysisSettings
	window   *windowing.Hann
}

// NewEstimator creates an estimator for the given settings. Settings
// are validated here, once.
func NewEstimator(settings AnalysisSettings) (*Estimator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Estimator{settings: settings}, nil
}

// Settings returns the settings the estimator was built with
func (e *Estimator) Settings() AnalysisSettings {
	return e.settings
}

// Estimate produces one pitch observation for a mono frame of
// normalized samples. An empty frame yields a zero observation rather
// than an error; silence and sub-threshold periodicity are encoded as
// Frequency 0 (see Observation).
func (e *Estimator) Estimate(buffer []float64, timestamp float64) Observation {
	if len(buffer) == 0 {
		return Observation{Timestamp: timestamp}
	}

	level := meanAbs(buffer)
	if level < silenceLevelThreshold {
		// Silence fast path
		return Observation{Timestamp: timestamp, Level: level}
	}

	if e.window == nil || e.window.Size() != len(buffer) {
		e.window = windowing.NewHann(len(buffer))
	}
	windowed := e.window.Apply(buffer)

	if rms(windowed) < quietRMSThreshold {
		return Observation{Timestamp: timestamp, Level: level}
	}

	frequency, confidence := e.searchPeriod(windowed)

	return Observation{
		Timestamp:  timestamp,
		Frequency:  frequency,
		Confidence: confidence,
		Level:      level,
	}
}

// searchPeriod runs the normalized autocorrelation search over all
// candidate periods and returns the accepted frequency (0 if none) and
// the best correlation found.
func (e *Estimator) searchPeriod(windowed []float64) (frequency, confidence float64) {
	n := len(windowed)

	minPeriod := int(float64(e.settings.SampleRate) / e.settings.MaxFrequency)
	maxPeriod := int(float64(e.settings.SampleRate) / e.settings.MinFrequency)
	minPeriod = max(minPeriod, 2)
	if maxPeriod > n/2 {
		maxPeriod = n / 2
	}
	if minPeriod >= n/2 {
		// Search space is empty for this frame length
		return 0, 0
	}

	bestPeriod := -1
	bestCorrelation := 0.0

	for period := minPeriod; period <= maxPeriod; period++ {
		correlation := 0.0
		energy1 := 0.0
		energy2 := 0.0

		for i := 0; i < n-period; i++ {
			correlation += windowed[i] * windowed[i+period]
			energy1 += windowed[i] * windowed[i]
			energy2 += windowed[i+period] * windowed[i+period]
		}

		product := energy1 * energy2
		if product <= 0 {
			continue
		}

		normalized := correlation / math.Sqrt(product)
		if normalized > bestCorrelation {
			bestCorrelation = normalized
			bestPeriod = period
		}
	}

	if bestPeriod > 0 && bestCorrelation > e.settings.CorrelationThreshold {
		candidate := float64(e.settings.SampleRate) / float64(bestPeriod)

		// Guard against numerical edge artifacts at the range borders
		if candidate >= e.settings.MinFrequency && candidate <= e.settings.MaxFrequency {
			return candidate, bestCorrelation
		}
	}

	return 0, bestCorrelation
}

func meanAbs(buffer []float64) float64 {
	sum := 0.0
	for _, sample := range buffer {
		sum += math.Abs(sample)
	}
	return sum / float64(len(buffer))
}

func rms(buffer []float64) float64 {
	sumSquares := 0.0
	for _, sample := range buffer {
		sumSquares += sample * sample
	}
	return math.Sqrt(sumSquares / float64(len(buffer)))
}
