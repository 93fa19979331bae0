// Package calibrate reduces streams of raw pitch readings collected
// during a guided session into a robust, outlier-resistant voice-range
// profile.
package calibrate

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInsufficientData signals that a calibration run did not collect
// enough usable readings. Callers are expected to fall back to a
// default profile rather than retry indefinitely.
var ErrInsufficientData = errors.New("insufficient calibration data")

const (
	// Fraction of samples trimmed from each tail before deriving the range
	trimFraction = 0.10

	// Fraction of the measured range added on each side of the profile
	rangeBufferFraction = 0.15

	// Hard bounds on any profile, regardless of buffering
	floorHz   = 50.0
	ceilingHz = 800.0
)

// Result is the voice-range profile produced by one calibration run.
// It stays authoritative until the next run overwrites it.
type Result struct {
	MinPitch    float64   `json:"min_pitch"`    // buffered lower bound, Hz
	MaxPitch    float64   `json:"max_pitch"`    // buffered upper bound, Hz
	SampleCount int       `json:"sample_count"` // readings surviving the trim
	Quality     float64   `json:"quality"`      // usable fraction of the capture (0-1)
	VoiceType   VoiceType `json:"voice_type"`
}

// Reduce turns an accumulated list of raw frequency readings into a
// calibration result. The reduction sorts first, so the outcome is
// invariant to input order, then drops 10% of the readings from each
// tail before deriving a buffered range.
//
// Quality is the fraction of the capture that survived trimming; the
// trim itself removes ~20% by construction, so a perfectly clean
// capture still scores below 1.0. That is the intended reading of the
// score ("how much of your speech was usable"), not a deduction bug.
func Reduce(rawFrequencies []float64, minimumSamples int) (Result, error) {
	total := len(rawFrequencies)
	if total < minimumSamples {
		return Result{}, fmt.Errorf("%w: got %d readings, need %d", ErrInsufficientData, total, minimumSamples)
	}

	sorted := make([]float64, total)
	copy(sorted, rawFrequencies)
	sort.Float64s(sorted)

	removeCount := int(math.Round(float64(total) * trimFraction))
	cleaned := sorted[removeCount : total-removeCount]

	if len(cleaned) < minimumSamples/2 {
		return Result{}, fmt.Errorf("%w: only %d readings left after outlier trim", ErrInsufficientData, len(cleaned))
	}

	minPitch := cleaned[0]
	maxPitch := cleaned[len(cleaned)-1]
	pitchRange := maxPitch - minPitch

	bufferedMin := math.Max(floorHz, minPitch-pitchRange*rangeBufferFraction)
	bufferedMax := math.Min(ceilingHz, maxPitch+pitchRange*rangeBufferFraction)

	quality := float64(len(cleaned)) / float64(total)
	quality = math.Min(1.0, math.Max(0.0, quality))

	return Result{
		MinPitch:    bufferedMin,
		MaxPitch:    bufferedMax,
		SampleCount: len(cleaned),
		Quality:     quality,
		VoiceType:   ClassifyVoiceType(minPitch, maxPitch),
	}, nil
}
