// Package temporal post-processes ordered pitch observation sequences:
// moving-average smoothing for presentation, and aggregate statistics.
// It never feeds back into calibration.
package temporal

import (
	"github.com/voicelab/voxrange/analysis/pitch"
)

// Smooth applies a centered moving average to an observation sequence
// and returns a sequence of the same length. Frequency is averaged over
// the voiced members of each window only (unvoiced frames have no pitch
// to contribute), while confidence and level are averaged over the
// entire window. Windows are clamped at the boundaries, never wrapped
// or padded, and timestamps are preserved.
//
// A windowSize <= 1 or an empty input returns the input unchanged.
func Smooth(observations []pitch.Observation, windowSize int) []pitch.Observation {
	if windowSize <= 1 || len(observations) == 0 {
		return observations
	}

	n := len(observations)
	half := windowSize / 2
	smoothed := make([]pitch.Observation, n)

	for i := range observations {
		start := max(i-half, 0)
		end := min(i+half, n-1)

		frequencySum := 0.0
		voicedCount := 0
		confidenceSum := 0.0
		levelSum := 0.0

		for j := start; j <= end; j++ {
			if observations[j].HasPitch() {
				frequencySum += observations[j].Frequency
				voicedCount++
			}
			confidenceSum += observations[j].Confidence
			levelSum += observations[j].Level
		}

		span := float64(end - start + 1)
		frequency := 0.0
		if voicedCount > 0 {
			frequency = frequencySum / float64(voicedCount)
		}

		smoothed[i] = pitch.Observation{
			Timestamp:  observations[i].Timestamp,
			Frequency:  frequency,
			Confidence: confidenceSum / span,
			Level:      levelSum / span,
		}
	}

	return smoothed
}
