package temporal

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/voicelab/voxrange/analysis/pitch"
)

// Statistics is the rollup over an observation sequence. Pitch fields
// cover voiced observations only; MeanLevel covers every observation.
// Statistics are always recomputed from the full sequence, never
// updated in place.
type Statistics struct {
	TotalCount  int `json:"total_count"`
	VoicedCount int `json:"voiced_count"`
	SilentCount int `json:"silent_count"`

	MinFrequency  float64 `json:"min_frequency"`
	MaxFrequency  float64 `json:"max_frequency"`
	MeanFrequency float64 `json:"mean_frequency"`

	MeanConfidence float64 `json:"mean_confidence"`
	MeanLevel      float64 `json:"mean_level"`
}

// ComputeStatistics reduces an observation sequence to its rollup
// record. With no voiced observations the pitch fields stay zero while
// the counts and mean level remain correct.
func ComputeStatistics(observations []pitch.Observation) Statistics {
	stats := Statistics{TotalCount: len(observations)}
	if len(observations) == 0 {
		return stats
	}

	frequencies := make([]float64, 0, len(observations))
	confidences := make([]float64, 0, len(observations))
	levels := make([]float64, len(observations))

	for i, obs := range observations {
		levels[i] = obs.Level
		if obs.HasPitch() {
			frequencies = append(frequencies, obs.Frequency)
			confidences = append(confidences, obs.Confidence)
		}
	}

	stats.VoicedCount = len(frequencies)
	stats.SilentCount = stats.TotalCount - stats.VoicedCount
	stats.MeanLevel = stat.Mean(levels, nil)

	if len(frequencies) > 0 {
		stats.MinFrequency = floats.Min(frequencies)
		stats.MaxFrequency = floats.Max(frequencies)
		stats.MeanFrequency = stat.Mean(frequencies, nil)
		stats.MeanConfidence = stat.Mean(confidences, nil)
	}

	return stats
}
