package pitch

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AnalysisSettings contains the parameters for a pitch analysis pass.
// Settings are validated once when an Estimator is constructed, never
// per frame.
type AnalysisSettings struct {
	// Frequency search range in Hz. Defaults cover the plausible
	// human voice range.
	MinFrequency float64 `json:"min_frequency" validate:"gt=0"`
	MaxFrequency float64 `json:"max_frequency" validate:"gtfield=MinFrequency"`

	// Minimum normalized autocorrelation accepted as a valid period
	CorrelationThreshold float64 `json:"correlation_threshold" validate:"gte=0,lte=1"`

	// Input format
	SampleRate   int `json:"sample_rate" validate:"gt=0"`
	BufferLength int `json:"buffer_length" validate:"gt=0"`
}

// DefaultSettings returns analysis settings tuned for spoken voice.
func DefaultSettings(sampleRate, bufferLength int) AnalysisSettings {
	return AnalysisSettings{
		MinFrequency:         80.0,  // low male voice
		MaxFrequency:         800.0, // high female voice
		CorrelationThreshold: 0.5,
		SampleRate:           sampleRate,
		BufferLength:         bufferLength,
	}
}

// Validate checks the settings for structural and cross-field
// consistency. A settings bundle that passes here can still produce
// zero observations on frames shorter than the search demands; that is
// a degenerate frame, not a configuration error.
func (s AnalysisSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid analysis settings: %w", err)
	}

	// The shortest searchable period must fit twice into the frame or
	// the autocorrelation search space is empty.
	minPeriod := float64(s.SampleRate) / s.MaxFrequency
	if minPeriod >= float64(s.BufferLength)/2 {
		return fmt.Errorf("invalid analysis settings: buffer length %d too short for max frequency %.1f Hz at %d Hz sample rate",
			s.BufferLength, s.MaxFrequency, s.SampleRate)
	}

	return nil
}
