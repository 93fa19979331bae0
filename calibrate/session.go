package calibrate

import (
	"github.com/google/uuid"

	"github.com/voicelab/voxrange/analysis/pitch"
	"github.com/voicelab/voxrange/logging"
)

// DefaultMinimumSamples is the reading count a guided session should
// collect before a reduction is attempted.
const DefaultMinimumSamples = 30

// Session accumulates voiced pitch readings during one guided
// calibration run. The raw-frequency buffer belongs to the session
// alone: it is cleared at start and never shared across sessions.
// Abandoning a session is just dropping it; there is no partial state
// to unwind.
type Session struct {
	id             string
	minimumSamples int
	frequencies    []float64
	logger         logging.Logger
}

// NewSession starts a calibration session with an empty buffer.
func NewSession(minimumSamples int) *Session {
	if minimumSamples <= 0 {
		minimumSamples = DefaultMinimumSamples
	}

	s := &Session{
		id:             uuid.NewString(),
		minimumSamples: minimumSamples,
	}
	s.logger = logging.WithFields(logging.Fields{"session": s.id})
	s.logger.Debug("calibration session started", logging.Fields{"minimum_samples": minimumSamples})

	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Add records an observation. Only voiced readings contribute to
// calibration; silent and rejected frames are skipped.
func (s *Session) Add(observation pitch.Observation) {
	if !observation.HasPitch() {
		return
	}
	s.frequencies = append(s.frequencies, observation.Frequency)
}

// AddFrequency records a raw frequency reading directly. Non-positive
// readings are skipped.
func (s *Session) AddFrequency(frequency float64) {
	if frequency <= 0 {
		return
	}
	s.frequencies = append(s.frequencies, frequency)
}

// SampleCount returns the number of readings collected so far
func (s *Session) SampleCount() int {
	return len(s.frequencies)
}

// Reset clears the accumulated buffer so the session can be reused for
// a fresh run.
func (s *Session) Reset() {
	s.frequencies = s.frequencies[:0]
}

// Finish reduces the accumulated readings to a voice-range profile.
// On ErrInsufficientData the caller should fall back to DefaultProfile.
func (s *Session) Finish() (Result, error) {
	result, err := Reduce(s.frequencies, s.minimumSamples)
	if err != nil {
		s.logger.Warn("calibration failed", logging.Fields{
			"readings": len(s.frequencies),
			"reason":   err.Error(),
		})
		return Result{}, err
	}

	s.logger.Info("calibration complete", logging.Fields{
		"min_pitch":    result.MinPitch,
		"max_pitch":    result.MaxPitch,
		"sample_count": result.SampleCount,
		"quality":      result.Quality,
		"voice_type":   result.VoiceType,
	})

	return result, nil
}

// DefaultProfile is the fallback voice-range profile used when a
// session cannot produce a result.
func DefaultProfile() Result {
	return Result{
		MinPitch:  80,
		MaxPitch:  400,
		Quality:   0,
		VoiceType: VoiceTypeUnknown,
	}
}
