package pitch

// Observation is a single per-frame pitch reading. Frequency 0 encodes
// "no pitch": either silence or a periodic signal too weak to accept.
// The two cases are distinguishable through Confidence, which is still
// reported when a candidate period is rejected.
type Observation struct {
	Timestamp  float64 `json:"timestamp"`  // seconds, monotonic within a session
	Frequency  float64 `json:"frequency"`  // Hz, 0 when unvoiced
	Confidence float64 `json:"confidence"` // normalized correlation strength (0-1)
	Level      float64 `json:"level"`      // mean absolute amplitude (0-1)
}

// HasPitch reports whether the frame carried a detectable pitch
func (o Observation) HasPitch() bool {
	return o.Frequency > 0
}
