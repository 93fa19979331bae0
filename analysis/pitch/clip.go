package pitch

// PreAnalyzeClip analyzes a fully resident clip by sliding a window of
// the configured buffer length across the samples in steps of
// intervalSeconds. Multi-channel input is downmixed to mono by channel
// average first. The trailing partial window is dropped, never
// zero-padded, so an N-sample mono clip yields floor((N-B)/S)+1
// observations (zero when N < B).
func (e *Estimator) PreAnalyzeClip(samples []float64, channels int, intervalSeconds float64) []Observation {
	if len(samples) == 0 || channels < 1 {
		return nil
	}

	mono := samples
	if channels > 1 {
		mono = downmixMono(samples, channels)
	}

	bufferLength := e.settings.BufferLength
	step := int(intervalSeconds * float64(e.settings.SampleRate))
	step = max(step, 1)

	if len(mono) < bufferLength {
		return []Observation{}
	}

	observations := make([]Observation, 0, (len(mono)-bufferLength)/step+1)

	for start := 0; start+bufferLength <= len(mono); start += step {
		timestamp := float64(start) / float64(e.settings.SampleRate)
		observations = append(observations, e.Estimate(mono[start:start+bufferLength], timestamp))
	}

	return observations
}

// downmixMono averages interleaved channels into a single mono track
func downmixMono(samples []float64, channels int) []float64 {
	frames := len(samples) / channels
	mono := make([]float64, frames)

	for i := range frames {
		sum := 0.0
		for c := range channels {
			sum += samples[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}

	return mono
}
