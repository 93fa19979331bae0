// Package transcode loads prerecorded clips into the normalized float
// sample form the analysis packages expect. Mono conversion happens
// here, before any frame ever reaches the estimator.
package transcode

import (
	"fmt"
	"time"

	"github.com/unixpickle/wav"

	"github.com/voicelab/voxrange/logging"
)

// AudioData represents a decoded clip. PCM is interleaved when
// Channels > 1, with samples normalized to roughly [-1, 1].
type AudioData struct {
	PCM        []float64     `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Duration   time.Duration `json:"duration"`
}

// LoadWAV reads a WAV file from disk into normalized float samples.
func LoadWAV(path string) (*AudioData, error) {
	sound, err := wav.ReadSoundFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav file %s: %w", path, err)
	}

	samples := sound.Samples()
	pcm := make([]float64, len(samples))
	for i, s := range samples {
		pcm[i] = float64(s)
	}

	channels := sound.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("wav file %s reports %d channels", path, channels)
	}

	frames := len(pcm) / channels
	duration := time.Duration(float64(frames) / float64(sound.SampleRate()) * float64(time.Second))

	logging.Debug("loaded wav clip", logging.Fields{
		"path":        path,
		"sample_rate": sound.SampleRate(),
		"channels":    channels,
		"duration":    duration.String(),
	})

	return &AudioData{
		PCM:        pcm,
		SampleRate: sound.SampleRate(),
		Channels:   channels,
		Duration:   duration,
	}, nil
}

// Mono returns the clip as a single channel, averaging interleaved
// channels when needed.
func (a *AudioData) Mono() []float64 {
	if a.Channels <= 1 {
		return a.PCM
	}

	frames := len(a.PCM) / a.Channels
	mono := make([]float64, frames)

	for i := range frames {
		sum := 0.0
		for c := range a.Channels {
			sum += a.PCM[i*a.Channels+c]
		}
		mono[i] = sum / float64(a.Channels)
	}

	return mono
}
