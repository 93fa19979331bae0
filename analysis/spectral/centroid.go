package spectral

import (
	"github.com/voicelab/voxrange/analysis/windowing"
)

// Centroid computes the spectral centroid (center of mass) of magnitude
// spectra. Frequency bins are precomputed per spectrum length.
type Centroid struct {
	sampleRate int
	freqBins   []float64
}

// NewCentroid creates a spectral centroid calculator
func NewCentroid(sampleRate int) *Centroid {
	return &Centroid{sampleRate: sampleRate}
}

// Compute calculates the centroid of a single-sided magnitude spectrum
// in Hz. An empty or all-zero spectrum yields 0.
func (c *Centroid) Compute(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	if len(c.freqBins) != len(magnitude) {
		c.initializeFreqBins(len(magnitude))
	}

	numerator := 0.0
	denominator := 0.0
	for i, m := range magnitude {
		numerator += c.freqBins[i] * m
		denominator += m
	}

	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// ClipBrightness slides a Hann-windowed frame across a mono clip and
// returns the mean spectral centroid over frames that carry energy.
// It is a presentation-side timbre summary, reported next to pitch
// statistics; it plays no part in pitch detection or calibration.
func (c *Centroid) ClipBrightness(mono []float64, bufferLength, step int) float64 {
	if bufferLength <= 0 || len(mono) < bufferLength {
		return 0
	}
	step = max(step, 1)

	window := windowing.NewHann(bufferLength)

	sum := 0.0
	frames := 0

	for start := 0; start+bufferLength <= len(mono); start += step {
		windowed := window.Apply(mono[start : start+bufferLength])

		centroid := c.Compute(MagnitudeSpectrum(windowed))
		if centroid > 0 {
			sum += centroid
			frames++
		}
	}

	if frames == 0 {
		return 0
	}

	return sum / float64(frames)
}

// initializeFreqBins precomputes bin center frequencies for a
// single-sided spectrum of the given length
func (c *Centroid) initializeFreqBins(bins int) {
	c.freqBins = make([]float64, bins)
	for i := range bins {
		c.freqBins[i] = float64(i) * float64(c.sampleRate) / float64((bins-1)*2)
	}
}
