package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MagnitudeSpectrum computes the single-sided magnitude spectrum of a
// frame. go-dsp handles arbitrary frame lengths, including
// non-power-of-2.
func MagnitudeSpectrum(frame []float64) []float64 {
	if len(frame) == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(frame)

	bins := len(frame)/2 + 1
	magnitude := make([]float64, bins)
	for i := range bins {
		magnitude[i] = cmplx.Abs(spectrum[i])
	}

	return magnitude
}
