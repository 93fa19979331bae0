package windowing

import (
	"fmt"
	"math"
)

// Hann represents a symmetric Hann window function. Coefficients are
// computed once for a given size and reused across frames; the estimator
// owns one Hann per session and regenerates it when the frame length
// changes.
type Hann struct {
	size         int
	coefficients []float64
}

// NewHann creates a new Hann window of the given size.
func NewHann(size int) *Hann {
	h := &Hann{size: size}
	h.generate()
	return h
}

// generate creates the Hann window coefficients
func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)

	if h.size == 1 {
		h.coefficients[0] = 1.0
		return
	}

	denominator := float64(h.size - 1)
	for i := range h.size {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
}

// Apply applies the window to a signal and returns a new slice.
// Returns nil if the signal length does not match the window size.
func (h *Hann) Apply(signal []float64) []float64 {
	if len(signal) != h.size {
		return nil
	}

	windowed := make([]float64, h.size)
	for i := range signal {
		windowed[i] = signal[i] * h.coefficients[i]
	}

	return windowed
}

// ApplyInPlace applies the window to a signal in-place
func (h *Hann) ApplyInPlace(signal []float64) error {
	if len(signal) != h.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), h.size)
	}

	for i := range signal {
		signal[i] *= h.coefficients[i]
	}

	return nil
}

// Coefficients returns a copy of the window coefficients
func (h *Hann) Coefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// Size returns the window size
func (h *Hann) Size() int {
	return h.size
}
