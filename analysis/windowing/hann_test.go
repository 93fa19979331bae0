package windowing

import (
	"math"
	"testing"
)

func TestHann_Coefficients(t *testing.T) {
	h := NewHann(8)

	coeffs := h.Coefficients()
	if len(coeffs) != 8 {
		t.Fatalf("got %d coefficients, want 8", len(coeffs))
	}

	// Symmetric window: zero endpoints, mirror symmetry
	if coeffs[0] != 0 || coeffs[len(coeffs)-1] != 0 {
		t.Errorf("endpoints = %v, %v, want 0, 0", coeffs[0], coeffs[len(coeffs)-1])
	}
	for i := range len(coeffs) / 2 {
		if math.Abs(coeffs[i]-coeffs[len(coeffs)-1-i]) > 1e-12 {
			t.Errorf("asymmetry at %d: %v vs %v", i, coeffs[i], coeffs[len(coeffs)-1-i])
		}
	}

	for i, c := range coeffs {
		if c < 0 || c > 1 {
			t.Errorf("coefficient %d = %v, want within [0, 1]", i, c)
		}
	}
}

func TestHann_OddSizePeaksAtOne(t *testing.T) {
	h := NewHann(9)
	coeffs := h.Coefficients()
	if math.Abs(coeffs[4]-1.0) > 1e-12 {
		t.Errorf("center coefficient = %v, want 1", coeffs[4])
	}
}

func TestHann_SizeOne(t *testing.T) {
	h := NewHann(1)
	if got := h.Coefficients(); len(got) != 1 || got[0] != 1.0 {
		t.Errorf("size-1 window = %v, want [1]", got)
	}
}

func TestHann_Apply(t *testing.T) {
	h := NewHann(4)

	signal := []float64{1, 1, 1, 1}
	windowed := h.Apply(signal)
	if windowed == nil {
		t.Fatal("Apply returned nil for matching length")
	}
	for i, c := range h.Coefficients() {
		if math.Abs(windowed[i]-c) > 1e-12 {
			t.Errorf("windowed[%d] = %v, want %v", i, windowed[i], c)
		}
	}

	// Original signal untouched
	for i, s := range signal {
		if s != 1 {
			t.Errorf("signal[%d] modified to %v", i, s)
		}
	}

	if got := h.Apply([]float64{1, 2}); got != nil {
		t.Errorf("Apply with wrong length = %v, want nil", got)
	}
}

func TestHann_ApplyInPlace(t *testing.T) {
	h := NewHann(4)

	signal := []float64{2, 2, 2, 2}
	if err := h.ApplyInPlace(signal); err != nil {
		t.Fatal(err)
	}
	for i, c := range h.Coefficients() {
		if math.Abs(signal[i]-2*c) > 1e-12 {
			t.Errorf("signal[%d] = %v, want %v", i, signal[i], 2*c)
		}
	}

	if err := h.ApplyInPlace([]float64{1}); err == nil {
		t.Error("ApplyInPlace with wrong length: expected error")
	}
}
