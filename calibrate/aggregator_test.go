package calibrate

import (
	"errors"
	"math"
	"testing"
)

func repeat(value float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestReduce_InsufficientData(t *testing.T) {
	tests := []struct {
		name           string
		readings       []float64
		minimumSamples int
	}{
		{"empty", nil, 30},
		{"one_short", repeat(200, 29), 30},
		{"single_reading", []float64{200}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reduce(tt.readings, tt.minimumSamples)
			if !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("Reduce() error = %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestReduce_TrimsOutlierTails(t *testing.T) {
	// 5 low outliers, 40 good readings, 5 high outliers; the 10% trim
	// removes exactly the outliers on each tail.
	readings := append(repeat(100, 5), append(repeat(200, 40), repeat(900, 5)...)...)

	result, err := Reduce(readings, 30)
	if err != nil {
		t.Fatal(err)
	}

	if result.MinPitch != 200 || result.MaxPitch != 200 {
		t.Errorf("range = [%v, %v], want [200, 200]", result.MinPitch, result.MaxPitch)
	}
	if result.SampleCount != 40 {
		t.Errorf("SampleCount = %d, want 40", result.SampleCount)
	}
	if math.Abs(result.Quality-0.8) > 1e-9 {
		t.Errorf("Quality = %v, want 0.8", result.Quality)
	}
}

func TestReduce_BufferedRange(t *testing.T) {
	// 120..300 step 20; trimming one reading from each tail leaves
	// 140..280 (range 140), buffered by 15% per side.
	readings := make([]float64, 0, 10)
	for f := 120.0; f <= 300; f += 20 {
		readings = append(readings, f)
	}

	result, err := Reduce(readings, 10)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(result.MinPitch-119) > 1e-9 {
		t.Errorf("MinPitch = %v, want 119", result.MinPitch)
	}
	if math.Abs(result.MaxPitch-301) > 1e-9 {
		t.Errorf("MaxPitch = %v, want 301", result.MaxPitch)
	}
	if result.SampleCount != 8 {
		t.Errorf("SampleCount = %d, want 8", result.SampleCount)
	}
	if math.Abs(result.Quality-0.8) > 1e-9 {
		t.Errorf("Quality = %v, want 0.8", result.Quality)
	}
}

func TestReduce_OrderInvariant(t *testing.T) {
	readings := append(repeat(100, 5), append(repeat(200, 40), repeat(900, 5)...)...)

	// Deterministic shuffle: reverse, then interleave halves
	reversed := make([]float64, len(readings))
	for i, r := range readings {
		reversed[len(readings)-1-i] = r
	}
	shuffled := make([]float64, 0, len(readings))
	half := len(reversed) / 2
	for i := range half {
		shuffled = append(shuffled, reversed[i], reversed[half+i])
	}

	want, err := Reduce(readings, 30)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Reduce(shuffled, 30)
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Errorf("shuffled input produced %+v, want %+v", got, want)
	}
}

func TestReduce_HardFloorAndCeiling(t *testing.T) {
	// A wide range whose buffered bounds would cross the hard 50/800 Hz limits
	readings := make([]float64, 0, 50)
	for i := range 50 {
		readings = append(readings, 55+float64(i)*(740.0/49))
	}

	result, err := Reduce(readings, 30)
	if err != nil {
		t.Fatal(err)
	}

	if result.MinPitch < 50 {
		t.Errorf("MinPitch = %v, below the 50 Hz floor", result.MinPitch)
	}
	if result.MaxPitch > 800 {
		t.Errorf("MaxPitch = %v, above the 800 Hz ceiling", result.MaxPitch)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	readings := []float64{300, 100, 200, 250, 150, 220, 190, 210, 270, 130}
	original := make([]float64, len(readings))
	copy(original, readings)

	if _, err := Reduce(readings, 10); err != nil {
		t.Fatal(err)
	}

	for i := range readings {
		if readings[i] != original[i] {
			t.Fatalf("input reordered at %d: got %v, want %v", i, readings[i], original[i])
		}
	}
}

func TestClassifyVoiceType(t *testing.T) {
	tests := []struct {
		name     string
		minPitch float64
		maxPitch float64
		want     VoiceType
	}{
		{"bass", 70, 130, VoiceTypeBass},
		{"baritone", 100, 180, VoiceTypeBaritone},
		{"tenor", 130, 240, VoiceTypeTenor},
		{"alto", 170, 320, VoiceTypeAlto},
		{"mezzo_soprano", 220, 400, VoiceTypeMezzoSoprano},
		{"soprano", 280, 500, VoiceTypeSoprano},
		{"invalid_zero_min", 0, 200, VoiceTypeUnknown},
		{"invalid_inverted", 300, 200, VoiceTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyVoiceType(tt.minPitch, tt.maxPitch); got != tt.want {
				t.Errorf("ClassifyVoiceType(%v, %v) = %v, want %v", tt.minPitch, tt.maxPitch, got, tt.want)
			}
		})
	}
}
