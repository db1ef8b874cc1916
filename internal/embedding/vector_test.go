package embedding

import (
	"math"
	"testing"
)

func TestVectorRoundTrip(t *testing.T) {
	original := []float32{0.5, -1.25, 0, 3.14159, -0.001}

	decoded, err := DecodeVector(EncodeVector(original))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("expected %d values, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("value %d: expected %v, got %v", i, original[i], decoded[i])
		}
	}
}

func TestEncodeVectorEmpty(t *testing.T) {
	if EncodeVector(nil) != nil {
		t.Error("expected nil for empty vector")
	}
	decoded, err := DecodeVector(nil)
	if err != nil || decoded != nil {
		t.Errorf("expected nil, nil for empty blob, got %v, %v", decoded, err)
	}
}

func TestDecodeVectorBadLength(t *testing.T) {
	if _, err := DecodeVector([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for truncated blob")
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
		ok   bool
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1, true},
		{"scaled", []float32{1, 0}, []float32{5, 0}, 1, true},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0, true},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1, true},
		{"empty a", nil, []float32{1}, 0, false},
		{"empty b", []float32{1}, nil, 0, false},
		{"mismatched dims", []float32{1, 2}, []float32{1, 2, 3}, 0, false},
		{"zero magnitude", []float32{0, 0}, []float32{1, 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Cosine(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
