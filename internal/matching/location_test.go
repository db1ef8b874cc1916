package matching

import (
	"math"
	"testing"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cafeteria", "cafeteria"},
		{"  hostel a  ", "hostel a"},
		{"Hostel-B", "hostel b"},
		{"near the lib entrance", "library"},
		{"mess hall", "cafeteria"},
		{"TAN", "tan block"},
		{"parking lot 7", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeLocation(tt.in); got != tt.want {
			t.Errorf("normalizeLocation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocationScore(t *testing.T) {
	if got := locationScore("Cafeteria", "cafeteria"); got != 1.0 {
		t.Errorf("same location: expected 1.0, got %v", got)
	}
	if got := locationScore("hostel a", "hostel b"); got != 0.9 {
		t.Errorf("adjacent hostels: expected 0.9, got %v", got)
	}
	if got := locationScore("somewhere", "cafeteria"); got != 0 {
		t.Errorf("unknown location: expected 0, got %v", got)
	}
}

func TestApplyLocationBoost(t *testing.T) {
	// Same location: base + 1.0*factor.
	boosted := applyLocationBoost(0.6, "cafeteria", "cafeteria", 0.05)
	if math.Abs(boosted-0.65) > 1e-9 {
		t.Errorf("expected 0.65, got %v", boosted)
	}

	// Distant locations (proximity <= 0.5) get no boost.
	if got := applyLocationBoost(0.6, "library", "hostel a", 0.05); got != 0.6 {
		t.Errorf("expected no boost for distant locations, got %v", got)
	}

	// Unrecognized locations get no boost.
	if got := applyLocationBoost(0.6, "parking lot", "cafeteria", 0.05); got != 0.6 {
		t.Errorf("expected no boost for unknown location, got %v", got)
	}

	// Result is clamped to 1.
	if got := applyLocationBoost(0.99, "cafeteria", "cafeteria", 0.05); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
}
