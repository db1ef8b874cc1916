package matching

import "strings"

// Campus location proximity, used as a tie-breaker for candidates that score
// close to the match threshold. Scores are symmetric, 0–1, higher = closer.
var locationProximity = map[string]map[string]float64{
	"cafeteria": {"cafeteria": 1.0, "library": 0.3, "hostel a": 0.5, "hostel b": 0.6, "hostel c": 0.4, "tan block": 0.7, "cos block": 0.6, "g block": 0.8, "b block": 0.7},
	"library":   {"cafeteria": 0.3, "library": 1.0, "hostel a": 0.2, "hostel b": 0.3, "hostel c": 0.2, "tan block": 0.4, "cos block": 0.5, "g block": 0.3, "b block": 0.4},
	"hostel a":  {"cafeteria": 0.5, "library": 0.2, "hostel a": 1.0, "hostel b": 0.9, "hostel c": 0.8, "tan block": 0.3, "cos block": 0.4, "g block": 0.2, "b block": 0.3},
	"hostel b":  {"cafeteria": 0.6, "library": 0.3, "hostel a": 0.9, "hostel b": 1.0, "hostel c": 0.9, "tan block": 0.4, "cos block": 0.5, "g block": 0.3, "b block": 0.4},
	"hostel c":  {"cafeteria": 0.4, "library": 0.2, "hostel a": 0.8, "hostel b": 0.9, "hostel c": 1.0, "tan block": 0.2, "cos block": 0.3, "g block": 0.2, "b block": 0.3},
	"tan block": {"cafeteria": 0.7, "library": 0.4, "hostel a": 0.3, "hostel b": 0.4, "hostel c": 0.2, "tan block": 1.0, "cos block": 0.8, "g block": 0.5, "b block": 0.6},
	"cos block": {"cafeteria": 0.6, "library": 0.5, "hostel a": 0.4, "hostel b": 0.5, "hostel c": 0.3, "tan block": 0.8, "cos block": 1.0, "g block": 0.6, "b block": 0.7},
	"g block":   {"cafeteria": 0.8, "library": 0.3, "hostel a": 0.2, "hostel b": 0.3, "hostel c": 0.2, "tan block": 0.5, "cos block": 0.6, "g block": 1.0, "b block": 0.9},
	"b block":   {"cafeteria": 0.7, "library": 0.4, "hostel a": 0.3, "hostel b": 0.4, "hostel c": 0.3, "tan block": 0.6, "cos block": 0.7, "g block": 0.9, "b block": 1.0},
}

// aliases maps common free-text variants to canonical location names.
var locationAliases = map[string]string{
	"cafe": "cafeteria",
	"mess": "cafeteria",
	"lib":  "library",
	"tan":  "tan block",
	"cos":  "cos block",
}

// normalizeLocation maps a free-text location label to a canonical campus
// location name, or "" when it cannot be recognized.
func normalizeLocation(location string) string {
	normalized := strings.ToLower(strings.TrimSpace(location))
	if normalized == "" {
		return ""
	}
	normalized = strings.ReplaceAll(normalized, "-", " ")

	if _, ok := locationProximity[normalized]; ok {
		return normalized
	}
	for alias, canonical := range locationAliases {
		if strings.Contains(normalized, alias) {
			return canonical
		}
	}
	for canonical := range locationProximity {
		if strings.Contains(normalized, canonical) || strings.Contains(canonical, normalized) {
			return canonical
		}
	}
	return ""
}

// locationScore returns the proximity between two location labels, or 0 when
// either label is unrecognized.
func locationScore(a, b string) float64 {
	normA := normalizeLocation(a)
	normB := normalizeLocation(b)
	if normA == "" || normB == "" {
		return 0
	}
	return locationProximity[normA][normB]
}

// applyLocationBoost adds a small proximity-proportional boost to a base
// score. Only nearby locations (proximity > 0.5) qualify, and the result is
// clamped to 1. Callers gate this to near-threshold scores so location never
// dominates the semantic signal.
func applyLocationBoost(base float64, locA, locB string, factor float64) float64 {
	proximity := locationScore(locA, locB)
	if proximity <= 0.5 {
		return base
	}
	boosted := base + proximity*factor
	if boosted > 1 {
		return 1
	}
	return boosted
}
