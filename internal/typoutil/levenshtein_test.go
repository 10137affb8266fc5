package typoutil

import (
	"math"
	"testing"
)

func TestCalculateLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "hello", 5},
		{"b empty", "hello", "", 5},
		{"identical", "hello", "hello", 0},
		{"simple substitution", "kitten", "sitten", 1},
		{"simple insertion", "grid", "grids", 1},
		{"simple deletion", "banana", "banna", 1},
		{"multiple edits", "saturday", "sunday", 3},
		{"transposition costs two", "gird", "grid", 2}, // classic Levenshtein has no transposition op
		{"suggestion boundary pair", "gyrd", "grid", 2},
		{"unicode chars (same len)", "cliché", "cliche", 1}, // é -> e is 1 substitution
		{"unicode chars (diff len)", "résumé", "resume", 2}, // é -> e twice is 2 substitutions
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CalculateLevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalizedSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "grid", "grid", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "grid", 0.0},
		{"boundary case", "gyrd", "grid", 0.5}, // distance 2 over max length 4
		{"close match", "grids", "grid", 0.8},  // distance 1 over max length 5
		{"nothing in common", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizedSimilarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
