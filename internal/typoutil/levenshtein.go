package typoutil

// CalculateLevenshteinDistance computes the Levenshtein distance between two strings.
// It represents the minimum number of single-character edits (insertions, deletions, or substitutions)
// required to change one word into the other.
// This implementation properly handles Unicode characters by working with runes.
func CalculateLevenshteinDistance(a, b string) int {
	// Convert strings to rune slices to properly handle Unicode
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	// With one empty string the distance degenerates to the other's length
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// matrix[i][j] is the Levenshtein distance between the first i characters
	// of a and the first j characters of b.
	matrix := make([][]int, lenA+1)
	for i := range matrix {
		matrix[i] = make([]int, lenB+1)
	}

	for i := 0; i <= lenA; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			// Minimum of (deletion, insertion, substitution)
			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			matrix[i][j] = min3(deletion, insertion, substitution)
		}
	}

	return matrix[lenA][lenB]
}

// NormalizedSimilarity scores how close two strings are on a 0..1 scale:
// 1 - distance / max(len(a), len(b)), measured in runes. Identical strings
// score 1; strings with nothing in common score 0. Two empty strings are
// defined as identical (score 1).
func NormalizedSimilarity(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))

	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := CalculateLevenshteinDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// min3 is a helper function to find the minimum of three integers
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
