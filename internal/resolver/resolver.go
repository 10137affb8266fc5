// Package resolver implements single-term feature lookup: an exact-ish
// substring pass over feature names, falling back to a nearest-neighbor
// suggestion scored by normalized Levenshtein similarity.
package resolver

import (
	"strings"

	"github.com/rohitgsuresh/Baselineage/internal/typoutil"
	"github.com/rohitgsuresh/Baselineage/model"
)

// Resolve maps a query to a tri-state result:
//
//  1. The first feature (in dataset order) whose name case-insensitively
//     contains the query as a substring is an exact match — query "grid"
//     matches the feature "CSS Grid".
//  2. Otherwise the feature with the best normalized similarity score
//     (first maximum wins on ties) becomes a "did you mean" suggestion,
//     but only when its score is strictly greater than threshold.
//  3. Otherwise the result kind is "none".
//
// An empty query is a substring of every name, so it trivially matches the
// first dataset entry; the host gates empty submissions if it wants a
// different behavior. An empty dataset always resolves to "none".
func Resolve(query string, dataset []model.Feature, threshold float64) model.ResolverResult {
	loweredQuery := strings.ToLower(query)

	for i := range dataset {
		if strings.Contains(strings.ToLower(dataset[i].Name), loweredQuery) {
			return model.ResolverResult{
				Kind:    model.ResolverResultExact,
				Feature: &dataset[i],
			}
		}
	}

	bestScore := -1.0
	bestName := ""
	for i := range dataset {
		score := typoutil.NormalizedSimilarity(loweredQuery, strings.ToLower(dataset[i].Name))
		if score > bestScore {
			bestScore = score
			bestName = dataset[i].Name
		}
	}

	// Strict comparison: a score of exactly threshold is not good enough
	if bestScore > threshold {
		return model.ResolverResult{
			Kind: model.ResolverResultSuggestion,
			Name: bestName,
		}
	}

	return model.ResolverResult{Kind: model.ResolverResultNone}
}
