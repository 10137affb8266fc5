// Package comparison implements adoption-timeline scoring between two
// features. A feature's earliness score sums, over the tracked browsers,
// how many years before the reference year each browser shipped support;
// larger sums mean broader, earlier support.
package comparison

import (
	"github.com/rohitgsuresh/Baselineage/config"
	internalErrors "github.com/rohitgsuresh/Baselineage/internal/errors"
	"github.com/rohitgsuresh/Baselineage/model"
)

// EarlinessScore computes the summed earliness of a feature across the
// tracked browsers. It fails fast with a MissingBrowserSupportError when
// the feature lacks a support entry for any tracked browser — the loader
// should have excluded such records.
func EarlinessScore(feature *model.Feature, settings config.ScannerSettings) (int, error) {
	score := 0
	for _, browser := range settings.TrackedBrowsers {
		support, ok := feature.Support[browser]
		if !ok {
			return 0, internalErrors.NewMissingBrowserSupportError(feature.Name, browser)
		}
		score += settings.ReferenceYear - support.Year
	}
	return score, nil
}

// Compare scores both features and designates the one with the higher
// earliness sum as the winner. Equal sums go to the first operand.
func Compare(featureA, featureB *model.Feature, settings config.ScannerSettings) (model.CompareResult, error) {
	scoreA, err := EarlinessScore(featureA, settings)
	if err != nil {
		return model.CompareResult{}, err
	}
	scoreB, err := EarlinessScore(featureB, settings)
	if err != nil {
		return model.CompareResult{}, err
	}

	winner := featureA.Name
	if scoreB > scoreA {
		winner = featureB.Name
	}

	return model.CompareResult{
		WinnerName: winner,
		ScoreA:     scoreA,
		ScoreB:     scoreB,
	}, nil
}
