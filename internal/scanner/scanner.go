// Package scanner implements the in-text feature-detection core: it finds
// every occurrence of any feature's name or keyword in a piece of source
// text and reduces the overlapping candidates into a single ordered,
// non-overlapping annotation set.
//
// Matching is lexical substring matching only. There is no word-boundary
// requirement, so "script" matches inside "javascript" and inside
// "description" — a documented limitation of the dataset, which carries no
// syntax information, not a bug.
package scanner

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rohitgsuresh/Baselineage/config"
	"github.com/rohitgsuresh/Baselineage/model"
)

// lowerWithOffsets lowercases text rune by rune and records, for every
// byte of the lowered form, the byte offset of the originating rune in the
// original text. Lowercasing is not length-preserving ("ẞ" is three bytes,
// "ß" two), so offsets found in the lowered text cannot be used directly
// against the original. The returned offsets slice has one extra entry
// mapping len(lowered) to len(text); byte-level matches of valid UTF-8
// always fall on rune boundaries, so a match ending at lowered offset e
// ends at offsets[e] in the original.
func lowerWithOffsets(text string) (string, []int) {
	var lowered strings.Builder
	lowered.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)

	for i, r := range text {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		lowered.WriteRune(lr)
	}
	offsets = append(offsets, len(text))

	return lowered.String(), offsets
}

// FindCandidates locates every occurrence of every feature target in text,
// case-insensitively, and returns the full unreduced candidate list in
// discovery order (dataset order, then target order, then text order).
// Candidate offsets are byte offsets into the original text, even when
// case folding changes byte lengths.
//
// The search cursor advances one byte past each found start rather than
// past the match end, so adjacent occurrences of a short target inside a
// longer run are all discovered: "ab" against "ababab" yields candidates
// at offsets 0, 2 and 4.
//
// Complexity is O(features × targets × len(text)) per call, which is fine
// for interactive editor-sized buffers but not for bulk corpora.
func FindCandidates(text string, dataset []model.Feature) []model.MatchCandidate {
	candidates := make([]model.MatchCandidate, 0)
	if text == "" || len(dataset) == 0 {
		return candidates
	}

	loweredText, offsets := lowerWithOffsets(text)

	for i := range dataset {
		feature := &dataset[i]
		for _, target := range feature.Targets() {
			if target == "" {
				continue // an empty target would match at every offset
			}
			loweredTarget := strings.ToLower(target)

			from := 0
			for from <= len(loweredText)-len(loweredTarget) {
				rel := strings.Index(loweredText[from:], loweredTarget)
				if rel < 0 {
					break
				}
				start := from + rel
				candidates = append(candidates, model.MatchCandidate{
					Start:   offsets[start],
					End:     offsets[start+len(loweredTarget)],
					Feature: feature,
				})
				from = start + 1
			}
		}
	}

	return candidates
}

// ResolveOverlaps reduces a candidate list to a non-overlapping subset via
// a greedy left-to-right sweep. Candidates are stably sorted by start
// offset, so among same-start overlaps the earlier-discovered candidate
// (i.e., the feature iterated first in the dataset) wins. The input slice
// is not modified.
func ResolveOverlaps(candidates []model.MatchCandidate) []model.MatchCandidate {
	accepted := make([]model.MatchCandidate, 0, len(candidates))
	if len(candidates) == 0 {
		return accepted
	}

	sorted := make([]model.MatchCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	lastAcceptedEnd := -1
	for _, candidate := range sorted {
		if candidate.Start < lastAcceptedEnd {
			continue // overlaps an already-accepted span
		}
		accepted = append(accepted, candidate)
		lastAcceptedEnd = candidate.End
	}

	return accepted
}

// Annotate is the scanner contract: it maps (text, dataset) to an ordered,
// non-overlapping annotation span set, each span tagged with the matched
// feature's baseline status and a hover message built from the settings
// templates.
//
// Annotate is a pure function: it holds no state between invocations and
// is safe to call concurrently over the same immutable dataset. Empty text
// or an empty dataset yields an empty (non-nil) slice.
func Annotate(text string, dataset []model.Feature, settings config.ScannerSettings) []model.AnnotationSpan {
	candidates := ResolveOverlaps(FindCandidates(text, dataset))

	spans := make([]model.AnnotationSpan, 0, len(candidates))
	for _, candidate := range candidates {
		template := settings.NonBaselineMessage
		if candidate.Feature.IsBaseline {
			template = settings.BaselineMessage
		}
		spans = append(spans, model.AnnotationSpan{
			Start:      candidate.Start,
			End:        candidate.End,
			IsBaseline: candidate.Feature.IsBaseline,
			Message:    fmt.Sprintf(template, candidate.Feature.Name),
		})
	}

	return spans
}
