// Package config provides configuration structures for the annotation
// service: which browsers the comparison scoring tracks, the suggestion
// threshold for the resolver, and the message templates attached to
// annotation spans.
package config

import (
	"fmt"
	"strings"
)

// Default values applied by ScannerSettings.ApplyDefaults.
const (
	DefaultReferenceYear       = 2025
	DefaultSuggestionThreshold = 0.5
	DefaultMaxTextLength       = 1 << 20 // 1 MiB; full rescans are linear in text size

	DefaultBaselineMessage    = "%s is supported across Baseline browsers"
	DefaultNonBaselineMessage = "%s is not part of Baseline yet"
)

// DefaultTrackedBrowsers is the fixed browser set the comparison scoring
// expects every feature's support map to cover.
var DefaultTrackedBrowsers = []string{"chrome", "edge", "firefox", "safari"}

// ScannerSettings contains all configuration options for the annotation
// core. A zero value becomes usable after ApplyDefaults.
//
// SuggestionThreshold is strict: a suggestion is only returned when the
// normalized similarity score is strictly greater than the threshold, so
// the default of 0.5 rejects a score of exactly 0.5.
//
// A zero SuggestionThreshold means "unset" and is replaced by the default,
// matching how the other zero-valued fields behave. To accept any nonzero
// similarity as a suggestion, configure a small positive value such as
// 0.01 instead of 0.
type ScannerSettings struct {
	TrackedBrowsers     []string `json:"tracked_browsers" toml:"tracked_browsers"`         // Browsers the earliness score sums over
	ReferenceYear       int      `json:"reference_year" toml:"reference_year"`             // Year earliness is measured against
	SuggestionThreshold float64  `json:"suggestion_threshold" toml:"suggestion_threshold"` // Minimum (exclusive) similarity for a suggestion
	MaxTextLength       int      `json:"max_text_length" toml:"max_text_length"`           // Upper bound on annotate input size, in bytes
	BaselineMessage     string   `json:"baseline_message" toml:"baseline_message"`         // fmt template, one %s for the feature name
	NonBaselineMessage  string   `json:"non_baseline_message" toml:"non_baseline_message"` // fmt template, one %s for the feature name
}

// ApplyDefaults fills unset fields with default values.
func (s *ScannerSettings) ApplyDefaults() {
	if len(s.TrackedBrowsers) == 0 {
		s.TrackedBrowsers = append([]string(nil), DefaultTrackedBrowsers...)
	}
	if s.ReferenceYear == 0 {
		s.ReferenceYear = DefaultReferenceYear
	}
	if s.SuggestionThreshold == 0 {
		s.SuggestionThreshold = DefaultSuggestionThreshold
	}
	if s.MaxTextLength == 0 {
		s.MaxTextLength = DefaultMaxTextLength
	}
	if s.BaselineMessage == "" {
		s.BaselineMessage = DefaultBaselineMessage
	}
	if s.NonBaselineMessage == "" {
		s.NonBaselineMessage = DefaultNonBaselineMessage
	}
}

// Validate checks the settings for conflicts and returns a list of
// human-readable problems. An empty list means the settings are usable.
func (s *ScannerSettings) Validate() []string {
	var conflicts []string

	seen := make(map[string]bool)
	for _, browser := range s.TrackedBrowsers {
		if strings.TrimSpace(browser) == "" {
			conflicts = append(conflicts, "Tracked browser name cannot be empty or whitespace-only")
			continue
		}
		if seen[browser] {
			conflicts = append(conflicts, "Duplicate browser '"+browser+"' found in tracked_browsers")
		}
		seen[browser] = true
	}

	if s.SuggestionThreshold < 0 || s.SuggestionThreshold >= 1 {
		conflicts = append(conflicts, fmt.Sprintf("Suggestion threshold %.2f must be in [0, 1)", s.SuggestionThreshold))
	}
	if s.MaxTextLength < 0 {
		conflicts = append(conflicts, "Max text length cannot be negative")
	}
	if s.BaselineMessage != "" && !strings.Contains(s.BaselineMessage, "%s") {
		conflicts = append(conflicts, "Baseline message template must contain a %s placeholder for the feature name")
	}
	if s.NonBaselineMessage != "" && !strings.Contains(s.NonBaselineMessage, "%s") {
		conflicts = append(conflicts, "Non-baseline message template must contain a %s placeholder for the feature name")
	}

	return conflicts
}
