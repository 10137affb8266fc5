package model

// BrowserSupport records when a browser first shipped a feature.
type BrowserSupport struct {
	Version float64 `json:"version"` // First version with support (e.g., 57)
	Year    int     `json:"year"`    // Year that version shipped (e.g., 2017)
}

// Feature describes a single web-platform capability from the curated
// dataset. Features are immutable once loaded; both the scanner and the
// resolver borrow them read-only.
//
// Names and keywords are not required to be unique across the dataset —
// overlapping matches from different features are resolved by the scanner.
type Feature struct {
	Name        string                    `json:"name"`        // Display identifier (e.g., "CSS Grid")
	Keywords    []string                  `json:"keywords"`    // Aliases matched identically to Name (e.g., ["grid", "display: grid"])
	IsBaseline  bool                      `json:"is_baseline"` // Baseline classification
	Description string                    `json:"description"` // Free text, passed through to the host untouched
	Support     map[string]BrowserSupport `json:"support"`     // Per-browser adoption, keyed by browser name
}

// Targets returns every string the scanner should match for this feature:
// the display name followed by all keywords, in declaration order.
func (f *Feature) Targets() []string {
	targets := make([]string, 0, 1+len(f.Keywords))
	targets = append(targets, f.Name)
	targets = append(targets, f.Keywords...)
	return targets
}
