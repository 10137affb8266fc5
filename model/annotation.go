package model

// MatchCandidate is a single unresolved occurrence of one feature target
// inside the scanned text. Candidates may overlap each other; the scanner
// reduces them to a non-overlapping span set before returning.
type MatchCandidate struct {
	Start   int      // Byte offset of the first matched byte
	End     int      // Byte offset one past the last matched byte
	Feature *Feature // Feature whose name or keyword produced this match
}

// AnnotationSpan is a resolved, non-overlapping region of the scanned text
// tagged with the matched feature's baseline status. Spans are emitted in
// ascending Start order and are never mutated after creation; each call to
// the scanner produces a fresh set.
type AnnotationSpan struct {
	Start      int    `json:"start"`
	End        int    `json:"end"` // Exclusive
	IsBaseline bool   `json:"is_baseline"`
	Message    string `json:"message"` // Hover text for the host's tooltip surface
}

// ResolverResultKind discriminates the three possible resolver outcomes.
type ResolverResultKind string

const (
	ResolverResultExact      ResolverResultKind = "exact"
	ResolverResultSuggestion ResolverResultKind = "suggestion"
	ResolverResultNone       ResolverResultKind = "none"
)

// ResolverResult is the tri-state outcome of a single-term lookup.
// Exactly one of Feature or Name is populated, matching Kind:
// Feature for "exact", Name for "suggestion", neither for "none".
type ResolverResult struct {
	Kind    ResolverResultKind `json:"kind"`
	Feature *Feature           `json:"feature,omitempty"`
	Name    string             `json:"name,omitempty"` // "Did you mean" suggestion
}

// CompareResult reports the outcome of an adoption-timeline comparison
// between two features. Higher earliness scores mean broader, earlier
// browser support.
type CompareResult struct {
	WinnerName string `json:"winner_name"`
	ScoreA     int    `json:"score_a"`
	ScoreB     int    `json:"score_b"`
}
