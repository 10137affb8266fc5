package services

import (
	"github.com/rohitgsuresh/Baselineage/model"
)

// AnnotateResult represents the response of a single scanner invocation.
// Spans are non-overlapping and sorted ascending by start offset.
type AnnotateResult struct {
	Spans   []model.AnnotationSpan `json:"spans"`
	Total   int                    `json:"total"`
	Took    int64                  `json:"took"`     // milliseconds
	QueryId string                 `json:"query_id"` // unique UUID for this annotation pass
}

// Scanner defines the text-annotation operation: it finds every occurrence
// of any feature name or keyword in the text and reduces overlapping
// matches into an ordered, non-overlapping span set.
type Scanner interface {
	Annotate(text string) (AnnotateResult, error)
}

// Resolver defines single-term lookup: an exact-ish substring pass over
// feature names followed by a nearest-neighbor suggestion fallback.
type Resolver interface {
	Resolve(query string) (model.ResolverResult, error)
}

// Comparer scores two features' adoption timelines against each other.
type Comparer interface {
	Compare(featureA, featureB string) (model.CompareResult, error)
}

// DatasetProvider exposes the loaded feature dataset and its lifecycle.
// Features returns the dataset as a read-only ordered slice; callers must
// not mutate it.
type DatasetProvider interface {
	Features() []model.Feature
	GetFeature(name string) (*model.Feature, error)
	Reload() error
}

// AnnotationService combines everything the API layer needs from the engine.
type AnnotationService interface {
	Scanner
	Resolver
	Comparer
	DatasetProvider
}

// UsageTracker defines operations for recording and summarizing core
// invocations.
type UsageTracker interface {
	TrackEvent(event model.UsageEvent) error
	Summary() (model.UsageSummary, error)
}
