package model

import "time"

// Usage operation kinds tracked for analytics.
const (
	OperationAnnotate = "annotate"
	OperationResolve  = "resolve"
	OperationCompare  = "compare"
)

// UsageEvent represents a single core invocation for analytics tracking.
type UsageEvent struct {
	EventID      string        `json:"event_id"`
	Operation    string        `json:"operation"` // "annotate", "resolve", "compare"
	Query        string        `json:"query,omitempty"`
	TextLength   int           `json:"text_length,omitempty"`
	ResultCount  int           `json:"result_count"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// OperationStats aggregates events for one operation kind.
type OperationStats struct {
	Count              int   `json:"count"`
	AvgResponseTimeUs  int64 `json:"avg_response_time_us"`
	TotalResultsServed int   `json:"total_results_served"`
}

// UsageSummary represents the aggregated analytics view served by the API.
type UsageSummary struct {
	TotalEvents   int                       `json:"total_events"`
	Last24hEvents int                       `json:"last_24h_events"`
	ByOperation   map[string]OperationStats `json:"by_operation"`
	GeneratedAt   time.Time                 `json:"generated_at"`
}
