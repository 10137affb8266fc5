// Package analytics tracks core invocations (annotate, resolve, compare)
// and aggregates them into the summary served by the API.
package analytics

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohitgsuresh/Baselineage/model"
)

const (
	eventsFile      = "usage_events.json"
	maxEventsToKeep = 10000 // Keep last 10k events for performance
)

// Service implements usage tracking and reporting. Events are held in a
// bounded in-memory buffer and persisted asynchronously as JSON.
type Service struct {
	mutex        sync.RWMutex
	events       []model.UsageEvent
	dataFilePath string
}

// NewService creates a new analytics service rooted at dataDir and loads
// any previously persisted events.
func NewService(dataDir string) *Service {
	service := &Service{
		events:       make([]model.UsageEvent, 0),
		dataFilePath: filepath.Join(dataDir, eventsFile),
	}

	if err := service.loadData(); err != nil {
		log.Printf("Warning: Failed to load analytics data: %v", err)
	}

	return service
}

// TrackEvent records a new usage event. The event ID and timestamp are
// stamped here if the caller left them empty.
func (s *Service) TrackEvent(event model.UsageEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	// Persist data asynchronously
	go func() {
		if err := s.saveData(); err != nil {
			log.Printf("Warning: Failed to save analytics data: %v", err)
		}
	}()

	return nil
}

// Summary aggregates the tracked events per operation kind.
func (s *Service) Summary() (model.UsageSummary, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	byOperation := make(map[string]model.OperationStats)
	totalsByOp := make(map[string]time.Duration)
	last24h := 0

	for _, event := range s.events {
		if event.Timestamp.After(yesterday) {
			last24h++
		}
		stats := byOperation[event.Operation]
		stats.Count++
		stats.TotalResultsServed += event.ResultCount
		byOperation[event.Operation] = stats
		totalsByOp[event.Operation] += event.ResponseTime
	}

	for op, stats := range byOperation {
		if stats.Count > 0 {
			stats.AvgResponseTimeUs = totalsByOp[op].Microseconds() / int64(stats.Count)
		}
		byOperation[op] = stats
	}

	return model.UsageSummary{
		TotalEvents:   len(s.events),
		Last24hEvents: last24h,
		ByOperation:   byOperation,
		GeneratedAt:   now,
	}, nil
}

// saveData persists events to disk.
func (s *Service) saveData() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.events)
	s.mutex.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.dataFilePath), 0750); err != nil {
		return err
	}
	return os.WriteFile(s.dataFilePath, data, 0600)
}

// loadData restores previously persisted events, if any.
func (s *Service) loadData() error {
	data, err := os.ReadFile(s.dataFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Fresh start
		}
		return err
	}
	return json.Unmarshal(data, &s.events)
}
