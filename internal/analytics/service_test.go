package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitgsuresh/Baselineage/model"
)

func TestTrackEventStampsIDAndTimestamp(t *testing.T) {
	service := NewService(t.TempDir())

	require.NoError(t, service.TrackEvent(model.UsageEvent{
		Operation:    model.OperationAnnotate,
		TextLength:   128,
		ResultCount:  3,
		ResponseTime: 2 * time.Millisecond,
	}))

	summary, err := service.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalEvents)
	assert.Equal(t, 1, summary.Last24hEvents)

	service.mutex.RLock()
	defer service.mutex.RUnlock()
	assert.NotEmpty(t, service.events[0].EventID)
	assert.False(t, service.events[0].Timestamp.IsZero())
}

func TestSummaryAggregatesPerOperation(t *testing.T) {
	service := NewService(t.TempDir())

	events := []model.UsageEvent{
		{Operation: model.OperationAnnotate, ResultCount: 3, ResponseTime: 2 * time.Millisecond},
		{Operation: model.OperationAnnotate, ResultCount: 5, ResponseTime: 4 * time.Millisecond},
		{Operation: model.OperationResolve, ResultCount: 1, ResponseTime: 1 * time.Millisecond},
	}
	for _, event := range events {
		require.NoError(t, service.TrackEvent(event))
	}

	summary, err := service.Summary()
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalEvents)

	annotateStats := summary.ByOperation[model.OperationAnnotate]
	assert.Equal(t, 2, annotateStats.Count)
	assert.Equal(t, 8, annotateStats.TotalResultsServed)
	assert.Equal(t, int64(3000), annotateStats.AvgResponseTimeUs)

	resolveStats := summary.ByOperation[model.OperationResolve]
	assert.Equal(t, 1, resolveStats.Count)
}

func TestEventsBufferIsBounded(t *testing.T) {
	service := NewService(t.TempDir())

	service.mutex.Lock()
	service.events = make([]model.UsageEvent, maxEventsToKeep)
	service.mutex.Unlock()

	require.NoError(t, service.TrackEvent(model.UsageEvent{Operation: model.OperationResolve}))

	summary, err := service.Summary()
	require.NoError(t, err)
	assert.Equal(t, maxEventsToKeep, summary.TotalEvents)
}
