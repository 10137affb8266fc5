package engine

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitgsuresh/Baselineage/config"
	internalErrors "github.com/rohitgsuresh/Baselineage/internal/errors"
	"github.com/rohitgsuresh/Baselineage/model"
)

func fullSupport(year int) map[string]model.BrowserSupport {
	support := make(map[string]model.BrowserSupport)
	for _, browser := range config.DefaultTrackedBrowsers {
		support[browser] = model.BrowserSupport{Version: 1, Year: year}
	}
	return support
}

func sampleFeatures() []model.Feature {
	return []model.Feature{
		{Name: "CSS Grid", Keywords: []string{"grid"}, IsBaseline: true, Support: fullSupport(2017)},
		{Name: "Container Queries", Keywords: []string{"@container"}, IsBaseline: false, Support: fullSupport(2023)},
	}
}

func writeDataset(t *testing.T, dir string, features []model.Feature) string {
	t.Helper()
	data, err := json.Marshal(features)
	require.NoError(t, err)
	path := filepath.Join(dir, "features.json")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func newTestEngine(t *testing.T) (*Engine, string, string) {
	t.Helper()
	dir := t.TempDir()
	datasetPath := writeDataset(t, dir, sampleFeatures())
	return NewEngine(dir, datasetPath, config.ScannerSettings{}), dir, datasetPath
}

func TestNewEngineLoadsDataset(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	features := eng.Features()
	require.Len(t, features, 2)
	assert.Equal(t, "CSS Grid", features[0].Name)
}

func TestEngineAnnotate(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.Annotate("use grid and @container here")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Spans, 2)
	assert.NotEmpty(t, result.QueryId)
	assert.True(t, result.Spans[0].IsBaseline)
	assert.False(t, result.Spans[1].IsBaseline)

	// A fresh invocation gets a fresh query ID over identical spans.
	again, err := eng.Annotate("use grid and @container here")
	require.NoError(t, err)
	assert.Equal(t, result.Spans, again.Spans)
	assert.NotEqual(t, result.QueryId, again.QueryId)
}

func TestEngineAnnotateRejectsOversizedText(t *testing.T) {
	dir := t.TempDir()
	datasetPath := writeDataset(t, dir, sampleFeatures())
	eng := NewEngine(dir, datasetPath, config.ScannerSettings{MaxTextLength: 8})

	_, err := eng.Annotate("this text is longer than eight bytes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrInvalidInput))
}

func TestEngineResolve(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.Resolve("grid")
	require.NoError(t, err)
	assert.Equal(t, model.ResolverResultExact, result.Kind)
	assert.Equal(t, "CSS Grid", result.Feature.Name)
}

func TestEngineGetFeatureCaseInsensitive(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	feature, err := eng.GetFeature("css grid")
	require.NoError(t, err)
	assert.Equal(t, "CSS Grid", feature.Name)

	_, err = eng.GetFeature("WebGPU")
	assert.True(t, errors.Is(err, internalErrors.ErrFeatureNotFound))
}

func TestEngineCompare(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.Compare("CSS Grid", "Container Queries")
	require.NoError(t, err)
	assert.Equal(t, "CSS Grid", result.WinnerName, "earlier adoption should win")
	assert.Greater(t, result.ScoreA, result.ScoreB)

	_, err = eng.Compare("CSS Grid", "WebGPU")
	assert.True(t, errors.Is(err, internalErrors.ErrFeatureNotFound))
}

func TestEngineReload(t *testing.T) {
	eng, _, datasetPath := newTestEngine(t)

	updated := append(sampleFeatures(), model.Feature{
		Name: "Flexbox", IsBaseline: true, Support: fullSupport(2015),
	})
	writeDataset(t, filepath.Dir(datasetPath), updated)

	require.NoError(t, eng.Reload())
	assert.Len(t, eng.Features(), 3)
}

func TestEngineRestoresFromSnapshot(t *testing.T) {
	eng, dir, datasetPath := newTestEngine(t)
	require.Len(t, eng.Features(), 2)

	// Remove the JSON source; a new engine over the same data dir should
	// restore the dataset from the gob snapshot written on first load.
	require.NoError(t, os.Remove(datasetPath))

	restored := NewEngine(dir, datasetPath, config.ScannerSettings{})
	assert.Len(t, restored.Features(), 2)
}

func TestEngineEmptyDatasetPath(t *testing.T) {
	eng := NewEngine(t.TempDir(), "", config.ScannerSettings{})

	assert.Empty(t, eng.Features())
	assert.True(t, errors.Is(eng.Reload(), internalErrors.ErrDatasetNotLoaded))

	// Operations still work over the empty dataset.
	result, err := eng.Annotate("grid everywhere")
	require.NoError(t, err)
	assert.Empty(t, result.Spans)

	resolved, err := eng.Resolve("grid")
	require.NoError(t, err)
	assert.Equal(t, model.ResolverResultNone, resolved.Kind)
}
