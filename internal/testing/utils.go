// Package testing provides fixtures and helpers for testing the
// annotation service.
package testing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rohitgsuresh/Baselineage/config"
	"github.com/rohitgsuresh/Baselineage/internal/engine"
	"github.com/rohitgsuresh/Baselineage/model"
)

// FullSupport builds a support map covering every default tracked browser
// with the given adoption year.
func FullSupport(year int) map[string]model.BrowserSupport {
	support := make(map[string]model.BrowserSupport, len(config.DefaultTrackedBrowsers))
	for i, browser := range config.DefaultTrackedBrowsers {
		support[browser] = model.BrowserSupport{Version: float64(50 + i), Year: year}
	}
	return support
}

// SampleFeatures returns a small fixture dataset covering baseline and
// non-baseline entries, keywords, and overlapping names.
func SampleFeatures() []model.Feature {
	return []model.Feature{
		{
			Name:        "CSS Grid",
			Keywords:    []string{"grid", "display: grid"},
			IsBaseline:  true,
			Description: "Two-dimensional layout system",
			Support:     FullSupport(2017),
		},
		{
			Name:        "Container Queries",
			Keywords:    []string{"container-type", "@container"},
			IsBaseline:  false,
			Description: "Style elements based on container size",
			Support:     FullSupport(2023),
		},
		{
			Name:        "Flexbox",
			Keywords:    []string{"display: flex", "flex"},
			IsBaseline:  true,
			Description: "One-dimensional layout system",
			Support:     FullSupport(2015),
		},
	}
}

// TestSettings returns scanner settings with defaults applied.
func TestSettings() config.ScannerSettings {
	settings := config.ScannerSettings{}
	settings.ApplyDefaults()
	return settings
}

// WriteDatasetFile marshals the features to a JSON dataset file under dir
// and returns its path.
func WriteDatasetFile(t *testing.T, dir string, features []model.Feature) string {
	t.Helper()

	data, err := json.Marshal(features)
	require.NoError(t, err, "Failed to marshal fixture dataset")

	path := filepath.Join(dir, "features.json")
	require.NoError(t, os.WriteFile(path, data, 0600), "Failed to write fixture dataset")
	return path
}

// CreateTestEngine creates an engine over the sample dataset in a
// temporary directory.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	dir := t.TempDir()
	datasetPath := WriteDatasetFile(t, dir, SampleFeatures())
	return engine.NewEngine(dir, datasetPath, TestSettings())
}
