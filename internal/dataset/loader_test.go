package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitgsuresh/Baselineage/config"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testSettings() config.ScannerSettings {
	settings := config.ScannerSettings{TrackedBrowsers: []string{"chrome", "firefox"}}
	settings.ApplyDefaults()
	return settings
}

const validEntry = `{
	"name": "CSS Grid",
	"keywords": ["grid"],
	"is_baseline": true,
	"description": "Two-dimensional layout",
	"support": {
		"chrome": {"version": 57, "year": 2017},
		"firefox": {"version": 52, "year": 2017}
	}
}`

func TestLoadValidDataset(t *testing.T) {
	path := writeDataset(t, "["+validEntry+"]")

	features, err := Load(path, testSettings())
	require.NoError(t, err)

	require.Len(t, features, 1)
	assert.Equal(t, "CSS Grid", features[0].Name)
	assert.Equal(t, []string{"grid"}, features[0].Keywords)
	assert.True(t, features[0].IsBaseline)
	assert.Equal(t, 2017, features[0].Support["chrome"].Year)
}

func TestLoadSkipsMalformedEntriesPreservingOrder(t *testing.T) {
	path := writeDataset(t, `[
		`+validEntry+`,
		{"name": "", "support": {"chrome": {"version": 1, "year": 2020}, "firefox": {"version": 1, "year": 2020}}},
		{"name": "Missing Browser", "support": {"chrome": {"version": 1, "year": 2020}}},
		{"name": "Flexbox", "is_baseline": true, "support": {"chrome": {"version": 29, "year": 2013}, "firefox": {"version": 28, "year": 2014}}}
	]`)

	features, err := Load(path, testSettings())
	require.NoError(t, err)

	require.Len(t, features, 2, "blank-name and missing-browser entries should be skipped")
	assert.Equal(t, "CSS Grid", features[0].Name)
	assert.Equal(t, "Flexbox", features[1].Name)
}

func TestLoadRejectsEmptyKeyword(t *testing.T) {
	path := writeDataset(t, `[{
		"name": "Bad Keywords",
		"keywords": ["grid", ""],
		"support": {"chrome": {"version": 1, "year": 2020}, "firefox": {"version": 1, "year": 2020}}
	}]`)

	features, err := Load(path, testSettings())
	require.NoError(t, err)
	assert.Empty(t, features, "an empty keyword would match at every text offset")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), testSettings())
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeDataset(t, "{not json")

	_, err := Load(path, testSettings())
	assert.Error(t, err)
}
