// Package dataset loads the curated feature dataset from a JSON file.
// The loader owns record validation so the annotation core can assume
// every loaded feature is well-formed: malformed entries are logged and
// skipped rather than failing the whole load, and the order of the valid
// entries is preserved.
package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rohitgsuresh/Baselineage/config"
	"github.com/rohitgsuresh/Baselineage/model"
)

// Load reads and validates a feature dataset from the JSON file at path.
// The file must contain a JSON array of feature records.
func Load(path string, settings config.ScannerSettings) ([]model.Feature, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is controlled by application config, not user input
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	var raw []model.Feature
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}

	features := make([]model.Feature, 0, len(raw))
	for i, feature := range raw {
		if problems := validateFeature(&feature, settings); len(problems) > 0 {
			log.Printf("Warning: Skipping dataset entry %d ('%s'): %s", i, feature.Name, strings.Join(problems, "; "))
			continue
		}
		features = append(features, feature)
	}

	log.Printf("Loaded %d features from %s (%d skipped)", len(features), path, len(raw)-len(features))
	return features, nil
}

// validateFeature checks a single record against the loader contract:
// a non-blank name, no blank keywords, and a support entry for every
// tracked browser (the comparison scoring treats a missing entry as an
// error, so such records never make it into the dataset).
func validateFeature(feature *model.Feature, settings config.ScannerSettings) []string {
	var problems []string

	if strings.TrimSpace(feature.Name) == "" {
		problems = append(problems, "feature name is empty")
	}
	for _, keyword := range feature.Keywords {
		if keyword == "" {
			problems = append(problems, "feature has an empty keyword")
			break
		}
	}
	for _, browser := range settings.TrackedBrowsers {
		if _, ok := feature.Support[browser]; !ok {
			problems = append(problems, "missing support entry for browser '"+browser+"'")
		}
	}

	return problems
}
