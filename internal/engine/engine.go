// Package engine wires the annotation core together: it owns the loaded
// feature dataset, keeps a gob snapshot of it for fast restarts, and
// implements the services.AnnotationService interface on top of the
// scanner, resolver and comparison packages.
package engine

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohitgsuresh/Baselineage/config"
	"github.com/rohitgsuresh/Baselineage/internal/comparison"
	"github.com/rohitgsuresh/Baselineage/internal/dataset"
	internalErrors "github.com/rohitgsuresh/Baselineage/internal/errors"
	"github.com/rohitgsuresh/Baselineage/internal/persistence"
	"github.com/rohitgsuresh/Baselineage/internal/resolver"
	"github.com/rohitgsuresh/Baselineage/internal/scanner"
	"github.com/rohitgsuresh/Baselineage/model"
	"github.com/rohitgsuresh/Baselineage/services"
)

const (
	dataDirPerm  = 0755
	snapshotFile = "dataset.gob"
)

// Engine holds the immutable loaded dataset and serves annotation, lookup
// and comparison calls over it. The dataset slice is swapped atomically
// under the mutex on reload; individual calls operate on whichever
// complete slice they observe, so concurrent readers need no coordination.
type Engine struct {
	mu          sync.RWMutex
	features    []model.Feature
	settings    config.ScannerSettings
	datasetPath string
	dataDir     string
}

// Compile-time check that Engine satisfies the full service surface.
var _ services.AnnotationService = (*Engine)(nil)

// NewEngine creates an engine rooted at dataDir. It loads the dataset from
// datasetPath when the file is readable, otherwise it falls back to the
// gob snapshot from a previous run. A missing dataset is not fatal: the
// engine starts empty and serves empty results until a reload succeeds.
func NewEngine(dataDir, datasetPath string, settings config.ScannerSettings) *Engine {
	settings.ApplyDefaults()

	eng := &Engine{
		features:    make([]model.Feature, 0),
		settings:    settings,
		datasetPath: datasetPath,
		dataDir:     dataDir,
	}

	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: Could not create data directory %s: %v. Proceeding without snapshot persistence.", dataDir, err)
	}

	if err := eng.Reload(); err != nil {
		log.Printf("Warning: Could not load dataset from %s: %v. Trying snapshot.", datasetPath, err)
		if snapshot, snapErr := persistence.LoadSnapshot(eng.snapshotPath()); snapErr == nil {
			eng.mu.Lock()
			eng.features = snapshot.Features
			eng.mu.Unlock()
			log.Printf("Restored %d features from snapshot (source %s, loaded %s)",
				len(snapshot.Features), snapshot.SourcePath, snapshot.LoadedAt.Format(time.RFC3339))
		} else if !errors.Is(snapErr, os.ErrNotExist) {
			log.Printf("Warning: Could not restore dataset snapshot: %v. Starting with empty dataset.", snapErr)
		}
	}

	return eng
}

// Settings returns a copy of the engine's scanner settings.
func (e *Engine) Settings() config.ScannerSettings {
	return e.settings
}

// Reload re-parses the dataset source file, swaps the in-memory dataset,
// and persists a fresh snapshot.
func (e *Engine) Reload() error {
	if e.datasetPath == "" {
		return internalErrors.ErrDatasetNotLoaded
	}

	features, err := dataset.Load(e.datasetPath, e.settings)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.features = features
	e.mu.Unlock()

	snapshot := &persistence.DatasetSnapshot{
		Features:   features,
		SourcePath: e.datasetPath,
		LoadedAt:   time.Now(),
	}
	if err := persistence.SaveSnapshot(e.snapshotPath(), snapshot); err != nil {
		log.Printf("Warning: Failed to persist dataset snapshot: %v", err)
	}

	return nil
}

// Features returns the loaded dataset as a read-only ordered slice.
func (e *Engine) Features() []model.Feature {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.features
}

// GetFeature returns the first feature whose name equals name,
// case-insensitively.
func (e *Engine) GetFeature(name string) (*model.Feature, error) {
	features := e.Features()
	for i := range features {
		if strings.EqualFold(features[i].Name, name) {
			return &features[i], nil
		}
	}
	return nil, internalErrors.NewFeatureNotFoundError(name)
}

// Annotate runs a full scan of text against the loaded dataset and stamps
// the result with a query ID and timing, mirroring what the host needs to
// key decorations and tooltips.
func (e *Engine) Annotate(text string) (services.AnnotateResult, error) {
	if len(text) > e.settings.MaxTextLength {
		return services.AnnotateResult{}, internalErrors.NewValidationError("text",
			fmt.Sprintf("text length %d exceeds maximum %d", len(text), e.settings.MaxTextLength))
	}

	startTime := time.Now()
	spans := scanner.Annotate(text, e.Features(), e.settings)

	return services.AnnotateResult{
		Spans:   spans,
		Total:   len(spans),
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}, nil
}

// Resolve looks up a single query term against the loaded dataset.
func (e *Engine) Resolve(query string) (model.ResolverResult, error) {
	return resolver.Resolve(query, e.Features(), e.settings.SuggestionThreshold), nil
}

// Compare scores the two named features' adoption timelines against each
// other. Both names must resolve to dataset entries.
func (e *Engine) Compare(featureA, featureB string) (model.CompareResult, error) {
	a, err := e.GetFeature(featureA)
	if err != nil {
		return model.CompareResult{}, err
	}
	b, err := e.GetFeature(featureB)
	if err != nil {
		return model.CompareResult{}, err
	}
	return comparison.Compare(a, b, e.settings)
}

func (e *Engine) snapshotPath() string {
	return filepath.Join(e.dataDir, snapshotFile)
}
