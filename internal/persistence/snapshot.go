// Package persistence stores a gob snapshot of the loaded dataset so the
// engine can restart without the original JSON source being present.
package persistence

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rohitgsuresh/Baselineage/model"
)

// DatasetSnapshot is the on-disk form of a loaded dataset.
type DatasetSnapshot struct {
	Features   []model.Feature
	SourcePath string    // JSON file the snapshot was loaded from
	LoadedAt   time.Time // When the source was last parsed
}

// SaveSnapshot gob-encodes the snapshot to filePath, creating parent
// directories as needed.
func SaveSnapshot(filePath string, snapshot *DatasetSnapshot) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to gob encode snapshot to file %s: %w", filePath, err)
	}
	return nil
}

// LoadSnapshot decodes a gob snapshot from filePath. If the file does not
// exist it returns os.ErrNotExist, allowing callers to handle fresh starts
// gracefully.
func LoadSnapshot(filePath string) (*DatasetSnapshot, error) {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	var snapshot DatasetSnapshot
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to gob decode snapshot from file %s: %w", filePath, err)
	}
	return &snapshot, nil
}
