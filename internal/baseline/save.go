package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"perfplot/internal/infra/fs"
)

// Save writes records as an indented JSON array at path, creating the
// parent directory if needed.
func Save(path string, records []Record) error {
	if err := fs.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create baseline directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline records: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to save baseline file: %w", err)
	}

	return nil
}
