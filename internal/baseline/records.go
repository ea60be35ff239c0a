package baseline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Record is one measured scenario from a baseline file.
type Record struct {
	Name  string  `json:"Name"`
	AvgMs float64 `json:"AvgMs"`
}

// rawRecord decodes with pointer fields so absent keys are detectable
// instead of being zero-filled.
type rawRecord struct {
	Name  *string  `json:"Name"`
	AvgMs *float64 `json:"AvgMs"`
}

// Load reads a baseline JSON file and returns its records in file order.
// The file must contain an array of objects, each with a string "Name"
// and a numeric "AvgMs". An empty array is valid.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file %s: %w", path, err)
	}

	records := make([]Record, 0, len(raw))
	for i, r := range raw {
		if r.Name == nil {
			return nil, fmt.Errorf("baseline record %d: missing required field \"Name\"", i)
		}
		if r.AvgMs == nil {
			return nil, fmt.Errorf("baseline record %d: missing required field \"AvgMs\"", i)
		}
		records = append(records, Record{Name: *r.Name, AvgMs: *r.AvgMs})
	}

	return records, nil
}
