package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads an exported activity dump from disk. The file is a JSON array
// of activity records, each carrying its streams keyed by type.
func Load(path string) ([]Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}

	var activities []Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("parsing export file: %w", err)
	}

	return activities, nil
}
