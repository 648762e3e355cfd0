package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDataset writes the corpus as pretty-printed JSON files under dir.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	files := map[string]any{
		"legitimate.json": dataset.Legitimate,
		"suspicious.json": dataset.Suspicious,
		"fraudulent.json": dataset.Fraudulent,
		"profiles.json":   dataset.Profiles,
	}
	if len(dataset.Random) > 0 {
		files["random.json"] = dataset.Random
	}

	for name, payload := range files {
		raw, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}
