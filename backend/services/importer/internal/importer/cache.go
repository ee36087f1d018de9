package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"traillog/backend/libs/activity"
)

// writeCache serializes the full sorted canonical set to the local cache
// artifact, pretty-printed, creating parent directories as needed. The file
// is overwritten wholesale on every run.
func writeCache(path string, activities []activity.Activity) error {
	if activities == nil {
		activities = []activity.Activity{}
	}
	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}
