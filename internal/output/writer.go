// Package output writes the JSON artifact and renders the run summary.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobsift/jobsift/internal/model"
)

// WriteJSON writes jobs as an indented JSON array at path, creating parent
// directories as needed, and returns the number of bytes written. An empty
// run produces an empty array, not null.
func WriteJSON(path string, jobs []model.Job) (int64, error) {
	if jobs == nil {
		jobs = []model.Job{}
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jobs); err != nil {
		return 0, fmt.Errorf("encode jobs: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
