package main

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-builder/internal/model"
)

// loadResume reads and schema-checks a résumé document.
func loadResume(path string) (model.Resume, error) {
	if path == "" {
		return model.Resume{}, fmt.Errorf("--file is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Resume{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := model.ValidateDocument(b); err != nil {
		return model.Resume{}, err
	}
	var r model.Resume
	if err := json.Unmarshal(b, &r); err != nil {
		return model.Resume{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return r.Normalize(), nil
}
