// Package store persists run results: the per-run JSON document and the
// append-only CSV history.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gym_schedule_bot/internal/domain/report"
)

const documentFile = "workout.json"

// FileDocumentStore keeps the run document as one JSON file in the data
// directory.
type FileDocumentStore struct {
	dir string
}

func NewFileDocumentStore(dir string) *FileDocumentStore {
	return &FileDocumentStore{dir: dir}
}

func (s *FileDocumentStore) path() string {
	return filepath.Join(s.dir, documentFile)
}

// Load reads the current document. A missing file is the zero document,
// not an error.
func (s *FileDocumentStore) Load() (report.Document, error) {
	var doc report.Document
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("reading run document: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return report.Document{}, fmt.Errorf("parsing run document: %w", err)
	}
	return doc, nil
}

// Save writes the document. When the file already holds a same-dated
// post-workout record and the incoming document carries none, the
// existing record is carried forward untouched: the daily run must not
// wipe out the afternoon's analysis.
func (s *FileDocumentStore) Save(doc report.Document) error {
	existing, err := s.Load()
	if err == nil && doc.PostWorkout == nil && existing.PostWorkout != nil && existing.Date == doc.Date {
		doc.PostWorkout = existing.PostWorkout
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run document: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("writing run document: %w", err)
	}
	return nil
}
