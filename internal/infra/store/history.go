package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gym_schedule_bot/internal/domain/report"
)

const historyFile = "history.csv"

var historyHeader = []string{"date", "day", "workout", "advice"}

// CSVHistory appends one row per run to a flat tabular history file.
type CSVHistory struct {
	dir string
}

func NewCSVHistory(dir string) *CSVHistory {
	return &CSVHistory{dir: dir}
}

func (h *CSVHistory) path() string {
	return filepath.Join(h.dir, historyFile)
}

// Append writes the run's row, creating the file with its header row
// first when it does not exist yet. Newlines in the workout are flattened
// to a delimiter and in the advice to spaces so the file stays one row
// per run.
func (h *CSVHistory) Append(doc report.Document) error {
	_, statErr := os.Stat(h.path())
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(h.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(historyHeader); err != nil {
			return fmt.Errorf("writing history header: %w", err)
		}
	}
	row := []string{
		doc.Date,
		doc.Day,
		strings.ReplaceAll(doc.Workout, "\n", " | "),
		strings.ReplaceAll(doc.Advice, "\n", " "),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing history row: %w", err)
	}
	w.Flush()
	return w.Error()
}
