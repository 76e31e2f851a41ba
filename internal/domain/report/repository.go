package report

import "context"

// DocumentStore persists the per-run document. Save must preserve a
// same-dated post-workout sub-record already on disk when the incoming
// document carries none (merge, not overwrite).
type DocumentStore interface {
	Load() (Document, error)
	Save(doc Document) error
}

// HistoryAppender appends one flattened row per run to the tabular
// history file, writing the header once on first use.
type HistoryAppender interface {
	Append(doc Document) error
}

// RunRepository is the optional relational run log.
type RunRepository interface {
	Create(ctx context.Context, rec *RunRecord) error
}
