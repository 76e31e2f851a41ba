package database

import (
	"context"
	"database/sql"
	"fmt"

	"gym_schedule_bot/internal/domain/report"
)

// ErrRunNotFound is returned when no run row matches a lookup.
var ErrRunNotFound = fmt.Errorf("run record not found")

// PostgresRunRepository is the optional relational run log: one row per
// automation run.
type PostgresRunRepository struct {
	db *sql.DB
}

func NewPostgresRunRepository(db *sql.DB) *PostgresRunRepository {
	return &PostgresRunRepository{db: db}
}

// EnsureSchema creates the runs table when it does not exist yet. The
// deployment has no migration pipeline; one table is all there is.
func (r *PostgresRunRepository) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS runs (
		id         BIGSERIAL PRIMARY KEY,
		run_date   DATE        NOT NULL,
		day        TEXT        NOT NULL,
		workout    TEXT        NOT NULL DEFAULT '',
		advice     TEXT        NOT NULL DEFAULT '',
		outcome    TEXT        NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error ensuring runs schema: %w", err)
	}
	return nil
}

func (r *PostgresRunRepository) Create(ctx context.Context, rec *report.RunRecord) error {
	const query = `INSERT INTO runs (run_date, day, workout, advice, outcome)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		rec.RunDate, rec.Day, rec.Workout, rec.Advice, rec.Outcome,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating run record: %w", err)
	}
	return nil
}

// LatestByDate returns the most recent run row for a date.
func (r *PostgresRunRepository) LatestByDate(ctx context.Context, date string) (*report.RunRecord, error) {
	const query = `SELECT id, run_date, day, workout, advice, outcome, created_at
               FROM runs WHERE run_date = $1 ORDER BY created_at DESC LIMIT 1`
	rec := report.RunRecord{}
	err := r.db.QueryRowContext(ctx, query, date).Scan(
		&rec.ID, &rec.RunDate, &rec.Day, &rec.Workout, &rec.Advice, &rec.Outcome, &rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("error getting run record by date: %w", err)
	}
	return &rec, nil
}
