// Package runstore persists per-generation run statistics to SQLite so
// long optimization runs can be inspected and compared after the fact.
package runstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
	"github.com/XiaoConstantine/evo-go/pkg/stats"
)

// Store is a SQLite-backed log of generation statistics, keyed by run.
type Store struct {
	db *sql.DB
}

// GenerationRecord is one persisted row: the fitness summary of one
// generation of one run.
type GenerationRecord struct {
	RunID       string
	Generation  int
	Evaluations int
	Summary     stats.Summary
	RecordedAt  time.Time
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to open run store")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db}
	if err := s.initDB(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to initialize run store schema")
	}

	// WAL lets an observer write while a reader tails the run.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to enable WAL mode")
	}
	pragmas := []string{
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, errors.Wrap(err, errors.StorageFailed, "failed to set pragma")
		}
	}
	return s, nil
}

func (s *Store) initDB() error {
	query := `
	CREATE TABLE IF NOT EXISTS generations (
		run_id      TEXT NOT NULL,
		generation  INTEGER NOT NULL,
		evaluations INTEGER NOT NULL,
		count       INTEGER NOT NULL,
		min         REAL,
		max         REAL,
		mean        REAL,
		median      REAL,
		stdev       REAL,
		recorded_at INTEGER NOT NULL,
		PRIMARY KEY (run_id, generation)
	);

	CREATE INDEX IF NOT EXISTS idx_generations_run ON generations(run_id);
	`
	_, err := s.db.Exec(query)
	return err
}

// RecordGeneration upserts one generation's statistics.
func (s *Store) RecordGeneration(ctx context.Context, rec GenerationRecord) error {
	recordedAt := rec.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	query := `
	INSERT INTO generations
		(run_id, generation, evaluations, count, min, max, mean, median, stdev, recorded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(run_id, generation) DO UPDATE SET
		evaluations = excluded.evaluations,
		count       = excluded.count,
		min         = excluded.min,
		max         = excluded.max,
		mean        = excluded.mean,
		median      = excluded.median,
		stdev       = excluded.stdev,
		recorded_at = excluded.recorded_at
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.RunID, rec.Generation, rec.Evaluations,
		rec.Summary.Count, rec.Summary.Min, rec.Summary.Max,
		rec.Summary.Mean, rec.Summary.Median, rec.Summary.Stdev,
		recordedAt.Unix())
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to record generation"),
			errors.Fields{"run_id": rec.RunID, "generation": rec.Generation})
	}
	return nil
}

// Generations returns all recorded rows of a run in generation order.
func (s *Store) Generations(ctx context.Context, runID string) ([]GenerationRecord, error) {
	query := `
	SELECT run_id, generation, evaluations, count, min, max, mean, median, stdev, recorded_at
	FROM generations WHERE run_id = ? ORDER BY generation
	`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to query generations")
	}
	defer rows.Close()

	var records []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		var recordedAt int64
		if err := rows.Scan(&rec.RunID, &rec.Generation, &rec.Evaluations,
			&rec.Summary.Count, &rec.Summary.Min, &rec.Summary.Max,
			&rec.Summary.Mean, &rec.Summary.Median, &rec.Summary.Stdev,
			&recordedAt); err != nil {
			return nil, errors.Wrap(err, errors.StorageFailed, "failed to scan generation row")
		}
		rec.RecordedAt = time.Unix(recordedAt, 0)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed reading generation rows")
	}
	return records, nil
}

// Runs lists the distinct run IDs present in the store.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT run_id FROM generations ORDER BY run_id`)
	if err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to query runs")
	}
	defer rows.Close()

	var runs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, errors.StorageFailed, "failed to scan run id")
		}
		runs = append(runs, id)
	}
	return runs, rows.Err()
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
