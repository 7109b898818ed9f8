// Copyright (c) 2025 Quantsweep Corp

package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Store is a small embedded, queryable results store: one row per
// (experiment_id, strategy instance name) with every reported metric and
// the flattened parameter assignment. Append-only from the engine's point
// of view.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) a DuckDB-backed results store at
// path. Pass ":memory:" for an ephemeral, test-only store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening results store: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS results (
			experiment_id TEXT NOT NULL,
			strategy      TEXT NOT NULL,
			name          TEXT NOT NULL,
			roi           DOUBLE NOT NULL,
			trades        BIGINT NOT NULL,
			timestamp     TEXT NOT NULL,
			extra_json    TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrating results store: %w", err)
	}
	return nil
}

// Append inserts every result in an ExperimentResult as one row each.
func (s *Store) Append(ctx context.Context, result ExperimentResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning results store transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (experiment_id, strategy, name, roi, trades, timestamp, extra_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range result.Results {
		extra, err := json.Marshal(r.Extra)
		if err != nil {
			return fmt.Errorf("marshaling extra metrics: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, result.ExperimentID, result.Strategy, r.Name, r.ROI, r.Trades, result.Timestamp, string(extra)); err != nil {
			return fmt.Errorf("inserting result row: %w", err)
		}
	}
	return tx.Commit()
}

// TopRow is one row of a TopN query result.
type TopRow struct {
	ExperimentID string
	Strategy     string
	Name         string
	Metric       float64
	Trades       int64
	Timestamp    string
}

// TopN returns the n rows with the highest value of metric. "roi" is the
// only metric accepted; any other name returns an error. strategyFilter
// and experimentFilter, when non-empty, restrict the query to that
// strategy or experiment id.
func (s *Store) TopN(ctx context.Context, metric string, n int, strategyFilter, experimentFilter string) ([]TopRow, error) {
	if metric != "roi" {
		return nil, fmt.Errorf("unsupported top-level metric column: %q", metric)
	}

	query := `SELECT experiment_id, strategy, name, roi, trades, timestamp FROM results WHERE 1=1`
	var args []any
	if strategyFilter != "" {
		query += ` AND strategy = ?`
		args = append(args, strategyFilter)
	}
	if experimentFilter != "" {
		query += ` AND experiment_id = ?`
		args = append(args, experimentFilter)
	}
	query += ` ORDER BY roi DESC LIMIT ?`
	args = append(args, n)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results store: %w", err)
	}
	defer rows.Close()

	var out []TopRow
	for rows.Next() {
		var r TopRow
		if err := rows.Scan(&r.ExperimentID, &r.Strategy, &r.Name, &r.Metric, &r.Trades, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
