// Package staging archives cleaned order rows to PostgreSQL so runs can
// be compared and re-cleaned data audited outside the graph.
package staging

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storegraph/storegraph/pkg/dataset"
)

// Store handles cleaned-row persistence using PostgreSQL
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL-backed staging store
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pooling configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &Store{pool: pool}

	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the database connection pool
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Archive bulk-copies one run's cleaned rows, tagged with the run id.
func (s *Store) Archive(ctx context.Context, runID string, orders []dataset.Order) (int64, error) {
	src := &orderSource{runID: runID, orders: orders, loadedAt: time.Now().UTC()}
	n, err := s.pool.CopyFrom(ctx, pgx.Identifier{"clean_orders"}, orderColumns, src)
	if err != nil {
		return 0, fmt.Errorf("copying %d rows: %w", len(orders), err)
	}
	return n, nil
}

// RunRowCount returns how many rows one run archived.
func (s *Store) RunRowCount(ctx context.Context, runID string) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM clean_orders WHERE run_id = $1`, runID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting rows for run %s: %w", runID, err)
	}
	return n, nil
}
