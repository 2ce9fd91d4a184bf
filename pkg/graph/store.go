// Package graph is the Neo4j client layer: connection management, schema
// constraints, idempotent bulk loading, graph-algorithm invocation, and
// prediction write-back. All substantive graph computation happens inside
// the database; this package only ships Cypher.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner executes one Cypher statement and returns its records as maps
// keyed by the RETURN aliases. Loading and analytics code depends on this
// instead of the driver so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}

// Config holds Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store wraps a Neo4j driver. One Store is opened per command run and
// closed when the bounded statement sequence finishes.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// New connects to Neo4j and verifies connectivity.
func New(ctx context.Context, cfg Config) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	db := cfg.Database
	if db == "" {
		db = "neo4j"
	}
	return &Store{driver: driver, database: db}, nil
}

// Close releases the driver and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Run executes a single statement in its own session.
func (s *Store) Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("running statement: %w", err)
	}

	var rows []map[string]any
	for result.Next(ctx) {
		record := result.Record()
		row := make(map[string]any, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = record.Values[i]
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("consuming result: %w", err)
	}
	return rows, nil
}

// record value coercions: the driver hands back int64/float64/bool under
// `any`, and fakes in tests may use narrower types.

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
