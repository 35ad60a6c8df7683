// Package postgres is a Postgres-backed submissionstore.Store, used when
// a deployment wants submission state to survive a CLI/daemon restart
// across multiple recipients and envelopes.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements submissionstore.Store for PostgreSQL. Callers are
// expected to have already applied a migration creating the
// `submissions` table (content_id, sender, recipient, status,
// reject_reason, extrinsic_ref, created_at, updated_at) with a unique
// key on (content_id, recipient).
type Store struct {
	pool *pgxpool.Pool
}

// Config holds PostgreSQL connection configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// New creates a new PostgreSQL-backed submission store.
func New(ctx context.Context, cfg *Config) (*Store, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
