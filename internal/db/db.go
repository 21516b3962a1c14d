// Package db provides PostgreSQL storage for agent definitions and template analyses.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS agent_definitions (
	id               UUID PRIMARY KEY,
	name             TEXT NOT NULL,
	description      TEXT NOT NULL,
	prompt           TEXT NOT NULL,
	area             TEXT NOT NULL,
	subtype          TEXT NOT NULL,
	specializations  JSONB NOT NULL DEFAULT '[]',
	recommendations  JSONB NOT NULL DEFAULT '[]',
	confidence_score INTEGER NOT NULL,
	version          INTEGER NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (name, version)
);

CREATE TABLE IF NOT EXISTS template_analyses (
	id         UUID PRIMARY KEY,
	agent_id   UUID REFERENCES agent_definitions(id) ON DELETE CASCADE,
	content    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the tables used by this package if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
