package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS services (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL DEFAULT 0,
		details     TEXT[] NOT NULL DEFAULT '{}'
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL,
		service    TEXT NOT NULL,
		date       TEXT NOT NULL,
		time       TEXT NOT NULL DEFAULT '',
		dentist    TEXT NOT NULL DEFAULT '',
		country    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_created_at
		ON bookings(created_at DESC)`,
}

// Migrate creates the record-store tables when they are missing.
func Migrate(ctx context.Context, db DB) error {
	for _, m := range migrations {
		if _, err := db.Exec(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
