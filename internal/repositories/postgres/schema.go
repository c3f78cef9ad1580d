package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is satisfied by *pgxpool.Pool and *pgx.Conn.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

const Schema = `
CREATE TABLE IF NOT EXISTS restaurants (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    image          TEXT NOT NULL,
    cuisines       TEXT[] NOT NULL DEFAULT '{}',
    rating         DOUBLE PRECISION NOT NULL,
    delivery_time  INTEGER NOT NULL,
    price_for_two  INTEGER NOT NULL,
    discount       TEXT NOT NULL DEFAULT '',
    address        TEXT NOT NULL DEFAULT '',
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS menu_items (
    restaurant_id  TEXT NOT NULL,
    id             TEXT NOT NULL,
    category_id    TEXT NOT NULL,
    category_name  TEXT NOT NULL,
    position       INTEGER NOT NULL,
    name           TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    price          INTEGER NOT NULL,
    image          TEXT NOT NULL DEFAULT '',
    veg            BOOLEAN NOT NULL DEFAULT false,
    bestseller     BOOLEAN NOT NULL DEFAULT false,
    rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
    PRIMARY KEY (restaurant_id, id)
);
`

// EnsureSchema creates the export tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
