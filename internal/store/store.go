// Package store persists inventory items, BOM templates, and the audit log
// to PostgreSQL. It is a collaborator of the import engine, not part of it:
// the engine hands over plain records and this package owns all SQL.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of database operations shared by pools and
// transactions. Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB extends DBTX with transactions and batching. *pgxpool.Pool satisfies it.
type DB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Store provides all persistence operations.
type Store struct {
	db DB
}

// New creates a Store backed by the given database handle.
func New(db DB) *Store {
	return &Store{db: db}
}
