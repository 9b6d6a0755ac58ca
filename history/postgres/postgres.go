// Package postgres provides a pgx-backed history store for deployments that
// keep solved problems beyond a single session.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindmate-ai/mindmate/history"
)

// PGStore implements history.Store on a pgx connection pool.
type PGStore struct {
	db *pgxpool.Pool
}

// New connects to the database and returns a store. The caller owns the
// lifetime and must Close the store when done.
func New(ctx context.Context, dsn string) (*PGStore, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("history: connect: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: ping: %w", err)
	}
	return &PGStore{db: db}, nil
}

// NewWithPool wraps an existing pool.
func NewWithPool(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// Close releases the underlying pool.
func (s *PGStore) Close() {
	s.db.Close()
}

// CreateSchema creates the history table if it does not exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS mindmate_records (
			id         TEXT PRIMARY KEY,
			problem    TEXT NOT NULL,
			steps      TEXT[] NOT NULL DEFAULT '{}',
			answer     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("history: create schema: %w", err)
	}
	return nil
}

// DropSchema drops the history table.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS mindmate_records CASCADE`)
	if err != nil {
		return fmt.Errorf("history: drop schema: %w", err)
	}
	return nil
}

// Add inserts a record, assigning a fresh id.
func (s *PGStore) Add(ctx context.Context, rec history.Record) (*history.Record, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now()

	err := s.db.QueryRow(ctx,
		`INSERT INTO mindmate_records (id, problem, steps, answer, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		rec.ID, rec.Problem, rec.Steps, rec.Answer, rec.CreatedAt,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("history: add record: %w", err)
	}

	return &rec, nil
}

// List returns all records, newest first.
func (s *PGStore) List(ctx context.Context) ([]history.Record, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, problem, steps, answer, created_at
		 FROM mindmate_records
		 ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("history: list records: %w", err)
	}
	defer rows.Close()

	var out []history.Record
	for rows.Next() {
		var rec history.Record
		if err := rows.Scan(&rec.ID, &rec.Problem, &rec.Steps, &rec.Answer, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list records: %w", err)
	}
	return out, nil
}

// Get returns the record with the given id.
func (s *PGStore) Get(ctx context.Context, id string) (*history.Record, error) {
	var rec history.Record
	err := s.db.QueryRow(ctx,
		`SELECT id, problem, steps, answer, created_at
		 FROM mindmate_records WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Problem, &rec.Steps, &rec.Answer, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, history.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: get record: %w", err)
	}
	return &rec, nil
}
