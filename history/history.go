// Package history persists solved problems so a presentation layer can list
// earlier submissions and re-export their reports. The reasoning core never
// touches a store; appending records is the caller's job.
package history

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("history: record not found")

// Record is one solved problem: the submission plus both phases' outputs.
type Record struct {
	ID        string    `json:"id"`
	Problem   string    `json:"problem"`
	Steps     []string  `json:"steps"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the contract for persisting solved problems.
type Store interface {
	// Add persists a record, assigning its ID and CreatedAt, and returns
	// the stored copy.
	Add(ctx context.Context, rec Record) (*Record, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)
	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)
}
