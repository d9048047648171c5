package storage

import (
	"context"

	"github.com/poiesic/igbodict/core"
)

// CorpusReader is the read-only view of the dictionary consumed by search.
// Implementations must be thread-safe and support concurrent access.
type CorpusReader interface {
	// AllEntries returns a snapshot of every entry in natural order
	// (insertion order), with examples resolved.
	AllEntries(ctx context.Context) ([]*core.Entry, error)

	// Revision returns a counter that changes whenever any entry is
	// added, updated or deleted.
	Revision(ctx context.Context) (uint64, error)
}

// EntryRepository provides operations for managing dictionary entries.
type EntryRepository interface {
	CorpusReader

	// AddEntries validates and adds one or more entries to storage.
	// Generates new IDs for entries and for examples with ID=0.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the entries with generated IDs and timestamps populated.
	AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error)

	// UpdateEntries validates and updates existing entries.
	// Updates the UpdatedAt timestamp and Revision automatically.
	// Returns ErrNotFound if any entry doesn't exist.
	UpdateEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error)

	// DeleteEntries removes entries by their IDs.
	// Returns ErrNotFound if any entry doesn't exist.
	DeleteEntries(ctx context.Context, ids ...core.ID) error

	// GetEntry retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id core.ID) (*core.Entry, error)

	// GetEntries retrieves multiple entries by their IDs.
	// Returns only the entries that exist (no error for missing entries).
	GetEntries(ctx context.Context, ids ...core.ID) ([]*core.Entry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
