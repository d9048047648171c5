package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/storage"
)

// EntryRepository implements storage.EntryRepository for BadgerDB.
type EntryRepository struct {
	backend    *Backend
	idSeq      *badger.Sequence
	exampleSeq *badger.Sequence
}

var _ storage.EntryRepository = (*EntryRepository)(nil)

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(backend *Backend) (*EntryRepository, error) {
	idSeq, err := backend.GetSequence(entryIDSeq)
	if err != nil {
		return nil, err
	}
	exampleSeq, err := backend.GetSequence(exampleIDSeq)
	if err != nil {
		idSeq.Release()
		return nil, err
	}

	return &EntryRepository{
		backend:    backend,
		idSeq:      idSeq,
		exampleSeq: exampleSeq,
	}, nil
}

// Close releases the ID sequences.
func (r *EntryRepository) Close() error {
	return errors.Join(r.idSeq.Release(), r.exampleSeq.Release())
}

// AddEntries validates and adds one or more entries to storage.
func (r *EntryRepository) AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		rev, err := bumpRevision(tx)
		if err != nil {
			return err
		}
		now := storage.Now()
		for _, entry := range entries {
			id, err := nextID(r.idSeq)
			if err != nil {
				return err
			}
			entry.Id = id
			if err := r.assignExampleIDs(entry); err != nil {
				return err
			}

			entry.InsertedAt = now
			entry.UpdatedAt = now
			entry.Revision = rev

			if err := tx.Set(makeEntryKey(entry.Id), storage.MarshalEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateEntries validates and updates existing entries.
func (r *EntryRepository) UpdateEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		rev, err := bumpRevision(tx)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			key := makeEntryKey(entry.Id)

			old, err := r.readEntry(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return fmt.Errorf("%w: id %d", storage.ErrNotFound, entry.Id)
			}
			if err := r.assignExampleIDs(entry); err != nil {
				return err
			}

			entry.InsertedAt = old.InsertedAt
			entry.UpdatedAt = storage.Now()
			entry.Revision = rev

			if err := tx.Set(key, storage.MarshalEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntries removes entries by their IDs.
func (r *EntryRepository) DeleteEntries(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := bumpRevision(tx); err != nil {
			return err
		}
		for _, id := range ids {
			key := makeEntryKey(id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("%w: id %d", storage.ErrNotFound, id)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEntry retrieves a single entry by ID.
func (r *EntryRepository) GetEntry(ctx context.Context, id core.ID) (*core.Entry, error) {
	var result *core.Entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetEntries retrieves multiple entries by their IDs.
func (r *EntryRepository) GetEntries(ctx context.Context, ids ...core.ID) ([]*core.Entry, error) {
	var result []*core.Entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			entry, err := r.readEntry(tx, makeEntryKey(id))
			if err != nil {
				return err
			}
			if entry != nil {
				result = append(result, entry)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllEntries returns every entry in ID order, which is insertion order.
// The context is checked between items so a long scan can be abandoned.
func (r *EntryRepository) AllEntries(ctx context.Context) ([]*core.Entry, error) {
	var result []*core.Entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := iter.Item()
			if _, ok := entryIDFromKey(item.Key()); !ok {
				continue
			}
			err := item.Value(func(val []byte) error {
				entry, err := storage.UnmarshalEntry(val)
				if err != nil {
					return err
				}
				result = append(result, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of stored entries.
func (r *EntryRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Revision returns the corpus revision counter.
func (r *EntryRepository) Revision(ctx context.Context) (uint64, error) {
	var rev uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		rev, err = readRevision(tx)
		return err
	}, false)
	return rev, err
}

// readEntry reads and unmarshals an entry from a transaction.
// Returns nil, nil if the entry doesn't exist.
func (r *EntryRepository) readEntry(tx *badger.Txn, key []byte) (*core.Entry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.Entry
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entry, unmarshalErr = storage.UnmarshalEntry(val)
		return unmarshalErr
	})
	return entry, err
}

func (r *EntryRepository) assignExampleIDs(entry *core.Entry) error {
	for i := range entry.Examples {
		if entry.Examples[i].Id != 0 {
			continue
		}
		id, err := nextID(r.exampleSeq)
		if err != nil {
			return err
		}
		entry.Examples[i].Id = id
	}
	return nil
}

func validateEntries(entries []*core.Entry) error {
	for _, entry := range entries {
		if err := core.ValidateEntry(entry); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrInvalidEntry, err)
		}
	}
	return nil
}

// nextID pulls the next value from seq.
// BadgerDB sequences can return 0 on first call, so we skip it.
func nextID(seq *badger.Sequence) (core.ID, error) {
	next, err := seq.Next()
	if err != nil {
		return 0, err
	}
	if next == 0 {
		next, err = seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(next), nil
}

func readRevision(tx *badger.Txn) (uint64, error) {
	item, err := tx.Get([]byte(revisionKey))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	var rev uint64
	err = item.Value(func(val []byte) error {
		rev = decodeRevision(val)
		return nil
	})
	return rev, err
}

// bumpRevision increments the corpus revision inside tx.
// Concurrent writers conflict on this key, so badger serializes them.
func bumpRevision(tx *badger.Txn) (uint64, error) {
	rev, err := readRevision(tx)
	if err != nil {
		return 0, err
	}
	rev++
	if err := tx.Set([]byte(revisionKey), encodeRevision(rev)); err != nil {
		return 0, err
	}
	return rev, nil
}
