// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package sqlite implements storage.EntryRepository on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/storage"
)

// executor lets helpers accept either *sql.DB or *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements storage.EntryRepository for SQLite.
type Repository struct {
	db     *sql.DB
	closed atomic.Bool
}

var _ storage.EntryRepository = (*Repository)(nil)

// Open opens (creating if needed) the SQLite database at path and
// applies the schema. Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// One connection: in-memory databases are per connection, and SQLite
	// allows a single writer anyway.
	db.SetMaxOpenConns(1)

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Repository{db: db}, nil
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if r.closed.Load() {
		return storage.ErrStorageClosed
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// AddEntries validates and adds one or more entries.
func (r *Repository) AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		rev, err := bumpRevision(ctx, tx)
		if err != nil {
			return err
		}
		now := storage.Now()
		for _, entry := range entries {
			cols, err := encodeColumns(entry)
			if err != nil {
				return err
			}
			res, err := tx.ExecContext(ctx,
				`INSERT INTO entries (word, word_class, definitions, variations, stems, inserted_at, updated_at, revision)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				entry.Word, string(entry.WordClass), cols.definitions, cols.variations, cols.stems,
				now.UnixMicro(), now.UnixMicro(), rev)
			if err != nil {
				return fmt.Errorf("insert entry: %w", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			entry.Id = core.ID(id)
			entry.InsertedAt = now
			entry.UpdatedAt = now
			entry.Revision = rev
			if err := insertExamples(ctx, tx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntries validates and updates existing entries.
func (r *Repository) UpdateEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		rev, err := bumpRevision(ctx, tx)
		if err != nil {
			return err
		}
		now := storage.Now()
		for _, entry := range entries {
			var insertedAt int64
			err := tx.QueryRowContext(ctx, `SELECT inserted_at FROM entries WHERE id = ?`, int64(entry.Id)).Scan(&insertedAt)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: id %d", storage.ErrNotFound, entry.Id)
			}
			if err != nil {
				return err
			}
			cols, err := encodeColumns(entry)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`UPDATE entries SET word = ?, word_class = ?, definitions = ?, variations = ?, stems = ?, updated_at = ?, revision = ?
				 WHERE id = ?`,
				entry.Word, string(entry.WordClass), cols.definitions, cols.variations, cols.stems,
				now.UnixMicro(), rev, int64(entry.Id))
			if err != nil {
				return fmt.Errorf("update entry: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM examples WHERE entry_id = ?`, int64(entry.Id)); err != nil {
				return err
			}
			if err := insertExamples(ctx, tx, entry); err != nil {
				return err
			}
			entry.InsertedAt = time.UnixMicro(insertedAt).UTC()
			entry.UpdatedAt = now
			entry.Revision = rev
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteEntries removes entries and their examples.
func (r *Repository) DeleteEntries(ctx context.Context, ids ...core.ID) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := bumpRevision(ctx, tx); err != nil {
			return err
		}
		for _, id := range ids {
			res, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, int64(id))
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("%w: id %d", storage.ErrNotFound, id)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM examples WHERE entry_id = ?`, int64(id)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetEntry retrieves a single entry by ID.
func (r *Repository) GetEntry(ctx context.Context, id core.ID) (*core.Entry, error) {
	entries, err := r.GetEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, storage.ErrNotFound
	}
	return entries[0], nil
}

// GetEntries retrieves the entries that exist among ids, in the order given.
func (r *Repository) GetEntries(ctx context.Context, ids ...core.ID) ([]*core.Entry, error) {
	var result []*core.Entry
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			entries, err := queryEntries(ctx, tx, `WHERE id = ?`, int64(id))
			if err != nil {
				return err
			}
			result = append(result, entries...)
		}
		return nil
	})
	return result, err
}

// AllEntries returns every entry ordered by id, which is insertion order.
func (r *Repository) AllEntries(ctx context.Context) ([]*core.Entry, error) {
	var result []*core.Entry
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		result, err = queryEntries(ctx, tx, "")
		return err
	})
	return result, err
}

// Count returns the number of stored entries.
func (r *Repository) Count(ctx context.Context) (int, error) {
	if r.closed.Load() {
		return 0, storage.ErrStorageClosed
	}
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

// Revision returns the corpus revision counter.
func (r *Repository) Revision(ctx context.Context) (uint64, error) {
	if r.closed.Load() {
		return 0, storage.ErrStorageClosed
	}
	var rev int64
	err := r.db.QueryRowContext(ctx, `SELECT value FROM corpus_meta WHERE key = 'revision'`).Scan(&rev)
	return uint64(rev), err
}

type entryColumns struct {
	definitions, variations, stems string
}

func encodeColumns(entry *core.Entry) (entryColumns, error) {
	var cols entryColumns
	var err error
	if cols.definitions, err = encodeStrings(entry.Definitions); err != nil {
		return cols, err
	}
	if cols.variations, err = encodeStrings(entry.Variations); err != nil {
		return cols, err
	}
	cols.stems, err = encodeStrings(entry.Stems)
	return cols, err
}

func encodeStrings(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	return string(b), nil
}

func decodeJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	return nil
}

func insertExamples(ctx context.Context, tx executor, entry *core.Entry) error {
	for i := range entry.Examples {
		ex := &entry.Examples[i]
		assoc := ex.AssociatedWords
		if assoc == nil {
			assoc = []core.ID{}
		}
		b, err := json.Marshal(assoc)
		if err != nil {
			return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
		}
		var id any
		if ex.Id != 0 {
			id = int64(ex.Id)
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO examples (id, entry_id, position, igbo, english, associated_words) VALUES (?, ?, ?, ?, ?, ?)`,
			id, int64(entry.Id), i, ex.Igbo, ex.English, string(b))
		if err != nil {
			return fmt.Errorf("insert example: %w", err)
		}
		if ex.Id == 0 {
			newID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ex.Id = core.ID(newID)
		}
	}
	return nil
}

// queryEntries loads entries matching where (appended to the SELECT) in id
// order, then attaches their examples.
func queryEntries(ctx context.Context, db executor, where string, args ...any) ([]*core.Entry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, word, word_class, definitions, variations, stems, inserted_at, updated_at, revision
		 FROM entries `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.Entry
	byID := make(map[core.ID]*core.Entry)
	for rows.Next() {
		var (
			e                     core.Entry
			id                    int64
			wordClass             string
			defs, vars, stems     string
			insertedAt, updatedAt int64
			revision              int64
		)
		if err := rows.Scan(&id, &e.Word, &wordClass, &defs, &vars, &stems, &insertedAt, &updatedAt, &revision); err != nil {
			return nil, err
		}
		e.Id = core.ID(id)
		e.WordClass = core.WordClass(wordClass)
		if err := decodeJSON(defs, &e.Definitions); err != nil {
			return nil, err
		}
		if err := decodeJSON(vars, &e.Variations); err != nil {
			return nil, err
		}
		if err := decodeJSON(stems, &e.Stems); err != nil {
			return nil, err
		}
		e.InsertedAt = time.UnixMicro(insertedAt).UTC()
		e.UpdatedAt = time.UnixMicro(updatedAt).UTC()
		e.Revision = uint64(revision)
		out = append(out, &e)
		byID[e.Id] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	exWhere := ""
	var exArgs []any
	if len(out) == 1 {
		exWhere = "WHERE entry_id = ?"
		exArgs = []any{int64(out[0].Id)}
	}
	exRows, err := db.QueryContext(ctx,
		`SELECT id, entry_id, igbo, english, associated_words FROM examples `+exWhere+` ORDER BY entry_id, position`, exArgs...)
	if err != nil {
		return nil, err
	}
	defer exRows.Close()

	for exRows.Next() {
		var (
			ex          core.Example
			id, entryID int64
			assoc       string
		)
		if err := exRows.Scan(&id, &entryID, &ex.Igbo, &ex.English, &assoc); err != nil {
			return nil, err
		}
		ex.Id = core.ID(id)
		if err := decodeJSON(assoc, &ex.AssociatedWords); err != nil {
			return nil, err
		}
		if len(ex.AssociatedWords) == 0 {
			ex.AssociatedWords = nil
		}
		if owner, ok := byID[core.ID(entryID)]; ok {
			owner.Examples = append(owner.Examples, ex)
		}
	}
	return out, exRows.Err()
}

func bumpRevision(ctx context.Context, tx executor) (uint64, error) {
	var rev int64
	err := tx.QueryRowContext(ctx,
		`UPDATE corpus_meta SET value = value + 1 WHERE key = 'revision' RETURNING value`).Scan(&rev)
	if err != nil {
		return 0, fmt.Errorf("bump revision: %w", err)
	}
	return uint64(rev), nil
}

func validateEntries(entries []*core.Entry) error {
	for _, entry := range entries {
		if err := core.ValidateEntry(entry); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrInvalidEntry, err)
		}
	}
	return nil
}
