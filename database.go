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


package igbodict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/igbodict/ingestion"
	"github.com/poiesic/igbodict/search"
	"github.com/poiesic/igbodict/storage"
	"github.com/poiesic/igbodict/storage/badger"
	"github.com/poiesic/igbodict/storage/sqlite"
)

// BackendKind names a storage engine.
type BackendKind string

const (
	BackendBadger BackendKind = "badger"
	BackendSQLite BackendKind = "sqlite"
)

// ErrUnknownBackend is returned for a BackendKind that is not supported.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Database owns the storage of a dictionary and hands out the components
// working on it.
type Database struct {
	backend   *badger.Backend // nil for sqlite
	repo      storage.EntryRepository
	logger    *slog.Logger
	searchers []*search.Searcher
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	kind     BackendKind
	inMemory bool
	logger   *slog.Logger
}

// WithBackend selects the storage engine. Default is BackendBadger.
func WithBackend(kind BackendKind) DatabaseOption {
	return func(o *databaseOptions) {
		o.kind = kind
	}
}

// WithInMemory keeps all data in memory; the path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithDatabaseLogger sets the logger used by the database and passed on to
// the storage engine.
func WithDatabaseLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDatabase opens the dictionary stored at filePath, creating it if needed.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		kind:   BackendBadger,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	db := &Database{logger: options.logger}
	switch options.kind {
	case BackendBadger:
		backend, err := badger.OpenBackend(filePath, options.inMemory, badger.WithBackendLogger(options.logger))
		if err != nil {
			return nil, err
		}
		repo, err := badger.NewEntryRepository(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		db.backend = backend
		db.repo = repo
	case BackendSQLite:
		path := filePath
		if options.inMemory {
			path = ":memory:"
		}
		repo, err := sqlite.Open(context.Background(), path)
		if err != nil {
			return nil, err
		}
		db.repo = repo
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, options.kind)
	}
	return db, nil
}

// Close releases searchers created by NewSearcher, then the storage.
func (db *Database) Close() error {
	for _, s := range db.searchers {
		s.Release()
	}
	db.searchers = nil

	if err := db.repo.Close(); err != nil {
		db.logger.Error("error closing entry repository", "err", err)
		return err
	}

	if db.backend != nil {
		if err := db.backend.Close(); err != nil {
			db.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

func (db *Database) EntryRepository() storage.EntryRepository {
	return db.repo
}

// NewImporter creates an importer writing to this database.
func (db *Database) NewImporter(config *ingestion.Config, opts ...ingestion.Option) (*ingestion.Importer, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(db.logger)}, opts...)
	return ingestion.NewImporter(db.repo, config, opts...)
}

// NewSearcher creates a searcher over this database. It is released by Close.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(db.logger)}, opts...)
	s, err := search.NewSearcher(db.repo, opts...)
	if err != nil {
		return nil, err
	}
	db.searchers = append(db.searchers, s)
	return s, nil
}
