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


// Package storage provides the storage abstraction layer for igbodict.
//
// This package defines repository interfaces that decouple storage implementation
// from search and ingestion. Two backends implement them: storage/badger
// (embedded key-value store, the default) and storage/sqlite.
//
// # Architecture
//
//   - CorpusReader: the read-only snapshot view consumed by search
//   - EntryRepository: CorpusReader plus the entry write path
//
// Entries are returned in natural order, which is insertion order. Search
// relies on this order as its final tie-breaker, so backends must keep it
// stable across calls.
//
// # Usage
//
//	repo, backend, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	defer repo.Close()
//
// # Revisions
//
// Every write bumps a repository-wide revision counter. Readers that cache
// derived data compare revisions to decide when the cache is stale.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
