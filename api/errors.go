package api

import "errors"

var (
	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrEntriesRequired is returned when an entry source is not provided.
	ErrEntriesRequired = errors.New("entry source required")
)
