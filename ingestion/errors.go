package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when an entry repository is not provided.
	ErrRepositoryRequired = errors.New("entry repository required")

	// ErrInvalidConfig is returned when an import configuration is out of range.
	ErrInvalidConfig = errors.New("invalid import configuration")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrMalformedWordList is returned when a word list is neither a JSON
	// array of words nor an object with a "words" array.
	ErrMalformedWordList = errors.New("malformed word list")
)
