// Package ingestion loads dictionary entries into storage.
//
// The Importer type manages the import workflow, including:
//   - Decoding entries from JSON word lists
//   - Dropping entries already present in the input or in storage
//   - Writing entries in batches, retrying transient storage failures
//     with exponential backoff
//   - Reporting progress to a writer
//
// Entries that fail validation are logged and skipped; they do not fail
// the import.
package ingestion
