package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/storage"
	"golang.org/x/text/unicode/norm"
)

// Summary reports the outcome of an import.
type Summary struct {
	Added      int
	Duplicates int
	Rejected   int
	Elapsed    time.Duration
}

// Importer writes entries to a repository in batches.
type Importer struct {
	repo     storage.EntryRepository
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// WithProgress sets where progress lines are written.
// Default is io.Discard.
func WithProgress(w io.Writer) Option {
	return func(im *Importer) error {
		if w == nil {
			w = io.Discard
		}
		im.progress = w
		return nil
	}
}

// NewImporter creates a new importer. A nil config uses DefaultConfig.
func NewImporter(repo storage.EntryRepository, config *Config, opts ...Option) (*Importer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	im := &Importer{
		repo:     repo,
		config:   config,
		progress: io.Discard,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(im); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// Import adds entries to the repository. Entries equal in word, word class
// and definitions to one already stored, or to an earlier one in the input,
// are skipped, as are entries failing validation. The input entries are
// updated in place with their assigned ids.
func (im *Importer) Import(ctx context.Context, entries []*core.Entry) (Summary, error) {
	var sum Summary

	existing, err := im.repo.AllEntries(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to read existing entries: %w", err)
	}
	seen := make(map[core.ID]struct{}, len(existing)+len(entries))
	for _, e := range existing {
		seen[contentID(e)] = struct{}{}
	}

	tracker := NewProgressTracker(im.progress, len(entries), im.config.ReportInterval)
	tracker.Start()

	batch := make([]*core.Entry, 0, im.config.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := im.writeBatch(ctx, batch); err != nil {
			return err
		}
		sum.Added += len(batch)
		tracker.Increment(len(batch))
		batch = batch[:0]
		return nil
	}

	for i, e := range entries {
		if e == nil {
			sum.Rejected++
			tracker.Increment(1)
			continue
		}
		if err := core.ValidateEntry(e); err != nil {
			im.logger.Warn("skipping invalid entry", "index", i, "word", e.Word, "err", err)
			sum.Rejected++
			tracker.Increment(1)
			continue
		}
		key := contentID(e)
		if _, dup := seen[key]; dup {
			im.logger.Debug("skipping duplicate entry", "index", i, "word", e.Word)
			sum.Duplicates++
			tracker.Increment(1)
			continue
		}
		seen[key] = struct{}{}

		batch = append(batch, e)
		if len(batch) == im.config.BatchSize {
			if err := flush(); err != nil {
				return sum, err
			}
		}
	}
	if err := flush(); err != nil {
		return sum, err
	}

	tracker.Finish()
	sum.Elapsed = tracker.Elapsed()
	im.logger.Info("import complete",
		"added", sum.Added,
		"duplicates", sum.Duplicates,
		"rejected", sum.Rejected,
		"elapsed", sum.Elapsed)
	return sum, nil
}

// writeBatch adds one batch, retrying anything but a rejected entry.
func (im *Importer) writeBatch(ctx context.Context, batch []*core.Entry) error {
	err := RetryWithBackoff(ctx, func() error {
		for _, e := range batch {
			e.Id = 0
		}
		_, err := im.repo.AddEntries(ctx, batch...)
		if errors.Is(err, storage.ErrInvalidEntry) || errors.Is(err, storage.ErrStorageClosed) {
			return Permanent(err)
		}
		return err
	}, im.config.MaxRetries, im.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to add batch of %d entries: %w", len(batch), err)
	}
	return nil
}

// contentID identifies an entry by its word, word class and definitions.
// Words are compared in NFC so precomposed and combining forms agree.
func contentID(e *core.Entry) core.ID {
	var b strings.Builder
	b.WriteString(norm.NFC.String(strings.TrimSpace(e.Word)))
	b.WriteByte(0)
	b.WriteString(string(e.WordClass))
	for _, d := range e.Definitions {
		b.WriteByte(0)
		b.WriteString(norm.NFC.String(strings.TrimSpace(d)))
	}
	return core.IDFromContent(b.String())
}
