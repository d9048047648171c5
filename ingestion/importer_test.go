package ingestion

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/storage"
	"github.com/poiesic/igbodict/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.EntryRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testConfig() *Config {
	return &Config{
		BatchSize:      4,
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
	}
}

// conflictingRepo fails the first n AddEntries calls with a transaction conflict.
type conflictingRepo struct {
	storage.EntryRepository
	failures atomic.Int32
	calls    atomic.Int32
}

func (c *conflictingRepo) AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	c.calls.Add(1)
	if c.failures.Add(-1) >= 0 {
		return nil, badgerdb.ErrConflict
	}
	return c.EntryRepository.AddEntries(ctx, entries...)
}

func TestNewImporter(t *testing.T) {
	_, err := NewImporter(nil, nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewImporter(newTestRepo(t), &Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	im, err := NewImporter(newTestRepo(t), nil, WithLogger(nil), WithProgress(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), im.config)
}

func TestImport_SampleEntries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	var progress bytes.Buffer
	im, err := NewImporter(repo, testConfig(), WithProgress(&progress))
	require.NoError(t, err)

	sample := SampleEntries()
	sum, err := im.Import(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, len(sample), sum.Added)
	assert.Zero(t, sum.Duplicates)
	assert.Zero(t, sum.Rejected)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sample), count)
	assert.Contains(t, progress.String(), "Imported:")

	all, err := repo.AllEntries(ctx)
	require.NoError(t, err)
	for i := range sample {
		assert.Equal(t, sample[i].Word, all[i].Word, "natural order follows input order")
		assert.NotZero(t, all[i].Id)
	}

	// A second import of the same list adds nothing.
	sum, err = im.Import(ctx, SampleEntries())
	require.NoError(t, err)
	assert.Zero(t, sum.Added)
	assert.Equal(t, len(sample), sum.Duplicates)
}

func TestImport_SkipsInvalidAndDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	im, err := NewImporter(repo, testConfig())
	require.NoError(t, err)

	entries := []*core.Entry{
		{Word: "nne", WordClass: core.WordClassNoun, Definitions: []string{"mother"}},
		{Word: "", WordClass: core.WordClassNoun},
		{Word: "nna", WordClass: "XYZ"},
		nil,
		// Same definition with surrounding spaces.
		{Word: "nne", WordClass: core.WordClassNoun, Definitions: []string{" mother "}},
		{Word: "àkwà", WordClass: core.WordClassNoun, Definitions: []string{"bed"}},
		// Same word spelled with combining grave accents.
		{Word: "a\u0300kwa\u0300", WordClass: core.WordClassNoun, Definitions: []string{"bed"}},
		{Word: "ákwà", WordClass: core.WordClassNoun, Definitions: []string{"cloth"}},
	}
	sum, err := im.Import(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, Summary{Added: 3, Duplicates: 2, Rejected: 3, Elapsed: sum.Elapsed}, sum)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestImport_RetriesConflicts(t *testing.T) {
	ctx := context.Background()
	repo := &conflictingRepo{EntryRepository: newTestRepo(t)}
	repo.failures.Store(2)

	im, err := NewImporter(repo, testConfig())
	require.NoError(t, err)

	sum, err := im.Import(ctx, SampleEntries()[:3])
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Added)
	assert.Equal(t, int32(3), repo.calls.Load())
}

func TestImport_GivesUpAfterMaxRetries(t *testing.T) {
	ctx := context.Background()
	repo := &conflictingRepo{EntryRepository: newTestRepo(t)}
	repo.failures.Store(100)

	im, err := NewImporter(repo, testConfig())
	require.NoError(t, err)

	_, err = im.Import(ctx, SampleEntries()[:3])
	assert.ErrorIs(t, err, badgerdb.ErrConflict)
	assert.Equal(t, int32(3), repo.calls.Load())
}

func TestImport_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	im, err := NewImporter(newTestRepo(t), testConfig())
	require.NoError(t, err)

	_, err = im.Import(ctx, SampleEntries())
	assert.ErrorIs(t, err, context.Canceled)
}
