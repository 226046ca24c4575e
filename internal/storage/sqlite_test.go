package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "mood.db"), time.Local, internal.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndReadBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	id, err := store.Append(ctx, 3)
	require.NoError(t, err)
	assert.Positive(t, id)

	entries, err := store.AllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Category)
	assert.False(t, entries[0].Timestamp.Before(before))
}

func TestAppendAssignsMonotonicIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := store.Append(ctx, i)
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestAppendRejectsInvalidCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, bad := range []int{-1, mood.Count, 999} {
		_, err := store.Append(ctx, bad)
		assert.ErrorIs(t, err, internal.ErrInvalidCategory, "category %d", bad)
	}

	entries, err := store.AllEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected appends must not write")
}

func TestAllEntriesEmptyTable(t *testing.T) {
	store := newTestStore(t)
	entries, err := store.AllEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAllEntriesReflectsEveryAppend(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, c := range []int{0, 0, 2, 19} {
		_, err := store.Append(ctx, c)
		require.NoError(t, err)
	}

	entries, err := store.AllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	got := make([]int, len(entries))
	for i, e := range entries {
		got[i] = e.Category
	}
	assert.Equal(t, []int{0, 0, 2, 19}, got)
}

func TestAppendStampsInConfiguredZone(t *testing.T) {
	yekt := time.FixedZone("YEKT", 5*60*60)
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "mood.db"), yekt, internal.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	_, err = store.Append(ctx, 0)
	require.NoError(t, err)

	entries, err := store.AllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0].Timestamp
	assert.Equal(t, yekt, got.Location())
	assert.WithinDuration(t, time.Now(), got, 5*time.Second)
}

func TestFactorySelectsBackend(t *testing.T) {
	repo, err := NewMoodRepository("sqlite", filepath.Join(t.TempDir(), "mood.db"), "", time.Local, internal.NewNopLogger())
	require.NoError(t, err)
	repo.Close()

	_, err = NewMoodRepository("cassandra", "", "", time.Local, internal.NewNopLogger())
	assert.Error(t, err)
}
