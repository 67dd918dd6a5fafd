package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/divine-answers/internal/kv"
)

func TestKVStorageEmpty(t *testing.T) {
	s := NewKVStorage(kv.NewMemoryStore())

	favs, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
}

func TestKVStorageWireFormat(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := NewKVStorage(store)

	require.NoError(t, s.Save(ctx, []Favorite{{
		ID:          1700000000000,
		Book:        "Quran",
		Problem:     "grief",
		Verse:       "94:5",
		Explanation: "relief",
		SavedAt:     time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}}))

	raw, ok, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{
		"id":1700000000000,
		"book":"Quran",
		"problem":"grief",
		"verse":"94:5",
		"explanation":"relief",
		"savedAt":"2025-01-02T03:04:05Z"
	}]`, raw)
}

func TestKVStorageReadsBrowserStyleTimestamps(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, StorageKey, `[{"id":5,"book":"Bible","problem":"p","verse":"v","explanation":"e","savedAt":"2025-01-02T03:04:05.678Z"}]`))

	favs, err := NewKVStorage(store).Load(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, 678*time.Millisecond, time.Duration(favs[0].SavedAt.Nanosecond()))
}

func TestKVStorageCorrupt(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, StorageKey, "{not a list"))

	_, err := NewKVStorage(store).Load(ctx)
	assert.ErrorContains(t, err, "failed to decode favorites")
}
