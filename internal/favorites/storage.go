package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/taiwoajasa245/divine-answers/internal/kv"
)

// StorageKey is the single entry that holds the whole favorites list.
const StorageKey = "favorites"

// Storage loads and saves the full favorites list, oldest first.
type Storage interface {
	Load(ctx context.Context) ([]Favorite, error)
	Save(ctx context.Context, favs []Favorite) error
}

// KVStorage serialises the list as JSON text under StorageKey.
type KVStorage struct {
	store kv.Store
}

func NewKVStorage(store kv.Store) *KVStorage {
	return &KVStorage{store: store}
}

func (s *KVStorage) Load(ctx context.Context) ([]Favorite, error) {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []Favorite{}, nil
	}

	var favs []Favorite
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	if favs == nil {
		favs = []Favorite{}
	}
	return favs, nil
}

func (s *KVStorage) Save(ctx context.Context, favs []Favorite) error {
	if favs == nil {
		favs = []Favorite{}
	}
	raw, err := json.Marshal(favs)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.store.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

// MemoryStorage keeps the list in process memory.
type MemoryStorage struct {
	mu   sync.Mutex
	favs []Favorite

	// Saves counts Save calls.
	Saves int
}

func NewMemoryStorage(initial ...Favorite) *MemoryStorage {
	return &MemoryStorage{favs: append([]Favorite(nil), initial...)}
}

func (m *MemoryStorage) Load(ctx context.Context) ([]Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Favorite{}, m.favs...), nil
}

func (m *MemoryStorage) Save(ctx context.Context, favs []Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favs = append([]Favorite(nil), favs...)
	m.Saves++
	return nil
}
