package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/url-shortener/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Store.
// A single lock guards the whole map and each method is one critical section.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[shortener.Code]shortener.Entry
	now     func() time.Time
}

// NewMemoryStore creates a new in-memory URL store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[shortener.Code]shortener.Entry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Add(_ context.Context, code shortener.Code, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[code] = m.newEntry(url)

	return nil
}

func (m *MemoryStore) AddIfAbsent(_ context.Context, code shortener.Code, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[code]; ok {
		return false, nil
	}

	m.entries[code] = m.newEntry(url)

	return true, nil
}

func (m *MemoryStore) Get(_ context.Context, code shortener.Code) (*shortener.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &entry, nil
}

func (m *MemoryStore) IncrementClick(_ context.Context, code shortener.Code) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[code]
	if !ok {
		return false, nil
	}

	entry.Clicks++
	m.entries[code] = entry

	return true, nil
}

func (m *MemoryStore) GetStats(_ context.Context, code shortener.Code) (*shortener.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &shortener.Stats{
		URL:       entry.URL,
		Clicks:    entry.Clicks,
		CreatedAt: entry.CreatedAt,
	}, nil
}

// Len returns the number of stored entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

func (m *MemoryStore) newEntry(url string) shortener.Entry {
	return shortener.Entry{
		URL:       url,
		CreatedAt: m.now(),
		Clicks:    0,
	}
}

// Compile-time check.
var _ shortener.Store = (*MemoryStore)(nil)
