package shortener_test

import (
	"context"
	"testing"

	"github.com/serroba/url-shortener/internal/shortener"
	"github.com/serroba/url-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllocationMode(t *testing.T) {
	tests := []struct {
		input   string
		want    shortener.AllocationMode
		wantErr bool
	}{
		{input: "atomic", want: shortener.AllocationAtomic},
		{input: "", want: shortener.AllocationAtomic},
		{input: "legacy", want: shortener.AllocationLegacy},
		{input: "optimistic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := shortener.ParseAllocationMode(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestNewAllocator(t *testing.T) {
	s := store.NewMemoryStore()
	gen := sequenceGenerator("abc123")

	t.Run("returns atomic allocator", func(t *testing.T) {
		a, err := shortener.NewAllocator(shortener.AllocationAtomic, s, gen)

		require.NoError(t, err)
		assert.IsType(t, &shortener.AtomicAllocator{}, a)
	})

	t.Run("returns legacy allocator", func(t *testing.T) {
		a, err := shortener.NewAllocator(shortener.AllocationLegacy, s, gen)

		require.NoError(t, err)
		assert.IsType(t, &shortener.LegacyAllocator{}, a)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		a, err := shortener.NewAllocator("bogus", s, gen)

		assert.Nil(t, a)
		assert.Error(t, err)
	})
}

func TestAtomicAllocator(t *testing.T) {
	t.Run("allocates a free code", func(t *testing.T) {
		s := store.NewMemoryStore()
		a := shortener.NewAtomicAllocator(s, sequenceGenerator("abc123"))

		code, err := a.Allocate(context.Background(), testURL)

		require.NoError(t, err)
		assert.Equal(t, shortener.Code("abc123"), code)

		entry, err := s.Get(context.Background(), code)
		require.NoError(t, err)
		assert.Equal(t, testURL, entry.URL)
	})

	t.Run("retries past collisions", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Add(context.Background(), "taken1", "https://first.com")
		_ = s.Add(context.Background(), "taken2", "https://second.com")
		a := shortener.NewAtomicAllocator(s, sequenceGenerator("taken1", "taken2", "free01"))

		code, err := a.Allocate(context.Background(), testURL)

		require.NoError(t, err)
		assert.Equal(t, shortener.Code("free01"), code)

		first, _ := s.Get(context.Background(), "taken1")
		assert.Equal(t, "https://first.com", first.URL)
	})

	t.Run("fails after five collisions", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Add(context.Background(), "taken1", "https://first.com")

		calls := 0
		a := shortener.NewAtomicAllocator(s, fixedGenerator("taken1", &calls))

		code, err := a.Allocate(context.Background(), testURL)

		assert.Empty(t, code)
		assert.ErrorIs(t, err, shortener.ErrAllocationFailed)
		assert.Equal(t, shortener.MaxAllocationAttempts, calls)

		entry, _ := s.Get(context.Background(), "taken1")
		assert.Equal(t, "https://first.com", entry.URL)
	})

	t.Run("never overwrites when two requests draw the same code", func(t *testing.T) {
		s := store.NewMemoryStore()
		callsA, callsB := 0, 0
		first := shortener.NewAtomicAllocator(s, fixedGenerator("same01", &callsA))
		second := shortener.NewAtomicAllocator(s, fixedGenerator("same01", &callsB))

		code, err := first.Allocate(context.Background(), "https://first.com")
		require.NoError(t, err)

		_, err = second.Allocate(context.Background(), "https://second.com")
		assert.ErrorIs(t, err, shortener.ErrAllocationFailed)

		entry, _ := s.Get(context.Background(), code)
		assert.Equal(t, "https://first.com", entry.URL)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		a := shortener.NewAtomicAllocator(&mockStore{addIfAbsentErr: errMock}, sequenceGenerator("abc123"))

		_, err := a.Allocate(context.Background(), testURL)

		assert.ErrorIs(t, err, errMock)
	})
}

func TestLegacyAllocator(t *testing.T) {
	t.Run("allocates a free code", func(t *testing.T) {
		s := store.NewMemoryStore()
		a := shortener.NewLegacyAllocator(s, sequenceGenerator("abc123"))

		code, err := a.Allocate(context.Background(), testURL)

		require.NoError(t, err)
		assert.Equal(t, shortener.Code("abc123"), code)
	})

	t.Run("retries past collisions", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Add(context.Background(), "taken1", "https://first.com")
		a := shortener.NewLegacyAllocator(s, sequenceGenerator("taken1", "free01"))

		code, err := a.Allocate(context.Background(), testURL)

		require.NoError(t, err)
		assert.Equal(t, shortener.Code("free01"), code)
	})

	t.Run("fails after five collisions", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Add(context.Background(), "taken1", "https://first.com")

		calls := 0
		a := shortener.NewLegacyAllocator(s, fixedGenerator("taken1", &calls))

		_, err := a.Allocate(context.Background(), testURL)

		assert.ErrorIs(t, err, shortener.ErrAllocationFailed)
		assert.Equal(t, shortener.MaxAllocationAttempts, calls)
	})

	t.Run("second writer overwrites when both observed the code as free", func(t *testing.T) {
		// The mock reports every code as free, reproducing the interleaving where
		// both requests check before either inserts.
		m := &mockStore{}
		first := shortener.NewLegacyAllocator(m, sequenceGenerator("same01"))
		second := shortener.NewLegacyAllocator(m, sequenceGenerator("same01"))

		code1, err1 := first.Allocate(context.Background(), "https://first.com")
		code2, err2 := second.Allocate(context.Background(), "https://second.com")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, code1, code2)
		assert.Equal(t, []shortener.Code{"same01", "same01"}, m.added)
	})

	t.Run("propagates unexpected Get errors", func(t *testing.T) {
		a := shortener.NewLegacyAllocator(&mockStore{getErr: errMock}, sequenceGenerator("abc123"))

		_, err := a.Allocate(context.Background(), testURL)

		assert.ErrorIs(t, err, errMock)
	})

	t.Run("propagates Add errors", func(t *testing.T) {
		a := shortener.NewLegacyAllocator(&mockStore{addErr: errMock}, sequenceGenerator("abc123"))

		_, err := a.Allocate(context.Background(), testURL)

		assert.ErrorIs(t, err, errMock)
	})
}
