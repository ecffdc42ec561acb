package shortener

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no entry exists for a short code.
	ErrNotFound = errors.New("short code not found")
	// ErrInvalidURL is returned for URLs that are not absolute http/https URLs with a host.
	ErrInvalidURL = errors.New("invalid url")
	// ErrAllocationFailed is returned when every allocation attempt collided.
	ErrAllocationFailed = errors.New("could not allocate a unique short code")
)

// Code represents a short URL code.
type Code string

// Entry is the stored record for one shortened URL.
// URL and CreatedAt never change after creation; Clicks only grows.
type Entry struct {
	URL       string
	CreatedAt time.Time
	Clicks    int64
}

// Stats is a read-only projection of an Entry.
type Stats struct {
	URL       string
	Clicks    int64
	CreatedAt time.Time
}

// Store is the authoritative keeper of shortened URL state.
// Every method must appear atomic to concurrent callers.
type Store interface {
	// Add inserts a fresh entry, silently replacing any existing one.
	Add(ctx context.Context, code Code, url string) error

	// AddIfAbsent inserts a fresh entry only if code is unused.
	// It reports whether the entry was inserted.
	AddIfAbsent(ctx context.Context, code Code, url string) (bool, error)

	// Get returns a copy of the entry or ErrNotFound.
	Get(ctx context.Context, code Code) (*Entry, error)

	// IncrementClick adds one click and reports whether the code existed.
	IncrementClick(ctx context.Context, code Code) (bool, error)

	// GetStats returns the stats projection or ErrNotFound.
	GetStats(ctx context.Context, code Code) (*Stats, error)
}
