package shortener

import (
	"context"
	"strings"
)

// Service validates, allocates and resolves short codes on top of a Store.
type Service struct {
	store     Store
	allocator Allocator
}

// NewService creates a service that allocates codes with the given allocator.
func NewService(store Store, allocator Allocator) *Service {
	return &Service{
		store:     store,
		allocator: allocator,
	}
}

// Shorten validates rawURL and stores it under a newly allocated code.
// Surrounding whitespace is dropped before validation and storage.
func (s *Service) Shorten(ctx context.Context, rawURL string) (Code, error) {
	rawURL = strings.TrimSpace(rawURL)

	if !IsValidURL(rawURL) {
		return "", ErrInvalidURL
	}

	return s.allocator.Allocate(ctx, rawURL)
}

// Resolve returns the original URL for code and counts the click.
func (s *Service) Resolve(ctx context.Context, code Code) (string, error) {
	entry, err := s.store.Get(ctx, code)
	if err != nil {
		return "", err
	}

	found, err := s.store.IncrementClick(ctx, code)
	if err != nil {
		return "", err
	}

	if !found {
		return "", ErrNotFound
	}

	return entry.URL, nil
}

// Stats returns the click statistics for code.
func (s *Service) Stats(ctx context.Context, code Code) (*Stats, error) {
	return s.store.GetStats(ctx, code)
}
