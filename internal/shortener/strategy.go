package shortener

import (
	"context"
	"errors"
	"fmt"

	"github.com/serroba/url-shortener/internal/metrics"
)

// MaxAllocationAttempts bounds the generate-and-check cycles of one shorten request.
const MaxAllocationAttempts = 5

// AllocationMode selects how a free short code is claimed.
type AllocationMode string

const (
	// AllocationAtomic claims codes with a single check-and-insert.
	AllocationAtomic AllocationMode = "atomic"
	// AllocationLegacy checks occupancy and inserts in two separate steps.
	// Two concurrent requests may observe the same code as free and the
	// second insert silently replaces the first.
	AllocationLegacy AllocationMode = "legacy"
)

// ParseAllocationMode converts a configuration value into an AllocationMode.
func ParseAllocationMode(s string) (AllocationMode, error) {
	switch AllocationMode(s) {
	case AllocationAtomic, "":
		return AllocationAtomic, nil
	case AllocationLegacy:
		return AllocationLegacy, nil
	default:
		return "", fmt.Errorf("unknown allocation mode %q: must be 'atomic' or 'legacy'", s)
	}
}

// Allocator claims a short code for a URL and stores the entry.
type Allocator interface {
	Allocate(ctx context.Context, url string) (Code, error)
}

// NewAllocator returns the allocator for the given mode.
func NewAllocator(mode AllocationMode, store Store, generator CodeGenerator) (Allocator, error) {
	switch mode {
	case AllocationAtomic:
		return NewAtomicAllocator(store, generator), nil
	case AllocationLegacy:
		return NewLegacyAllocator(store, generator), nil
	default:
		return nil, fmt.Errorf("unknown allocation mode %q", mode)
	}
}

// AtomicAllocator inserts each candidate with AddIfAbsent.
type AtomicAllocator struct {
	store        Store
	generateCode CodeGenerator
}

// NewAtomicAllocator creates an allocator without a check-then-act window.
func NewAtomicAllocator(store Store, generator CodeGenerator) *AtomicAllocator {
	return &AtomicAllocator{
		store:        store,
		generateCode: generator,
	}
}

func (a *AtomicAllocator) Allocate(ctx context.Context, url string) (Code, error) {
	for range MaxAllocationAttempts {
		code := a.generateCode()

		inserted, err := a.store.AddIfAbsent(ctx, code, url)
		if err != nil {
			return "", err
		}

		if inserted {
			return code, nil
		}

		metrics.RecordCollision()
	}

	metrics.RecordAllocationFailure()

	return "", ErrAllocationFailed
}

// LegacyAllocator looks a candidate up with Get and commits it with Add.
type LegacyAllocator struct {
	store        Store
	generateCode CodeGenerator
}

// NewLegacyAllocator creates an allocator with the check-then-act behaviour.
func NewLegacyAllocator(store Store, generator CodeGenerator) *LegacyAllocator {
	return &LegacyAllocator{
		store:        store,
		generateCode: generator,
	}
}

func (a *LegacyAllocator) Allocate(ctx context.Context, url string) (Code, error) {
	for range MaxAllocationAttempts {
		code := a.generateCode()

		_, err := a.store.Get(ctx, code)
		if err == nil {
			metrics.RecordCollision()

			continue
		}

		if !errors.Is(err, ErrNotFound) {
			return "", err
		}

		if err = a.store.Add(ctx, code, url); err != nil {
			return "", err
		}

		return code, nil
	}

	metrics.RecordAllocationFailure()

	return "", ErrAllocationFailed
}
