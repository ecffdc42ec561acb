package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/url-shortener/internal/shortener"
)

var errMock = errors.New("mock error")

// failingStore returns err from every operation.
type failingStore struct {
	err error
}

func (f *failingStore) Add(context.Context, shortener.Code, string) error {
	return f.err
}

func (f *failingStore) AddIfAbsent(context.Context, shortener.Code, string) (bool, error) {
	return false, f.err
}

func (f *failingStore) Get(context.Context, shortener.Code) (*shortener.Entry, error) {
	return nil, f.err
}

func (f *failingStore) IncrementClick(context.Context, shortener.Code) (bool, error) {
	return false, f.err
}

func (f *failingStore) GetStats(context.Context, shortener.Code) (*shortener.Stats, error) {
	return nil, f.err
}
