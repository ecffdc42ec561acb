package shortener_test

import (
	"context"
	"errors"

	"github.com/serroba/url-shortener/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://www.example.com/abc"

// mockStore is a test double for shortener.Store that can be configured to fail.
type mockStore struct {
	addErr         error
	addIfAbsentErr error
	getErr         error
	incrementErr   error
	incrementFound bool
	entry          *shortener.Entry
	added          []shortener.Code
}

func (m *mockStore) Add(_ context.Context, code shortener.Code, _ string) error {
	if m.addErr != nil {
		return m.addErr
	}

	m.added = append(m.added, code)

	return nil
}

func (m *mockStore) AddIfAbsent(_ context.Context, code shortener.Code, _ string) (bool, error) {
	if m.addIfAbsentErr != nil {
		return false, m.addIfAbsentErr
	}

	m.added = append(m.added, code)

	return true, nil
}

func (m *mockStore) Get(_ context.Context, _ shortener.Code) (*shortener.Entry, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	if m.entry == nil {
		return nil, shortener.ErrNotFound
	}

	return m.entry, nil
}

func (m *mockStore) IncrementClick(_ context.Context, _ shortener.Code) (bool, error) {
	return m.incrementFound, m.incrementErr
}

func (m *mockStore) GetStats(_ context.Context, _ shortener.Code) (*shortener.Stats, error) {
	return nil, shortener.ErrNotFound
}

// fixedGenerator always returns the same code and counts calls.
func fixedGenerator(code shortener.Code, calls *int) shortener.CodeGenerator {
	return func() shortener.Code {
		*calls++

		return code
	}
}

// sequenceGenerator returns the given codes in order, repeating the last one.
func sequenceGenerator(codes ...shortener.Code) shortener.CodeGenerator {
	i := 0

	return func() shortener.Code {
		code := codes[min(i, len(codes)-1)]
		i++

		return code
	}
}
