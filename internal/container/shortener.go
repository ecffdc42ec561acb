package container

import (
	"github.com/samber/do"
	"github.com/serroba/url-shortener/internal/shortener"
	"github.com/serroba/url-shortener/internal/store"
)

// ShortenerPackage provides the in-memory URL store and the shortener service.
func ShortenerPackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})

	do.Provide(i, func(i *do.Injector) (shortener.AllocationMode, error) {
		return shortener.ParseAllocationMode(do.MustInvoke[*Options](i).Allocation)
	})

	do.Provide(i, func(i *do.Injector) (*shortener.Service, error) {
		opts := do.MustInvoke[*Options](i)
		urlStore := do.MustInvoke[*store.MemoryStore](i)

		mode, err := do.Invoke[shortener.AllocationMode](i)
		if err != nil {
			return nil, err
		}

		generator, err := shortener.NewCodeGenerator(opts.CodeLength)
		if err != nil {
			return nil, err
		}

		allocator, err := shortener.NewAllocator(mode, urlStore, generator)
		if err != nil {
			return nil, err
		}

		return shortener.NewService(urlStore, allocator), nil
	})
}
