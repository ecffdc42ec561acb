package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do"
	"github.com/serroba/url-shortener/internal/analytics"
	"github.com/serroba/url-shortener/internal/handlers"
	"github.com/serroba/url-shortener/internal/health"
	"github.com/serroba/url-shortener/internal/middleware"
	"github.com/serroba/url-shortener/internal/shortener"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the huma API with every route registered.
func HTTPPackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*chi.Mux, error) {
		router := chi.NewMux()
		router.Handle("/metrics", promhttp.Handler())

		return router, nil
	})

	do.Provide(i, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)

		huma.NewError = handlers.NewError

		config := huma.DefaultConfig("URL Shortener", "1.0.0")
		// Response bodies carry no $schema link.
		config.CreateHooks = nil

		api := humachi.New(router, config)
		api.UseMiddleware(
			middleware.RequestMeta(api),
			middleware.AccessLog(logger),
			middleware.Recover(api, logger),
		)

		var checkers map[string]health.Checker
		if opts.RedisAddr != "" {
			checkers = map[string]health.Checker{
				"redis": health.NewRedisChecker(do.MustInvoke[*RedisClient](i).Client),
			}
		}

		health.RegisterRoutes(api, health.NewHandler(checkers))

		urlHandler := handlers.NewURLHandler(
			do.MustInvoke[*shortener.Service](i),
			opts.ShortURLBase(),
			do.MustInvoke[shortener.AllocationMode](i),
			do.MustInvoke[analytics.Publishers](i),
			logger,
		)
		handlers.RegisterRoutes(api, urlHandler)

		return api, nil
	})
}
