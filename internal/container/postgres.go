package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
	analyticsstore "github.com/serroba/url-shortener/internal/analytics/store"
)

const postgresConnectTimeout = 10 * time.Second

// PostgresPackage provides the Postgres analytics sink.
func PostgresPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*analyticsstore.Postgres, error) {
		opts := do.MustInvoke[*Options](i)

		ctx, cancel := context.WithTimeout(context.Background(), postgresConnectTimeout)
		defer cancel()

		pool, err := pgxpool.New(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		sink := analyticsstore.NewPostgres(pool)

		if err = sink.EnsureSchema(ctx); err != nil {
			pool.Close()

			return nil, fmt.Errorf("ensure analytics schema: %w", err)
		}

		return sink, nil
	})
}
