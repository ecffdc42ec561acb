package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/url-shortener/internal/analytics"
)

const schema = `
CREATE TABLE IF NOT EXISTS url_shortened_events (
	id              BIGSERIAL PRIMARY KEY,
	code            TEXT        NOT NULL,
	url             TEXT        NOT NULL,
	allocation_mode TEXT        NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	client_ip       TEXT,
	user_agent      TEXT,
	request_id      TEXT
);

CREATE TABLE IF NOT EXISTS url_clicked_events (
	id         BIGSERIAL PRIMARY KEY,
	code       TEXT        NOT NULL,
	clicked_at TIMESTAMPTZ NOT NULL,
	client_ip  TEXT,
	user_agent TEXT,
	referrer   TEXT,
	request_id TEXT
);

CREATE INDEX IF NOT EXISTS url_clicked_events_code_idx ON url_clicked_events (code);
`

// Postgres is an append-only analytics.Store backed by PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a PostgreSQL analytics store on an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema creates the event tables if they do not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create analytics schema: %w", err)
	}

	return nil
}

func (p *Postgres) SaveURLShortened(ctx context.Context, event *analytics.URLShortenedEvent) error {
	query := `
		INSERT INTO url_shortened_events (code, url, allocation_mode, created_at, client_ip, user_agent, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		event.Code,
		event.URL,
		event.AllocationMode,
		event.CreatedAt,
		nullable(event.ClientIP),
		nullable(event.UserAgent),
		nullable(event.RequestID),
	)

	return err
}

func (p *Postgres) SaveURLClicked(ctx context.Context, event *analytics.URLClickedEvent) error {
	query := `
		INSERT INTO url_clicked_events (code, clicked_at, client_ip, user_agent, referrer, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		event.Code,
		event.ClickedAt,
		nullable(event.ClientIP),
		nullable(event.UserAgent),
		nullable(event.Referrer),
		nullable(event.RequestID),
	)

	return err
}

// Shutdown closes the connection pool.
func (p *Postgres) Shutdown() error {
	p.pool.Close()

	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

var _ analytics.Store = (*Postgres)(nil)
