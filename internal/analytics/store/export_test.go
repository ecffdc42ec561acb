package store

import "context"

// ClickCount returns the number of recorded clicks for code.
func (p *Postgres) ClickCount(ctx context.Context, code string) (int64, error) {
	var count int64

	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM url_clicked_events WHERE code = $1`, code).Scan(&count)

	return count, err
}
