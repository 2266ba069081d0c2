package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domsettings "example.com/iskina-storefront/internal/domain/settings"
)

// SettingsRepository stores the single site configuration row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domsettings.SiteSettings, error) {
	var s domsettings.SiteSettings
	err := r.pool.QueryRow(ctx, `
        SELECT site_name, site_logo, opening_time, closing_time, is_temporarily_closed
        FROM site_settings
        WHERE id = 1
    `).Scan(&s.SiteName, &s.SiteLogo, &s.OpeningTime, &s.ClosingTime, &s.IsTemporarilyClosed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domsettings.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domsettings.SiteSettings) (*domsettings.SiteSettings, error) {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO site_settings (id, site_name, site_logo, opening_time, closing_time, is_temporarily_closed)
        VALUES (1, $1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE SET
            site_name = EXCLUDED.site_name,
            site_logo = EXCLUDED.site_logo,
            opening_time = EXCLUDED.opening_time,
            closing_time = EXCLUDED.closing_time,
            is_temporarily_closed = EXCLUDED.is_temporarily_closed
    `, s.SiteName, s.SiteLogo, s.OpeningTime, s.ClosingTime, s.IsTemporarilyClosed)
	if err != nil {
		return nil, err
	}
	return s, nil
}
