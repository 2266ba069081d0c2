package mysql

import (
	"context"
	"database/sql"

	domsettings "example.com/iskina-storefront/internal/domain/settings"
)

// SettingsRepository stores the single site configuration row.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domsettings.SiteSettings, error) {
	var s domsettings.SiteSettings
	err := r.db.QueryRowContext(ctx, `
        SELECT site_name, site_logo, opening_time, closing_time, is_temporarily_closed
        FROM site_settings
        WHERE id = 1
    `).Scan(&s.SiteName, &s.SiteLogo, &s.OpeningTime, &s.ClosingTime, &s.IsTemporarilyClosed)
	if err == sql.ErrNoRows {
		return nil, domsettings.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domsettings.SiteSettings) (*domsettings.SiteSettings, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO site_settings (id, site_name, site_logo, opening_time, closing_time, is_temporarily_closed)
        VALUES (1, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
            site_name = VALUES(site_name),
            site_logo = VALUES(site_logo),
            opening_time = VALUES(opening_time),
            closing_time = VALUES(closing_time),
            is_temporarily_closed = VALUES(is_temporarily_closed)
    `, s.SiteName, s.SiteLogo, s.OpeningTime, s.ClosingTime, s.IsTemporarilyClosed)
	if err != nil {
		return nil, err
	}
	return s, nil
}
