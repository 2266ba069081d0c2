package settings

import (
	"context"
	"strings"

	dom "example.com/iskina-storefront/internal/domain/settings"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*dom.SiteSettings, error) {
	return s.repo.Get(ctx)
}

// Update validates the clock strings before writing; a malformed window
// would otherwise silently close the store.
func (s *Service) Update(ctx context.Context, in *dom.SiteSettings) (*dom.SiteSettings, error) {
	if strings.TrimSpace(in.SiteName) == "" {
		existed, err := s.repo.Get(ctx)
		if err != nil {
			return nil, err
		}
		in.SiteName = existed.SiteName
	}
	if _, err := dom.ParseClock(in.OpeningTime); err != nil {
		return nil, err
	}
	if _, err := dom.ParseClock(in.ClosingTime); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, in)
}
