package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SiteSettings is the single store configuration record. Opening and closing
// times are wall-clock "HH:MM" strings with no timezone component.
type SiteSettings struct {
	SiteName            string
	SiteLogo            string
	OpeningTime         string
	ClosingTime         string
	IsTemporarilyClosed bool
}

var (
	ErrSettingsNotFound = errors.New("site settings not found")
	ErrInvalidClock     = errors.New("invalid HH:MM time")
)

// ParseClock converts an "HH:MM" wall-clock string to minutes since midnight.
func ParseClock(v string) (int, error) {
	h, m, ok := strings.Cut(v, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return hour*60 + minute, nil
}

type Repository interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Update(ctx context.Context, s *SiteSettings) (*SiteSettings, error)
}
