package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	domsettings "example.com/iskina-storefront/internal/domain/settings"
)

type Reason string

const (
	ReasonTemporarilyClosed Reason = "temporarily_closed"
	ReasonOutsideHours      Reason = "outside_hours"
)

// Status is the outcome of one availability check. OpensAt/ClosesAt carry the
// configured bounds formatted as a 12-hour clock for user-facing notices.
type Status struct {
	Open     bool
	Reason   Reason
	OpensAt  string
	ClosesAt string
}

var (
	ErrSettingsNotReady  = errors.New("site settings not loaded")
	ErrTemporarilyClosed = errors.New("store is temporarily closed")
	ErrClosed            = errors.New("store is closed")
)

// ClosedError is the outside-hours refusal, carrying the formatted operating
// bounds. It matches ErrClosed under errors.Is.
type ClosedError struct {
	OpensAt  string
	ClosesAt string
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("store is closed; operating hours are from %s to %s", e.OpensAt, e.ClosesAt)
}

func (e *ClosedError) Is(target error) bool {
	return target == ErrClosed
}

// Evaluate decides whether the store is open at the given instant. The
// manual temporary-closure flag wins over hours. A closing time numerically
// earlier than the opening time is an overnight window crossing midnight.
func Evaluate(now time.Time, s domsettings.SiteSettings) (Status, error) {
	openMin, err := domsettings.ParseClock(s.OpeningTime)
	if err != nil {
		return Status{}, err
	}
	closeMin, err := domsettings.ParseClock(s.ClosingTime)
	if err != nil {
		return Status{}, err
	}

	st := Status{
		OpensAt:  FormatClock(openMin),
		ClosesAt: FormatClock(closeMin),
	}

	if s.IsTemporarilyClosed {
		st.Reason = ReasonTemporarilyClosed
		return st, nil
	}

	cur := now.Hour()*60 + now.Minute()
	if closeMin < openMin {
		st.Open = cur >= openMin || cur <= closeMin
	} else {
		st.Open = cur >= openMin && cur <= closeMin
	}
	if !st.Open {
		st.Reason = ReasonOutsideHours
	}
	return st, nil
}

// FormatClock renders minutes since midnight as a 12-hour clock with
// minutes, e.g. 540 becomes "9:00 AM".
func FormatClock(minutes int) string {
	t := time.Date(2000, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

type Service struct {
	repo domsettings.Repository
	now  func() time.Time
}

// NewService wraps the settings provider. The clock is injected so checks
// stay deterministic in tests; nil defaults to time.Now.
func NewService(repo domsettings.Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Check evaluates availability against the current settings. It is evaluated
// fresh on every call; nothing is cached. Settings that cannot be loaded
// refuse the decision rather than guessing a default.
func (s *Service) Check(ctx context.Context) (Status, error) {
	conf, err := s.repo.Get(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrSettingsNotReady, err)
	}
	return Evaluate(s.now(), *conf)
}

// Gate returns nil when the store is open, or the matching refusal error.
func (s *Service) Gate(ctx context.Context) error {
	st, err := s.Check(ctx)
	if err != nil {
		return err
	}
	return st.Err()
}

// Err converts a closed status into its refusal error; nil when open.
func (st Status) Err() error {
	if st.Open {
		return nil
	}
	if st.Reason == ReasonTemporarilyClosed {
		return ErrTemporarilyClosed
	}
	return &ClosedError{OpensAt: st.OpensAt, ClosesAt: st.ClosesAt}
}
