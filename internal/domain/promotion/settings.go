package promotion

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
	ErrEmptyChallengeName     = errors.New("challenge name is required")
)

func ValidatePercent(pct int) error {
	if pct < 0 || pct > 100 {
		return ErrInvalidDiscountPercent
	}
	return nil
}

// CheckoutDiscount is the standing global percentage applied while positive.
type CheckoutDiscount struct {
	discountPercent int
	updatedAt       time.Time
}

func NewCheckoutDiscount(pct int, now time.Time) (*CheckoutDiscount, error) {
	if err := ValidatePercent(pct); err != nil {
		return nil, err
	}
	return &CheckoutDiscount{discountPercent: pct, updatedAt: now}, nil
}

func ReconstructCheckoutDiscount(pct int, updatedAt time.Time) *CheckoutDiscount {
	return &CheckoutDiscount{discountPercent: pct, updatedAt: updatedAt}
}

func (d *CheckoutDiscount) DiscountPercent() int { return d.discountPercent }
func (d *CheckoutDiscount) UpdatedAt() time.Time { return d.updatedAt }

func (d *CheckoutDiscount) Applies() bool {
	return d != nil && d.discountPercent > 0
}

// TimeChallengeSettings configures client-side time challenge runs.
// IsActive toggles availability; it never represents a running challenge.
type TimeChallengeSettings struct {
	name            string
	isActive        bool
	durationSeconds int
	discountPercent int
	updatedAt       time.Time
}

func ReconstructTimeChallengeSettings(name string, isActive bool, durationSeconds, discountPercent int, updatedAt time.Time) *TimeChallengeSettings {
	return &TimeChallengeSettings{
		name:            name,
		isActive:        isActive,
		durationSeconds: durationSeconds,
		discountPercent: discountPercent,
		updatedAt:       updatedAt,
	}
}

type SettingsPatch struct {
	Name            *string
	IsActive        *bool
	DurationSeconds *int
	DiscountPercent *int
}

// Apply merges the patch and validates the result. The receiver is untouched on error.
func (s *TimeChallengeSettings) Apply(p SettingsPatch, now time.Time) error {
	next := *s
	if p.Name != nil {
		next.name = strings.TrimSpace(*p.Name)
	}
	if p.IsActive != nil {
		next.isActive = *p.IsActive
	}
	if p.DurationSeconds != nil {
		next.durationSeconds = *p.DurationSeconds
	}
	if p.DiscountPercent != nil {
		next.discountPercent = *p.DiscountPercent
	}

	if next.name == "" {
		return ErrEmptyChallengeName
	}
	if next.durationSeconds <= 0 {
		return ErrInvalidDuration
	}
	if err := ValidatePercent(next.discountPercent); err != nil {
		return err
	}
	next.updatedAt = now
	*s = next
	return nil
}

func (s *TimeChallengeSettings) Name() string         { return s.name }
func (s *TimeChallengeSettings) IsActive() bool       { return s.isActive }
func (s *TimeChallengeSettings) DurationSeconds() int { return s.durationSeconds }
func (s *TimeChallengeSettings) DiscountPercent() int { return s.discountPercent }
func (s *TimeChallengeSettings) UpdatedAt() time.Time { return s.updatedAt }
