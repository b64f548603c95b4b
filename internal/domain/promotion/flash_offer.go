package promotion

import (
	"errors"
	"time"

	"mysterybox-storefront/internal/pkg/countdown"
)

var (
	ErrFlashOfferInactive  = errors.New("flash offer is not active")
	ErrFlashOfferExpired   = errors.New("flash offer has expired")
	ErrFlashOfferExhausted = errors.New("flash offer has no claims left")
	ErrInvalidMaxClaims    = errors.New("max claims must be positive")
	ErrInvalidDuration     = errors.New("duration must be positive")
)

// FlashOffer is the single global capacity- and time-limited window.
// Expiry and exhaustion are derived from endsAt and claimedCount; only stop clears isActive.
type FlashOffer struct {
	isActive        bool
	maxClaims       int
	claimedCount    int
	durationSeconds int
	startedAt       *time.Time
	endsAt          *time.Time
	bannerText      string
	updatedAt       time.Time
}

func ReconstructFlashOffer(
	isActive bool,
	maxClaims, claimedCount, durationSeconds int,
	startedAt, endsAt *time.Time,
	bannerText string,
	updatedAt time.Time,
) *FlashOffer {
	return &FlashOffer{
		isActive:        isActive,
		maxClaims:       maxClaims,
		claimedCount:    claimedCount,
		durationSeconds: durationSeconds,
		startedAt:       startedAt,
		endsAt:          endsAt,
		bannerText:      bannerText,
		updatedAt:       updatedAt,
	}
}

// Start opens a fresh window at now and resets the claim counter.
func (f *FlashOffer) Start(now time.Time, maxClaims, durationSeconds int, bannerText string) error {
	if maxClaims <= 0 {
		return ErrInvalidMaxClaims
	}
	if durationSeconds <= 0 {
		return ErrInvalidDuration
	}
	started := now
	ends := now.Add(time.Duration(durationSeconds) * time.Second)

	f.isActive = true
	f.maxClaims = maxClaims
	f.claimedCount = 0
	f.durationSeconds = durationSeconds
	f.startedAt = &started
	f.endsAt = &ends
	f.bannerText = bannerText
	f.updatedAt = now
	return nil
}

func (f *FlashOffer) Stop(now time.Time) {
	f.isActive = false
	f.updatedAt = now
}

// IsEffectivelyActive = isActive AND now < endsAt AND claimedCount < maxClaims.
func (f *FlashOffer) IsEffectivelyActive(now time.Time) bool {
	return f.ClaimBlocker(now) == nil
}

// ClaimBlocker returns the reason a claim at now would be rejected, or nil.
func (f *FlashOffer) ClaimBlocker(now time.Time) error {
	if f == nil || !f.isActive || f.endsAt == nil {
		return ErrFlashOfferInactive
	}
	if !now.Before(*f.endsAt) {
		return ErrFlashOfferExpired
	}
	if f.claimedCount >= f.maxClaims {
		return ErrFlashOfferExhausted
	}
	return nil
}

func (f *FlashOffer) RemainingSeconds(now time.Time) int {
	if f == nil || f.endsAt == nil {
		return 0
	}
	return countdown.Remaining(*f.endsAt, now)
}

func (f *FlashOffer) RemainingClaims() int {
	if f.claimedCount >= f.maxClaims {
		return 0
	}
	return f.maxClaims - f.claimedCount
}

func (f *FlashOffer) IsActive() bool        { return f.isActive }
func (f *FlashOffer) MaxClaims() int        { return f.maxClaims }
func (f *FlashOffer) ClaimedCount() int     { return f.claimedCount }
func (f *FlashOffer) DurationSeconds() int  { return f.durationSeconds }
func (f *FlashOffer) StartedAt() *time.Time { return f.startedAt }
func (f *FlashOffer) EndsAt() *time.Time    { return f.endsAt }
func (f *FlashOffer) BannerText() string    { return f.bannerText }
func (f *FlashOffer) UpdatedAt() time.Time  { return f.updatedAt }
