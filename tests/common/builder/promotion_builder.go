//go:build unit || e2e

package builder

import (
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	reqdto "mysterybox-storefront/internal/handler/dto/request"
)

type FlashOfferBuilder struct {
	IsActive        bool
	MaxClaims       int
	ClaimedCount    int
	DurationSeconds int
	StartedAt       time.Time
	BannerText      string
}

// NewFlashOfferBuilder returns an active offer with 50 free claims that started at startedAt.
func NewFlashOfferBuilder(startedAt time.Time) *FlashOfferBuilder {
	return &FlashOfferBuilder{
		IsActive:        true,
		MaxClaims:       50,
		DurationSeconds: 600,
		StartedAt:       startedAt,
		BannerText:      "First 200 free",
	}
}

func (b *FlashOfferBuilder) With(mutate func(*FlashOfferBuilder)) *FlashOfferBuilder {
	mutate(b)
	return b
}

func (b *FlashOfferBuilder) WithClaims(maxClaims, claimed int) *FlashOfferBuilder {
	b.MaxClaims = maxClaims
	b.ClaimedCount = claimed
	return b
}

func (b *FlashOfferBuilder) WithDuration(seconds int) *FlashOfferBuilder {
	b.DurationSeconds = seconds
	return b
}

func (b *FlashOfferBuilder) AsStopped() *FlashOfferBuilder {
	b.IsActive = false
	return b
}

func (b *FlashOfferBuilder) BuildDomain() *promotion.FlashOffer {
	if !b.IsActive && b.StartedAt.IsZero() {
		return promotion.ReconstructFlashOffer(false, b.MaxClaims, b.ClaimedCount, b.DurationSeconds, nil, nil, b.BannerText, b.StartedAt)
	}
	started := b.StartedAt
	ends := started.Add(time.Duration(b.DurationSeconds) * time.Second)
	return promotion.ReconstructFlashOffer(b.IsActive, b.MaxClaims, b.ClaimedCount, b.DurationSeconds, &started, &ends, b.BannerText, started)
}

func (b *FlashOfferBuilder) BuildStartDTO() reqdto.StartFlashOfferRequest {
	maxClaims, duration, banner := b.MaxClaims, b.DurationSeconds, b.BannerText
	return reqdto.StartFlashOfferRequest{
		MaxClaims:       &maxClaims,
		DurationSeconds: &duration,
		BannerText:      &banner,
	}
}

type TimeChallengeBuilder struct {
	Name            string
	IsActive        bool
	DurationSeconds int
	DiscountPercent int
}

func NewTimeChallengeBuilder() *TimeChallengeBuilder {
	return &TimeChallengeBuilder{
		Name:            "Beat the clock",
		IsActive:        true,
		DurationSeconds: 60,
		DiscountPercent: 30,
	}
}

func (b *TimeChallengeBuilder) AsInactive() *TimeChallengeBuilder {
	b.IsActive = false
	return b
}

func (b *TimeChallengeBuilder) BuildDomain(updatedAt time.Time) *promotion.TimeChallengeSettings {
	return promotion.ReconstructTimeChallengeSettings(b.Name, b.IsActive, b.DurationSeconds, b.DiscountPercent, updatedAt)
}

func (b *TimeChallengeBuilder) BuildPatchDTO() reqdto.UpdateTimeChallengeRequest {
	name, active, duration, pct := b.Name, b.IsActive, b.DurationSeconds, b.DiscountPercent
	return reqdto.UpdateTimeChallengeRequest{
		Name:            &name,
		IsActive:        &active,
		DurationSeconds: &duration,
		DiscountPercent: &pct,
	}
}
