package request

import (
	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/usecase/commands"
)

// StartFlashOfferRequest overrides stored values only for the fields present.
type StartFlashOfferRequest struct {
	MaxClaims       *int    `json:"maxClaims" binding:"omitempty,min=1"`
	DurationSeconds *int    `json:"durationSeconds" binding:"omitempty,min=1"`
	BannerText      *string `json:"bannerText" binding:"omitempty,max=200"`
}

func (r StartFlashOfferRequest) ToInput() commands.StartFlashOfferInput {
	return commands.StartFlashOfferInput{
		MaxClaims:       r.MaxClaims,
		DurationSeconds: r.DurationSeconds,
		BannerText:      r.BannerText,
	}
}

type UpdateCheckoutDiscountRequest struct {
	DiscountPercent *int `json:"discountPercent" binding:"required"`
}

type UpdateTimeChallengeRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	IsActive        *bool   `json:"isActive"`
	DurationSeconds *int    `json:"durationSeconds"`
	DiscountPercent *int    `json:"discountPercent"`
}

func (r UpdateTimeChallengeRequest) ToPatch() promotion.SettingsPatch {
	return promotion.SettingsPatch{
		Name:            r.Name,
		IsActive:        r.IsActive,
		DurationSeconds: r.DurationSeconds,
		DiscountPercent: r.DiscountPercent,
	}
}
