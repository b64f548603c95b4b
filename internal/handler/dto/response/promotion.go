package response

import (
	"time"

	"mysterybox-storefront/internal/usecase/queries"
)

type FlashOfferResponse struct {
	IsActive            bool       `json:"isActive"`
	MaxClaims           int        `json:"maxClaims"`
	ClaimedCount        int        `json:"claimedCount"`
	DurationSeconds     int        `json:"durationSeconds"`
	StartedAt           *time.Time `json:"startedAt"`
	EndsAt              *time.Time `json:"endsAt"`
	BannerText          string     `json:"bannerText"`
	IsEffectivelyActive bool       `json:"isEffectivelyActive"`
	RemainingSeconds    int        `json:"remainingSeconds"`
	RemainingClaims     int        `json:"remainingClaims"`
	ServerTime          time.Time  `json:"serverTime"`
}

type CheckoutDiscountResponse struct {
	DiscountPercent int       `json:"discountPercent"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TimeChallengeResponse struct {
	Name            string    `json:"name"`
	IsActive        bool      `json:"isActive"`
	DurationSeconds int       `json:"durationSeconds"`
	DiscountPercent int       `json:"discountPercent"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type PromotionsResponse struct {
	FlashOffer       *FlashOfferResponse       `json:"flashOffer"`
	CheckoutDiscount *CheckoutDiscountResponse `json:"checkoutDiscount"`
	TimeChallenge    *TimeChallengeResponse    `json:"timeChallenge"`
	ServerTime       time.Time                 `json:"serverTime"`
}

// FromFlashOfferView keeps a missing offer as JSON null.
func FromFlashOfferView(v *queries.FlashOfferView) *FlashOfferResponse {
	if v == nil {
		return nil
	}
	return copyView[FlashOfferResponse](v)
}

func FromCheckoutDiscountView(v *queries.CheckoutDiscountView) *CheckoutDiscountResponse {
	if v == nil {
		return nil
	}
	return copyView[CheckoutDiscountResponse](v)
}

func FromTimeChallengeView(v *queries.TimeChallengeSettingsView) *TimeChallengeResponse {
	if v == nil {
		return nil
	}
	return copyView[TimeChallengeResponse](v)
}

func FromSnapshotView(v *queries.PromotionSnapshotView) *PromotionsResponse {
	return &PromotionsResponse{
		FlashOffer:       FromFlashOfferView(v.FlashOffer),
		CheckoutDiscount: FromCheckoutDiscountView(v.CheckoutDiscount),
		TimeChallenge:    FromTimeChallengeView(v.TimeChallenge),
		ServerTime:       v.ServerTime,
	}
}
