package converter

import (
	"mysterybox-storefront/internal/domain/promotion"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/pgconv"
)

func FlashOfferToDomain(row sqlc.FlashOffers) *promotion.FlashOffer {
	return promotion.ReconstructFlashOffer(
		row.IsActive,
		int(row.MaxClaims),
		int(row.ClaimedCount),
		int(row.DurationSeconds),
		pgconv.TimePtrFromPgtype(row.StartedAt),
		pgconv.TimePtrFromPgtype(row.EndsAt),
		row.BannerText,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func FlashOfferToStartParams(offer *promotion.FlashOffer) sqlc.StartFlashOfferParams {
	return sqlc.StartFlashOfferParams{
		MaxClaims:       int32(offer.MaxClaims()),
		DurationSeconds: int32(offer.DurationSeconds()),
		StartedAt:       pgconv.TimePtrToPgtype(offer.StartedAt()),
		EndsAt:          pgconv.TimePtrToPgtype(offer.EndsAt()),
		BannerText:      offer.BannerText(),
	}
}

func CheckoutDiscountToDomain(row sqlc.CheckoutDiscounts) *promotion.CheckoutDiscount {
	return promotion.ReconstructCheckoutDiscount(int(row.DiscountPercent), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func TimeChallengeSettingsToDomain(row sqlc.TimeChallengeSettings) *promotion.TimeChallengeSettings {
	return promotion.ReconstructTimeChallengeSettings(
		row.Name,
		row.IsActive,
		int(row.DurationSeconds),
		int(row.DiscountPercent),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func TimeChallengeSettingsToParams(s *promotion.TimeChallengeSettings) sqlc.UpdateTimeChallengeSettingsParams {
	return sqlc.UpdateTimeChallengeSettingsParams{
		Name:            s.Name(),
		IsActive:        s.IsActive(),
		DurationSeconds: int32(s.DurationSeconds()),
		DiscountPercent: int32(s.DiscountPercent()),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
