package repository

import (
	"context"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/infra/converter"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionWriteQueries interface {
	StartFlashOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.StartFlashOfferParams) (sqlc.FlashOffers, error)
	StopFlashOffer(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (sqlc.FlashOffers, error)
	ClaimFlashOffer(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (sqlc.FlashOffers, error)
	UpdateCheckoutDiscount(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCheckoutDiscountParams) (sqlc.CheckoutDiscounts, error)
	UpdateTimeChallengeSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTimeChallengeSettingsParams) (sqlc.TimeChallengeSettings, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
}

func NewPromotionRepository(queries PromotionWriteQueries) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
	}
}

func (r *PromotionRepository) StartFlashOffer(ctx context.Context, tx sqlc.DBTX, offer *promotion.FlashOffer) (*promotion.FlashOffer, error) {
	row, err := r.queries.StartFlashOffer(ctx, tx, converter.FlashOfferToStartParams(offer))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flash offer row missing", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to start flash offer", err)
	}
	return converter.FlashOfferToDomain(row), nil
}

// StopFlashOffer only flips is_active so a concurrent claim keeps its increment.
func (r *PromotionRepository) StopFlashOffer(ctx context.Context, tx sqlc.DBTX, now time.Time) (*promotion.FlashOffer, error) {
	row, err := r.queries.StopFlashOffer(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flash offer row missing", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to stop flash offer", err)
	}
	return converter.FlashOfferToDomain(row), nil
}

func (r *PromotionRepository) ClaimFlashOffer(ctx context.Context, tx sqlc.DBTX, now time.Time) (*promotion.FlashOffer, bool, error) {
	row, err := r.queries.ClaimFlashOffer(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to claim flash offer", err)
	}
	return converter.FlashOfferToDomain(row), true, nil
}

func (r *PromotionRepository) UpdateCheckoutDiscount(ctx context.Context, tx sqlc.DBTX, d *promotion.CheckoutDiscount) (*promotion.CheckoutDiscount, error) {
	row, err := r.queries.UpdateCheckoutDiscount(ctx, tx, sqlc.UpdateCheckoutDiscountParams{
		DiscountPercent: int32(d.DiscountPercent()),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout discount row missing", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update checkout discount", err)
	}
	return converter.CheckoutDiscountToDomain(row), nil
}

func (r *PromotionRepository) UpdateTimeChallengeSettings(ctx context.Context, tx sqlc.DBTX, s *promotion.TimeChallengeSettings) (*promotion.TimeChallengeSettings, error) {
	row, err := r.queries.UpdateTimeChallengeSettings(ctx, tx, converter.TimeChallengeSettingsToParams(s))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time challenge settings row missing", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update time challenge settings", err)
	}
	return converter.TimeChallengeSettingsToDomain(row), nil
}
