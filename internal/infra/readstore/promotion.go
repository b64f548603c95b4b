package readstore

import (
	"context"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/infra/converter"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/usecase/queries"
)

type PromotionReadQueries interface {
	GetFlashOffer(ctx context.Context, db sqlc.DBTX) (sqlc.FlashOffers, error)
	GetFlashOfferForUpdate(ctx context.Context, db sqlc.DBTX) (sqlc.FlashOffers, error)
	GetCheckoutDiscount(ctx context.Context, db sqlc.DBTX) (sqlc.CheckoutDiscounts, error)
	GetTimeChallengeSettings(ctx context.Context, db sqlc.DBTX) (sqlc.TimeChallengeSettings, error)
	GetTimeChallengeSettingsForUpdate(ctx context.Context, db sqlc.DBTX) (sqlc.TimeChallengeSettings, error)
}

// PromotionReadStore reads the singleton promotion rows. The ForUpdate variants only make sense on a tx-bound store.
type PromotionReadStore struct {
	queries PromotionReadQueries
	db      sqlc.DBTX
}

func NewPromotionReadStore(queries PromotionReadQueries, db sqlc.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *PromotionReadStore) FlashOffer(ctx context.Context) (*promotion.FlashOffer, error) {
	row, err := s.queries.GetFlashOffer(ctx, s.db)
	if err != nil {
		return nil, infra.WrapLookupErr("flash offer", err)
	}
	return converter.FlashOfferToDomain(row), nil
}

func (s *PromotionReadStore) FlashOfferForUpdate(ctx context.Context) (*promotion.FlashOffer, error) {
	row, err := s.queries.GetFlashOfferForUpdate(ctx, s.db)
	if err != nil {
		return nil, infra.WrapLookupErr("flash offer", err)
	}
	return converter.FlashOfferToDomain(row), nil
}

func (s *PromotionReadStore) CheckoutDiscount(ctx context.Context) (*promotion.CheckoutDiscount, error) {
	row, err := s.queries.GetCheckoutDiscount(ctx, s.db)
	if err != nil {
		return nil, infra.WrapLookupErr("checkout discount", err)
	}
	return converter.CheckoutDiscountToDomain(row), nil
}

func (s *PromotionReadStore) TimeChallengeSettings(ctx context.Context) (*promotion.TimeChallengeSettings, error) {
	row, err := s.queries.GetTimeChallengeSettings(ctx, s.db)
	if err != nil {
		return nil, infra.WrapLookupErr("time challenge settings", err)
	}
	return converter.TimeChallengeSettingsToDomain(row), nil
}

func (s *PromotionReadStore) TimeChallengeSettingsForUpdate(ctx context.Context) (*promotion.TimeChallengeSettings, error) {
	row, err := s.queries.GetTimeChallengeSettingsForUpdate(ctx, s.db)
	if err != nil {
		return nil, infra.WrapLookupErr("time challenge settings", err)
	}
	return converter.TimeChallengeSettingsToDomain(row), nil
}

// State loads all three records. A missing row leaves its field nil instead of failing the snapshot.
func (s *PromotionReadStore) State(ctx context.Context) (*queries.PromotionState, error) {
	state := &queries.PromotionState{}

	offer, err := s.FlashOffer(ctx)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	state.FlashOffer = offer

	discount, err := s.CheckoutDiscount(ctx)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	state.CheckoutDiscount = discount

	settings, err := s.TimeChallengeSettings(ctx)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	state.TimeChallenge = settings

	return state, nil
}
