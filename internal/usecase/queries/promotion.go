package queries

import (
	"context"
	"log/slog"

	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/errs"
)

var ErrTimeChallengeNotConfigured = errs.New("time challenge is not configured")

type PromotionReadStore interface {
	State(ctx context.Context) (*PromotionState, error)
}

// PromotionSnapshotCache holds the raw promotion state between writes.
// Implementations swallow their own failures: a cache miss falls back to the database.
type PromotionSnapshotCache interface {
	Get(ctx context.Context) (*PromotionState, bool)
	Set(ctx context.Context, state *PromotionState)
	Invalidate(ctx context.Context)
}

type PromotionQueries interface {
	// GetFlashOffer returns nil when no offer row exists.
	GetFlashOffer(ctx context.Context) (*FlashOfferView, error)
	GetCheckoutDiscount(ctx context.Context) (*CheckoutDiscountView, error)
	GetTimeChallengeSettings(ctx context.Context) (*TimeChallengeSettingsView, error)
	GetSnapshot(ctx context.Context) (*PromotionSnapshotView, error)
	State(ctx context.Context) (*PromotionState, error)
}

type promotionQueriesImpl struct {
	store PromotionReadStore
	cache PromotionSnapshotCache
	clock clock.Clock
}

func NewPromotionQueries(store PromotionReadStore, cache PromotionSnapshotCache, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{
		store: store,
		cache: cache,
		clock: clk,
	}
}

// State is cache-aside; derived flags are never cached, only the stored records.
func (q *promotionQueriesImpl) State(ctx context.Context) (*PromotionState, error) {
	if state, ok := q.cache.Get(ctx); ok {
		return state, nil
	}

	state, err := q.store.State(ctx)
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, state)
	return state, nil
}

func (q *promotionQueriesImpl) GetFlashOffer(ctx context.Context) (*FlashOfferView, error) {
	state, err := q.State(ctx)
	if err != nil {
		return nil, err
	}
	return NewFlashOfferView(state.FlashOffer, q.clock.Now()), nil
}

func (q *promotionQueriesImpl) GetCheckoutDiscount(ctx context.Context) (*CheckoutDiscountView, error) {
	state, err := q.State(ctx)
	if err != nil {
		return nil, err
	}
	if state.CheckoutDiscount == nil {
		slog.Warn("checkout discount row missing, reporting zero")
		return &CheckoutDiscountView{}, nil
	}
	return NewCheckoutDiscountView(state.CheckoutDiscount), nil
}

func (q *promotionQueriesImpl) GetTimeChallengeSettings(ctx context.Context) (*TimeChallengeSettingsView, error) {
	state, err := q.State(ctx)
	if err != nil {
		return nil, err
	}
	if state.TimeChallenge == nil {
		return nil, ErrTimeChallengeNotConfigured
	}
	return NewTimeChallengeSettingsView(state.TimeChallenge), nil
}

func (q *promotionQueriesImpl) GetSnapshot(ctx context.Context) (*PromotionSnapshotView, error) {
	state, err := q.State(ctx)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	return &PromotionSnapshotView{
		FlashOffer:       NewFlashOfferView(state.FlashOffer, now),
		CheckoutDiscount: NewCheckoutDiscountView(state.CheckoutDiscount),
		TimeChallenge:    NewTimeChallengeSettingsView(state.TimeChallenge),
		ServerTime:       now,
	}, nil
}
