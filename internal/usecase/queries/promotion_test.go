//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/tests/common/builder"
	queriesmock "mysterybox-storefront/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func activeOffer(maxClaims, claimed int) *promotion.FlashOffer {
	return builder.NewFlashOfferBuilder(baseTime).WithClaims(maxClaims, claimed).BuildDomain()
}

func fullState() *queries.PromotionState {
	return &queries.PromotionState{
		FlashOffer:       activeOffer(5, 1),
		CheckoutDiscount: promotion.ReconstructCheckoutDiscount(10, baseTime),
		TimeChallenge:    promotion.ReconstructTimeChallengeSettings("Beat the clock", true, 60, 30, baseTime),
	}
}

func TestPromotionQueries_State(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		cache := queriesmock.NewMockPromotionSnapshotCache(ctrl)
		state := fullState()

		cache.EXPECT().Get(ctx).Return(state, true)

		got, err := queries.NewPromotionQueries(store, cache, clock.NewMockClock(baseTime)).State(ctx)
		require.NoError(t, err)
		assert.Same(t, state, got)
	})

	t.Run("cache miss loads and fills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		cache := queriesmock.NewMockPromotionSnapshotCache(ctrl)
		state := fullState()

		gomock.InOrder(
			cache.EXPECT().Get(ctx).Return(nil, false),
			store.EXPECT().State(ctx).Return(state, nil),
			cache.EXPECT().Set(ctx, state),
		)

		got, err := queries.NewPromotionQueries(store, cache, clock.NewMockClock(baseTime)).State(ctx)
		require.NoError(t, err)
		assert.Same(t, state, got)
	})

	t.Run("store failure is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		cache := queriesmock.NewMockPromotionSnapshotCache(ctrl)

		cache.EXPECT().Get(ctx).Return(nil, false)
		store.EXPECT().State(ctx).Return(nil, assert.AnError)

		_, err := queries.NewPromotionQueries(store, cache, clock.NewMockClock(baseTime)).State(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPromotionQueries_GetFlashOffer(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		offer         *promotion.FlashOffer
		now           time.Time
		wantNil       bool
		wantEffective bool
		wantRemaining int
	}{
		{name: "running offer", offer: activeOffer(5, 1), now: baseTime.Add(time.Minute), wantEffective: true, wantRemaining: 540},
		{name: "expired offer stays active but not effective", offer: activeOffer(5, 1), now: baseTime.Add(11 * time.Minute), wantRemaining: 0},
		{name: "exhausted offer", offer: activeOffer(5, 5), now: baseTime.Add(time.Minute), wantRemaining: 540},
		{name: "no offer row", offer: nil, now: baseTime, wantNil: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPromotionReadStore(ctrl)
			cache := queriesmock.NewMockPromotionSnapshotCache(ctrl)
			cache.EXPECT().Get(ctx).Return(&queries.PromotionState{FlashOffer: tc.offer}, true)

			view, err := queries.NewPromotionQueries(store, cache, clock.NewMockClock(tc.now)).GetFlashOffer(ctx)
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, view)
				return
			}
			require.NotNil(t, view)
			assert.Equal(t, tc.wantEffective, view.IsEffectivelyActive)
			assert.Equal(t, tc.wantRemaining, view.RemainingSeconds)
			assert.True(t, tc.now.Equal(view.ServerTime))
		})
	}
}

func TestPromotionQueries_SettingsAndDiscount(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPromotionReadStore(ctrl)
	cache := queriesmock.NewMockPromotionSnapshotCache(ctrl)
	q := queries.NewPromotionQueries(store, cache, clock.NewMockClock(baseTime))

	cache.EXPECT().Get(ctx).Return(fullState(), true).Times(3)

	d, err := q.GetCheckoutDiscount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, d.DiscountPercent)

	s, err := q.GetTimeChallengeSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Beat the clock", s.Name)
	assert.Equal(t, 30, s.DiscountPercent)

	snap, err := q.GetSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap.FlashOffer)
	assert.Equal(t, 4, snap.FlashOffer.RemainingClaims)

	cache.EXPECT().Get(ctx).Return(&queries.PromotionState{}, true).Times(2)

	d, err = q.GetCheckoutDiscount(ctx)
	require.NoError(t, err)
	assert.Zero(t, d.DiscountPercent)

	_, err = q.GetTimeChallengeSettings(ctx)
	assert.ErrorIs(t, err, queries.ErrTimeChallengeNotConfigured)
}
