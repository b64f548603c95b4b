//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/patch"
	"mysterybox-storefront/internal/usecase/commands"
	commandsmock "mysterybox-storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPromotionCommands(t *testing.T) (commands.PromotionCommands, *txMocks, *commandsmock.MockPromotionCacheInvalidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	cache := commandsmock.NewMockPromotionCacheInvalidator(ctrl)
	return commands.NewPromotionCommands(m.uow, cache, clock.NewMockClock(baseTime)), m, cache
}

func TestPromotionCommands_StartFlashOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides merge over stored values", func(t *testing.T) {
		uc, m, cache := newPromotionCommands(t)
		stored := promotion.ReconstructFlashOffer(false, 5, 3, 120, nil, nil, "Stored banner", baseTime.Add(-time.Hour))

		m.expectWithin(1)
		m.reads.EXPECT().FlashOfferForUpdate(ctx).Return(stored, nil)
		m.promotions.EXPECT().StartFlashOffer(ctx, m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, offer *promotion.FlashOffer) (*promotion.FlashOffer, error) {
				assert.True(t, offer.IsActive())
				assert.Equal(t, 10, offer.MaxClaims())
				assert.Equal(t, 0, offer.ClaimedCount())
				assert.Equal(t, 120, offer.DurationSeconds())
				assert.Equal(t, "Stored banner", offer.BannerText())
				require.NotNil(t, offer.EndsAt())
				assert.Equal(t, baseTime.Add(120*time.Second), *offer.EndsAt())
				return offer, nil
			})
		cache.EXPECT().Invalidate(ctx)

		view, err := uc.StartFlashOffer(ctx, commands.StartFlashOfferInput{MaxClaims: patch.Ptr(10)})
		require.NoError(t, err)
		assert.True(t, view.IsEffectivelyActive)
		assert.Equal(t, 120, view.RemainingSeconds)
		assert.Equal(t, 10, view.RemainingClaims)
	})

	t.Run("non-positive duration is rejected before writing", func(t *testing.T) {
		uc, m, _ := newPromotionCommands(t)
		stored := promotion.ReconstructFlashOffer(false, 5, 0, 120, nil, nil, "", baseTime)

		m.expectWithin(1)
		m.reads.EXPECT().FlashOfferForUpdate(ctx).Return(stored, nil)

		_, err := uc.StartFlashOffer(ctx, commands.StartFlashOfferInput{DurationSeconds: patch.Ptr(0)})
		assert.ErrorIs(t, err, commands.ErrInvalidPromotion)
		assert.ErrorIs(t, err, promotion.ErrInvalidDuration)
	})

	t.Run("missing row", func(t *testing.T) {
		uc, m, _ := newPromotionCommands(t)

		m.expectWithin(1)
		m.reads.EXPECT().FlashOfferForUpdate(ctx).
			Return(nil, infra.WrapRepoErr("flash offer not found", nil, infra.KindNotFound))

		_, err := uc.StartFlashOffer(ctx, commands.StartFlashOfferInput{})
		assert.ErrorIs(t, err, commands.ErrPromotionNotConfigured)
	})
}

func TestPromotionCommands_StopFlashOffer(t *testing.T) {
	ctx := context.Background()
	uc, m, cache := newPromotionCommands(t)

	stopped := activeOffer(5, 2)
	stopped.Stop(baseTime)

	m.expectWithin(1)
	m.promotions.EXPECT().StopFlashOffer(ctx, m.db, baseTime).Return(stopped, nil)
	cache.EXPECT().Invalidate(ctx)

	view, err := uc.StopFlashOffer(ctx)
	require.NoError(t, err)
	assert.False(t, view.IsActive)
	assert.False(t, view.IsEffectivelyActive)
	assert.Equal(t, 2, view.ClaimedCount)
}

func TestPromotionCommands_ClaimFlashOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("guarded increment succeeds", func(t *testing.T) {
		uc, m, cache := newPromotionCommands(t)

		m.expectWithin(1)
		m.promotions.EXPECT().ClaimFlashOffer(ctx, m.db, baseTime).Return(activeOffer(5, 3), true, nil)
		cache.EXPECT().Invalidate(ctx)

		view, err := uc.ClaimFlashOffer(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, view.ClaimedCount)
		assert.Equal(t, 2, view.RemainingClaims)
	})

	tests := []struct {
		name   string
		stored *promotion.FlashOffer
		want   error
	}{
		{
			name:   "exhausted",
			stored: activeOffer(5, 5),
			want:   promotion.ErrFlashOfferExhausted,
		},
		{
			name: "expired",
			stored: func() *promotion.FlashOffer {
				started := baseTime.Add(-20 * time.Minute)
				ends := baseTime.Add(-10 * time.Minute)
				return promotion.ReconstructFlashOffer(true, 5, 1, 600, &started, &ends, "", baseTime)
			}(),
			want: promotion.ErrFlashOfferExpired,
		},
		{
			name:   "stopped",
			stored: promotion.ReconstructFlashOffer(false, 5, 1, 600, nil, nil, "", baseTime),
			want:   promotion.ErrFlashOfferInactive,
		},
		{
			name:   "lost race reads as exhausted",
			stored: activeOffer(5, 4),
			want:   promotion.ErrFlashOfferExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m, _ := newPromotionCommands(t)

			m.expectWithin(1)
			m.promotions.EXPECT().ClaimFlashOffer(ctx, m.db, baseTime).Return(nil, false, nil)
			m.reads.EXPECT().FlashOffer(ctx).Return(tt.stored, nil)

			_, err := uc.ClaimFlashOffer(ctx)
			assert.ErrorIs(t, err, commands.ErrClaimRejected)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("database failure is not a rejection", func(t *testing.T) {
		uc, m, _ := newPromotionCommands(t)
		dbErr := infra.WrapRepoErr("failed to claim flash offer", errors.New("connection reset"))

		m.expectWithin(1)
		m.promotions.EXPECT().ClaimFlashOffer(ctx, m.db, baseTime).Return(nil, false, dbErr)

		_, err := uc.ClaimFlashOffer(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, commands.ErrClaimRejected)
	})
}

func TestPromotionCommands_UpdateCheckoutDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("valid percent is stored", func(t *testing.T) {
		uc, m, cache := newPromotionCommands(t)

		m.expectWithin(1)
		m.promotions.EXPECT().UpdateCheckoutDiscount(ctx, m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, d *promotion.CheckoutDiscount) (*promotion.CheckoutDiscount, error) {
				return d, nil
			})
		cache.EXPECT().Invalidate(ctx)

		view, err := uc.UpdateCheckoutDiscount(ctx, 15)
		require.NoError(t, err)
		assert.Equal(t, 15, view.DiscountPercent)
	})

	for _, pct := range []int{-1, 101} {
		uc, _, _ := newPromotionCommands(t)
		_, err := uc.UpdateCheckoutDiscount(ctx, pct)
		assert.ErrorIs(t, err, commands.ErrInvalidPromotion, "percent %d", pct)
	}
}

func TestPromotionCommands_UpdateTimeChallengeSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		uc, m, cache := newPromotionCommands(t)
		stored := promotion.ReconstructTimeChallengeSettings("Beat the clock", false, 60, 30, baseTime.Add(-time.Hour))

		m.expectWithin(1)
		m.reads.EXPECT().TimeChallengeSettingsForUpdate(ctx).Return(stored, nil)
		m.promotions.EXPECT().UpdateTimeChallengeSettings(ctx, m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, s *promotion.TimeChallengeSettings) (*promotion.TimeChallengeSettings, error) {
				return s, nil
			})
		cache.EXPECT().Invalidate(ctx)

		view, err := uc.UpdateTimeChallengeSettings(ctx, promotion.SettingsPatch{IsActive: patch.Ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, "Beat the clock", view.Name)
		assert.True(t, view.IsActive)
		assert.Equal(t, 60, view.DurationSeconds)
		assert.Equal(t, 30, view.DiscountPercent)
		assert.Equal(t, baseTime, view.UpdatedAt)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		uc, m, _ := newPromotionCommands(t)
		stored := promotion.ReconstructTimeChallengeSettings("Beat the clock", true, 60, 30, baseTime)

		m.expectWithin(1)
		m.reads.EXPECT().TimeChallengeSettingsForUpdate(ctx).Return(stored, nil)

		_, err := uc.UpdateTimeChallengeSettings(ctx, promotion.SettingsPatch{Name: patch.Ptr("  ")})
		assert.ErrorIs(t, err, commands.ErrInvalidPromotion)
		assert.ErrorIs(t, err, promotion.ErrEmptyChallengeName)
	})
}
