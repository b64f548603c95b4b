//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/infra/readstore"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/pgconv"
	"mysterybox-storefront/tests/common/dbtest"
	readstoremock "mysterybox-storefront/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func offerRow() sqlc.FlashOffers {
	return sqlc.FlashOffers{
		ID:              1,
		IsActive:        true,
		MaxClaims:       5,
		ClaimedCount:    2,
		DurationSeconds: 300,
		StartedAt:       pgconv.TimeToPgtype(baseTime),
		EndsAt:          pgconv.TimeToPgtype(baseTime.Add(5 * time.Minute)),
		BannerText:      "First 200 free",
		UpdatedAt:       pgconv.TimeToPgtype(baseTime),
	}
}

func TestPromotionReadStore_FlashOffer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPromotionReadQueries(ctrl)
	db := dbtest.NopDB{}
	store := readstore.NewPromotionReadStore(q, db)

	q.EXPECT().GetFlashOffer(ctx, db).Return(offerRow(), nil)

	offer, err := store.FlashOffer(ctx)
	require.NoError(t, err)
	assert.True(t, offer.IsActive())
	assert.Equal(t, 3, offer.RemainingClaims())
	assert.True(t, offer.IsEffectivelyActive(baseTime.Add(time.Minute)))
	assert.False(t, offer.IsEffectivelyActive(baseTime.Add(5*time.Minute)))
}

func TestPromotionReadStore_ForUpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPromotionReadQueries(ctrl)
	store := readstore.NewPromotionReadStore(q, dbtest.NopDB{})

	q.EXPECT().GetFlashOfferForUpdate(ctx, gomock.Any()).Return(sqlc.FlashOffers{}, pgx.ErrNoRows)
	q.EXPECT().GetTimeChallengeSettingsForUpdate(ctx, gomock.Any()).Return(sqlc.TimeChallengeSettings{}, errDBConnectionLost)

	_, err := store.FlashOfferForUpdate(ctx)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = store.TimeChallengeSettingsForUpdate(ctx)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestPromotionReadStore_State(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMock   func(*readstoremock.MockPromotionReadQueries)
		expectKind  infra.RepositoryErrorKind
		checkResult func(*testing.T, *readstore.PromotionReadStore)
	}{
		{
			name: "success: all three records",
			setupMock: func(q *readstoremock.MockPromotionReadQueries) {
				q.EXPECT().GetFlashOffer(ctx, gomock.Any()).Return(offerRow(), nil)
				q.EXPECT().GetCheckoutDiscount(ctx, gomock.Any()).Return(sqlc.CheckoutDiscounts{ID: 1, DiscountPercent: 10}, nil)
				q.EXPECT().GetTimeChallengeSettings(ctx, gomock.Any()).Return(sqlc.TimeChallengeSettings{
					ID: 1, Name: "Beat the clock", IsActive: true, DurationSeconds: 60, DiscountPercent: 30,
				}, nil)
			},
		},
		{
			name: "success: missing rows become nil",
			setupMock: func(q *readstoremock.MockPromotionReadQueries) {
				q.EXPECT().GetFlashOffer(ctx, gomock.Any()).Return(sqlc.FlashOffers{}, pgx.ErrNoRows)
				q.EXPECT().GetCheckoutDiscount(ctx, gomock.Any()).Return(sqlc.CheckoutDiscounts{}, pgx.ErrNoRows)
				q.EXPECT().GetTimeChallengeSettings(ctx, gomock.Any()).Return(sqlc.TimeChallengeSettings{}, pgx.ErrNoRows)
			},
		},
		{
			name: "error: database failure aborts the snapshot",
			setupMock: func(q *readstoremock.MockPromotionReadQueries) {
				q.EXPECT().GetFlashOffer(ctx, gomock.Any()).Return(offerRow(), nil)
				q.EXPECT().GetCheckoutDiscount(ctx, gomock.Any()).Return(sqlc.CheckoutDiscounts{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockPromotionReadQueries(ctrl)
			tc.setupMock(q)

			state, err := readstore.NewPromotionReadStore(q, dbtest.NopDB{}).State(ctx)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, state)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, state)
			if state.FlashOffer != nil {
				assert.Equal(t, 10, state.CheckoutDiscount.DiscountPercent())
				assert.Equal(t, "Beat the clock", state.TimeChallenge.Name())
			} else {
				assert.Nil(t, state.CheckoutDiscount)
				assert.Nil(t, state.TimeChallenge)
			}
		})
	}
}
