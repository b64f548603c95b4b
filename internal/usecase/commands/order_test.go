//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/order"
	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/usecase/commands"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/internal/usecase/shared"
	queriesmock "mysterybox-storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validSubmitInput() commands.SubmitOrderInput {
	return commands.SubmitOrderInput{
		Customer: commands.CustomerInput{
			Name:    "Olena Petrenko",
			Phone:   "+380 50 123 45 67",
			City:    "Kyiv",
			Address: "Nova Poshta #12",
		},
		Items: []cart.Line{{
			ProductID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			ProductCode: "MB-CLASSIC",
			Title:       "Classic mystery box",
			Price:       "₴250",
			Quantity:    1,
		}},
		Total: "₴289",
	}
}

type orderFixture struct {
	uc    commands.OrderCommands
	m     *txMocks
	store *queriesmock.MockOrderReadStore
}

func newOrderFixture(t *testing.T, cfg config.Config) *orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	return &orderFixture{
		uc:    commands.NewOrderCommands(m.uow, store, cfg, clock.NewMockClock(baseTime)),
		m:     m,
		store: store,
	}
}

// expectFreshKey makes the idempotency row look freshly inserted by this request.
func (f *orderFixture) expectFreshKey(ctx context.Context, key uuid.UUID) {
	var hash string
	f.m.idempotency.EXPECT().TryInsert(ctx, f.m.db, key, uuid.Nil, "POST /api/orders", gomock.Any(), baseTime.Add(24*time.Hour)).
		DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, requestHash string, _ time.Time) error {
			hash = requestHash
			return nil
		})
	f.m.reads.EXPECT().IdempotencyByKey(ctx, key, uuid.Nil).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{Key: key, Status: shared.IdempotencyStatusProcessing, RequestHash: hash}, nil
		})
}

func TestOrderCommands_SubmitOrder_TryNow(t *testing.T) {
	f := newOrderFixture(t, config.NewTestConfig())
	in := validSubmitInput()
	in.IsTryNowChallenge = true
	in.IsFlashOffer = true
	in.Total = "₴89"

	// No UnitOfWork or read store expectations: trial orders never touch storage.
	res, err := f.uc.SubmitOrder(context.Background(), in, uuid.Nil)
	require.NoError(t, err)

	assert.True(t, res.IsTrial)
	assert.False(t, res.IsReplayed)
	assert.True(t, strings.HasPrefix(res.Order.OrderNumber, "TRY-"))
	assert.Equal(t, int64(89), res.Order.Total)
	assert.Equal(t, int64(250), res.Order.Subtotal)
	assert.Equal(t, "+380501234567", res.Order.Phone)
	assert.True(t, res.Order.IsFlashOffer)
}

func TestOrderCommands_SubmitOrder(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("idempotency key is required", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())
		_, err := f.uc.SubmitOrder(ctx, validSubmitInput(), uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyRequired)
	})

	t.Run("新規注文は注文・通知ジョブ・冪等キーを同一トランザクションで書き込む", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())

		var created *order.Order
		f.m.expectWithin(1)
		f.expectFreshKey(ctx, key)
		f.m.orders.EXPECT().Create(ctx, f.m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *order.Order) error {
				created = o
				return nil
			})
		f.m.notifications.EXPECT().CreateJob(ctx, f.m.db, commands.NotificationKindWebhook, commands.NotificationTopicOrderNew, gomock.Any(), baseTime).
			DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
				var msg map[string]any
				require.NoError(t, json.Unmarshal(payload, &msg))
				assert.Equal(t, created.Number().String(), msg["order_number"])
				assert.Equal(t, float64(289), msg["total"])
				return nil
			})
		f.m.idempotency.EXPECT().UpdateStatusCompleted(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().GetByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
				assert.Equal(t, created.ID(), id)
				return &queries.OrderView{ID: id, OrderNumber: created.Number().String(), Total: 289}, nil
			})

		res, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
		assert.Equal(t, int64(289), res.Order.Total)
		assert.Regexp(t, `^MB-260314-[0-9]{6}$`, res.Order.OrderNumber)
		assert.Equal(t, int64(289), created.Pricing().Total)
	})

	t.Run("completed key replays the stored order", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())
		existingID := uuid.New()

		var hash string
		f.m.expectWithin(1)
		f.m.idempotency.EXPECT().TryInsert(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, requestHash string, _ time.Time) error {
				hash = requestHash
				return nil
			})
		f.m.reads.EXPECT().IdempotencyByKey(ctx, key, uuid.Nil).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:           key,
					Status:        shared.IdempotencyStatusCompleted,
					RequestHash:   hash,
					ResultOrderID: &existingID,
				}, nil
			})
		f.store.EXPECT().GetByID(ctx, existingID).Return(&queries.OrderView{ID: existingID}, nil)

		res, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		require.NoError(t, err)
		assert.True(t, res.IsReplayed)
		assert.Equal(t, existingID, res.Order.ID)
	})

	t.Run("same key with a different body conflicts", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())

		f.m.expectWithin(1)
		f.m.idempotency.EXPECT().TryInsert(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.m.reads.EXPECT().IdempotencyByKey(ctx, key, uuid.Nil).Return(&shared.IdempotencyRecord{
			Key:         key,
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: "another-request",
		}, nil)

		_, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		assert.ErrorIs(t, err, commands.ErrIdempotencyKeyConflict)
	})

	t.Run("expired key is reclaimed", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())
		notFound := infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)

		f.m.expectWithin(1)
		f.m.idempotency.EXPECT().TryInsert(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.m.reads.EXPECT().IdempotencyByKey(ctx, key, uuid.Nil).Return(nil, notFound)
		f.m.idempotency.EXPECT().ClaimExpired(ctx, f.m.db, key, uuid.Nil, gomock.Any(), baseTime.Add(24*time.Hour)).Return(int64(1), nil)
		f.m.orders.EXPECT().Create(ctx, f.m.db, gomock.Any()).Return(nil)
		f.m.notifications.EXPECT().CreateJob(ctx, f.m.db, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.m.idempotency.EXPECT().UpdateStatusCompleted(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().GetByID(ctx, gomock.Any()).Return(&queries.OrderView{}, nil)

		_, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		require.NoError(t, err)
	})

	t.Run("expired key taken by a concurrent request", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())
		notFound := infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)

		f.m.expectWithin(1)
		f.m.idempotency.EXPECT().TryInsert(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.m.reads.EXPECT().IdempotencyByKey(ctx, key, uuid.Nil).Return(nil, notFound)
		f.m.idempotency.EXPECT().ClaimExpired(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("order number collision retries the transaction", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())
		dup := infra.WrapRepoErr("failed to create order", errors.New("unique violation"), infra.KindDuplicateKey)

		f.m.expectWithin(2)
		f.expectFreshKey(ctx, key)
		f.expectFreshKey(ctx, key)
		gomock.InOrder(
			f.m.orders.EXPECT().Create(ctx, f.m.db, gomock.Any()).Return(dup),
			f.m.orders.EXPECT().Create(ctx, f.m.db, gomock.Any()).Return(nil),
		)
		f.m.notifications.EXPECT().CreateJob(ctx, f.m.db, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.m.idempotency.EXPECT().UpdateStatusCompleted(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().GetByID(ctx, gomock.Any()).Return(&queries.OrderView{}, nil)

		_, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		require.NoError(t, err)
	})

	t.Run("invalid customer fails before writing", func(t *testing.T) {
		f := newOrderFixture(t, config.NewTestConfig())
		in := validSubmitInput()
		in.Customer.Phone = "call me"

		f.m.expectWithin(1)
		f.expectFreshKey(ctx, key)

		_, err := f.uc.SubmitOrder(ctx, in, key)
		assert.ErrorIs(t, err, commands.ErrInvalidOrder)
		assert.ErrorIs(t, err, order.ErrInvalidPhone)
	})

	t.Run("reapply mode discounts the submitted total again", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Promotion.CheckoutDiscountMode = config.CheckoutDiscountModeReapply
		f := newOrderFixture(t, cfg)

		var created *order.Order
		f.m.expectWithin(1)
		f.expectFreshKey(ctx, key)
		f.m.reads.EXPECT().CheckoutDiscount(ctx).Return(promotion.ReconstructCheckoutDiscount(10, baseTime), nil)
		f.m.orders.EXPECT().Create(ctx, f.m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *order.Order) error {
				created = o
				return nil
			})
		f.m.notifications.EXPECT().CreateJob(ctx, f.m.db, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.m.idempotency.EXPECT().UpdateStatusCompleted(ctx, f.m.db, key, uuid.Nil, gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().GetByID(ctx, gomock.Any()).Return(&queries.OrderView{}, nil)

		_, err := f.uc.SubmitOrder(ctx, validSubmitInput(), key)
		require.NoError(t, err)
		// 289 × 0.9 = 260.1
		assert.Equal(t, int64(260), created.Pricing().Total)
	})
}
