//go:build unit

package commands_test

import (
	"context"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/usecase/shared"
	"mysterybox-storefront/tests/common/dbtest"
	sharedmock "mysterybox-storefront/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// txMocks bundles a transaction whose repositories are all mocks.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	orders        *sharedmock.MockOrderRepository
	promotions    *sharedmock.MockPromotionRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	db            sqlc.DBTX
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		promotions:    sharedmock.NewMockPromotionRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		db:            dbtest.NopDB{},
	}
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Promotions().Return(m.promotions).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

// expectWithin makes Within run its callback against the mocked transaction n times.
func (m *txMocks) expectWithin(n int) {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(n)
}

func activeOffer(maxClaims, claimed int) *promotion.FlashOffer {
	started := baseTime.Add(-time.Minute)
	ends := baseTime.Add(9 * time.Minute)
	return promotion.ReconstructFlashOffer(true, maxClaims, claimed, 600, &started, &ends, "First 200 free", baseTime)
}
