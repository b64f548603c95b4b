package uow

import (
	"context"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/infra/readstore"
	"mysterybox-storefront/internal/infra/repository"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// pgTx is the shared.Tx handed to Within callbacks. Repositories are stateless
// apart from the queries they wrap, so each accessor builds one on demand.
type pgTx struct {
	dbtx  sqlc.DBTX
	uow   *PostgresUoW
	reads *commandReads
}

func (t *pgTx) DB() sqlc.DBTX { return t.dbtx }

func (t *pgTx) Orders() shared.OrderRepository {
	return repository.NewOrderRepository(t.uow.q)
}

func (t *pgTx) Promotions() shared.PromotionRepository {
	return repository.NewPromotionRepository(t.uow.q)
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	return repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	return repository.NewNotificationRepository(t.uow.q)
}

func (t *pgTx) Users() shared.UserRepository {
	return repository.NewUserRepository(t.uow.q)
}

// Reads sees the transaction's own writes and takes row locks for ForUpdate.
func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{uow: t.uow, dbtx: t.dbtx}
	}
	return t.reads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) promotions() *readstore.PromotionReadStore {
	return readstore.NewPromotionReadStore(r.uow.q, r.dbtx)
}

func (r *commandReads) FlashOffer(ctx context.Context) (*promotion.FlashOffer, error) {
	return r.promotions().FlashOffer(ctx)
}

func (r *commandReads) FlashOfferForUpdate(ctx context.Context) (*promotion.FlashOffer, error) {
	return r.promotions().FlashOfferForUpdate(ctx)
}

func (r *commandReads) CheckoutDiscount(ctx context.Context) (*promotion.CheckoutDiscount, error) {
	return r.promotions().CheckoutDiscount(ctx)
}

func (r *commandReads) TimeChallengeSettingsForUpdate(ctx context.Context) (*promotion.TimeChallengeSettings, error) {
	return r.promotions().TimeChallengeSettingsForUpdate(ctx)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return readstore.NewIdempotencyReadStore(r.uow.q, r.uow.clock).Get(ctx, r.dbtx, key, userID)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	u, _, err := readstore.NewUserReadStore(r.uow.q, r.dbtx).FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{ID: u.ID, Email: u.Email, Role: u.Role, IsActive: u.IsActive}, nil
}
