package shared

import (
	"context"
	"time"

	"mysterybox-storefront/internal/domain/order"
	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/domain/user"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Promotions() PromotionRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	FlashOffer(ctx context.Context) (*promotion.FlashOffer, error)
	FlashOfferForUpdate(ctx context.Context) (*promotion.FlashOffer, error)
	CheckoutDiscount(ctx context.Context) (*promotion.CheckoutDiscount, error)
	TimeChallengeSettingsForUpdate(ctx context.Context) (*promotion.TimeChallengeSettings, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type PromotionRepository interface {
	StartFlashOffer(ctx context.Context, tx sqlc.DBTX, offer *promotion.FlashOffer) (*promotion.FlashOffer, error)
	StopFlashOffer(ctx context.Context, tx sqlc.DBTX, now time.Time) (*promotion.FlashOffer, error)
	// ClaimFlashOffer reports claimed=false when the guard rejected the increment.
	ClaimFlashOffer(ctx context.Context, tx sqlc.DBTX, now time.Time) (offer *promotion.FlashOffer, claimed bool, err error)
	UpdateCheckoutDiscount(ctx context.Context, tx sqlc.DBTX, d *promotion.CheckoutDiscount) (*promotion.CheckoutDiscount, error)
	UpdateTimeChallengeSettings(ctx context.Context, tx sqlc.DBTX, s *promotion.TimeChallengeSettings) (*promotion.TimeChallengeSettings, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, orderID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, lastError string, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}
