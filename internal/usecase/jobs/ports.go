package jobs

import (
	"context"

	"mysterybox-storefront/internal/usecase/shared"
)

// Sender delivers one notification. Wrap ErrPermanent to stop retries.
type Sender interface {
	Send(ctx context.Context, job shared.NotificationJob) error
}

type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}
