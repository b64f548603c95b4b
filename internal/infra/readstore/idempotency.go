package readstore

import (
	"context"

	"mysterybox-storefront/internal/infra"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/pgconv"
	"mysterybox-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	clock   clock.Clock
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, clk clock.Clock) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		clock:   clk,
	}
}

// Get treats an expired key as not found; the row itself is reclaimed by the caller.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		return nil, infra.WrapLookupErr("idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	if !r.clock.Now().Before(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
