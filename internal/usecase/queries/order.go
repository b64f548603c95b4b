package queries

import (
	"context"
	"time"

	"mysterybox-storefront/internal/domain/order"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	GetByNumber(ctx context.Context, number string) (*OrderView, error)
	ListFirstPage(ctx context.Context, limit int) ([]*OrderView, error)
	ListAfter(ctx context.Context, createdAt time.Time, id uuid.UUID, limit int) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByNumber(ctx context.Context, number string) (*OrderView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

// GetByNumber never finds trial numbers; those orders are not stored.
func (q *orderQueriesImpl) GetByNumber(ctx context.Context, number string) (*OrderView, error) {
	n, err := order.ParseNumber(number)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderNotFound)
	}
	if n.IsTrial() {
		return nil, ErrOrderNotFound
	}

	v, err := q.store.GetByNumber(ctx, n.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*OrderView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, limit+1)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListAfter(ctx, lastCreatedAt, lastID, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit, func(o *OrderView) (time.Time, uuid.UUID) {
		return o.CreatedAt, o.ID
	})
	return rows, next, nil
}
