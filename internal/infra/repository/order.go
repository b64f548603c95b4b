package repository

import (
	"context"

	"mysterybox-storefront/internal/domain/order"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/infra/converter"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{
		queries: queries,
	}
}

// Create writes the order header and its items; callers run it inside a transaction.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range converter.OrderItemsToCreateParams(o) {
		if err := r.queries.CreateOrderItem(ctx, tx, item); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}
