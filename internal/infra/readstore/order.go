package readstore

import (
	"context"
	"time"

	"mysterybox-storefront/internal/infra"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/pgconv"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.Orders, error)
	ListOrdersFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Orders, error)
	ListOrdersKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersKeysetParams) ([]sqlc.Orders, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *OrderReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := s.queries.GetOrderByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	views, err := s.withItems(ctx, []sqlc.Orders{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *OrderReadStore) GetByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	row, err := s.queries.GetOrderByNumber(ctx, s.db, number)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by number", err)
	}
	views, err := s.withItems(ctx, []sqlc.Orders{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListFirstPage and ListAfter return up to limit rows ordered by created_at DESC, id DESC.
func (s *OrderReadStore) ListFirstPage(ctx context.Context, limit int) ([]*queries.OrderView, error) {
	rows, err := s.queries.ListOrdersFirstPage(ctx, s.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return s.withItems(ctx, rows)
}

func (s *OrderReadStore) ListAfter(ctx context.Context, createdAt time.Time, id uuid.UUID, limit int) ([]*queries.OrderView, error) {
	rows, err := s.queries.ListOrdersKeyset(ctx, s.db, sqlc.ListOrdersKeysetParams{
		CreatedAt:  pgconv.TimeToPgtype(createdAt),
		ID:         id,
		LimitCount: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders after cursor", err)
	}
	return s.withItems(ctx, rows)
}

// withItems batch-loads the lines of every order in one query.
func (s *OrderReadStore) withItems(ctx context.Context, rows []sqlc.Orders) ([]*queries.OrderView, error) {
	if len(rows) == 0 {
		return []*queries.OrderView{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	views := make([]*queries.OrderView, len(rows))
	byID := make(map[uuid.UUID]*queries.OrderView, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		views[i] = toOrderView(row)
		byID[row.ID] = views[i]
	}

	items, err := s.queries.ListOrderItemsByOrderIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	for _, it := range items {
		v, ok := byID[it.OrderID]
		if !ok {
			continue
		}
		v.Items = append(v.Items, queries.OrderItemView{
			ProductID:   it.ProductID,
			ProductCode: it.ProductCode,
			Title:       it.Title,
			Label:       it.Label,
			Price:       it.Price,
			Image:       it.Image,
			Quantity:    it.Quantity,
		})
	}
	return views, nil
}

func toOrderView(row sqlc.Orders) *queries.OrderView {
	return &queries.OrderView{
		ID:                 row.ID,
		OrderNumber:        row.OrderNumber,
		CustomerName:       row.CustomerName,
		Phone:              row.Phone,
		Email:              row.Email,
		City:               row.City,
		Address:            row.Address,
		Comment:            row.Comment,
		Items:              []queries.OrderItemView{},
		Subtotal:           row.Subtotal,
		Total:              row.Total,
		IsFlashOffer:       row.IsFlashOffer,
		FlashOfferDiscount: row.FlashOfferDiscount,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
