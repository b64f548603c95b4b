package readstore

import (
	"context"

	"mysterybox-storefront/internal/infra"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	GetProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListProducts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Products, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ProductReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := s.queries.GetProduct(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapLookupErr("product", err)
	}
	return toProductView(row), nil
}

func (s *ProductReadStore) List(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := s.queries.ListProducts(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}

	views := make([]*queries.ProductView, len(rows))
	for i, row := range rows {
		views[i] = toProductView(row)
	}
	return views, nil
}

func toProductView(row sqlc.Products) *queries.ProductView {
	return &queries.ProductView{
		ID:          row.ID,
		Code:        row.Code,
		Title:       row.Title,
		Label:       row.Label,
		Price:       row.Price,
		Image:       row.Image,
		Description: row.Description,
		InStock:     row.InStock,
		SortOrder:   row.SortOrder,
	}
}
