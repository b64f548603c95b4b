//go:build unit || e2e

package builder

import (
	"mysterybox-storefront/internal/domain/catalog"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Code        string
	Title       string
	Label       string
	Price       string
	Image       string
	Description string
	InStock     bool
	SortOrder   int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Code:      "MB-CLASSIC",
		Title:     "Classic mystery box",
		Label:     "bestseller",
		Price:     "₴250",
		Image:     "/img/classic.webp",
		InStock:   true,
		SortOrder: 1,
	}
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithCode(code string) *ProductBuilder {
	p.Code = code
	return p
}

func (p *ProductBuilder) BuildDomain() catalog.Product {
	return catalog.Product{
		ID:          p.ID,
		Code:        p.Code,
		Title:       p.Title,
		Label:       p.Label,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		InStock:     p.InStock,
		SortOrder:   p.SortOrder,
	}
}

func (p *ProductBuilder) BuildReadModel() *queries.ProductView {
	return &queries.ProductView{
		ID:          p.ID,
		Code:        p.Code,
		Title:       p.Title,
		Label:       p.Label,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		InStock:     p.InStock,
		SortOrder:   int32(p.SortOrder),
	}
}
