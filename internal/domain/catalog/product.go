// Package catalog is the read-only product boundary. Catalog administration lives elsewhere.
package catalog

import (
	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/money"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
	SortOrder   int       `json:"sortOrder"`
}

func (p Product) Amount() int64 {
	return money.ParseAmount(p.Price)
}

func (p Product) CartLine(qty int) cart.Line {
	return cart.Line{
		ProductID:   p.ID,
		ProductCode: p.Code,
		Title:       p.Title,
		Label:       p.Label,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    qty,
	}
}
