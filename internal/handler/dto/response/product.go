package response

import (
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return copyView[ProductResponse](v)
}

func FromProductViews(vs []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(vs))
	for i, v := range vs {
		res[i] = FromProductView(v)
	}
	return res
}
