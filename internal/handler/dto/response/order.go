package response

import (
	"time"

	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductCode string    `json:"productCode"`
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Quantity    int32     `json:"quantity"`
}

type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	CustomerName       string              `json:"customerName"`
	Phone              string              `json:"phone"`
	Email              string              `json:"email"`
	City               string              `json:"city"`
	Address            string              `json:"address"`
	Comment            string              `json:"comment"`
	Items              []OrderItemResponse `json:"items"`
	Subtotal           int64               `json:"subtotal"`
	Total              int64               `json:"total"`
	IsFlashOffer       bool                `json:"isFlashOffer"`
	FlashOfferDiscount int64               `json:"flashOfferDiscount"`
	IsTrial            bool                `json:"isTrial"`
	CreatedAt          time.Time           `json:"createdAt"`
}

type OrderListResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return copyView[OrderResponse](v)
}

func FromOrderList(vs []*queries.OrderView, next *queries.Cursor) *OrderListResponse {
	res := &OrderListResponse{Orders: make([]*OrderResponse, len(vs))}
	for i, v := range vs {
		res.Orders[i] = FromOrderView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
