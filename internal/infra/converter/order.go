package converter

import (
	"mysterybox-storefront/internal/domain/order"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	c := o.Customer()
	p := o.Pricing()
	return sqlc.CreateOrderParams{
		ID:                 o.ID(),
		OrderNumber:        o.Number().String(),
		CustomerName:       c.Name(),
		Phone:              c.Phone(),
		Email:              c.Email(),
		City:               c.City(),
		Address:            c.Address(),
		Comment:            c.Comment(),
		Subtotal:           o.Subtotal(),
		Total:              p.Total,
		IsFlashOffer:       p.IsFlashOffer,
		FlashOfferDiscount: p.FlashOfferDiscount,
		CreatedAt:          pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemsToCreateParams(o *order.Order) []sqlc.CreateOrderItemParams {
	items := o.Items()
	params := make([]sqlc.CreateOrderItemParams, len(items))
	for i, it := range items {
		params[i] = sqlc.CreateOrderItemParams{
			OrderID:     o.ID(),
			Position:    int32(i),
			ProductID:   it.ProductID,
			ProductCode: it.ProductCode,
			Title:       it.Title,
			Label:       it.Label,
			Price:       it.Price,
			Image:       it.Image,
			Quantity:    int32(it.Quantity),
		}
	}
	return params
}
