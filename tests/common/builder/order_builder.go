//go:build unit || e2e

package builder

import (
	"time"

	"mysterybox-storefront/internal/domain/money"
	"mysterybox-storefront/internal/domain/order"
	reqdto "mysterybox-storefront/internal/handler/dto/request"

	"github.com/google/uuid"
)

type OrderItemBuilder struct {
	ProductID   uuid.UUID
	ProductCode string
	Title       string
	Label       string
	Price       string
	Image       string
	Quantity    int
}

type OrderBuilder struct {
	Number             string
	CustomerName       string
	Phone              string
	Email              string
	City               string
	Address            string
	Comment            string
	Items              []OrderItemBuilder
	Total              int64
	IsFlashOffer       bool
	FlashOfferDiscount int64
	IsTryNow           bool
	CreatedAt          time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Number:       "MB-260314-000123",
		CustomerName: "Olena Petrenko",
		Phone:        "+380501234567",
		Email:        "olena@example.com",
		City:         "Kyiv",
		Address:      "Nova Poshta #12",
		Items: []OrderItemBuilder{
			{
				ProductID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
				ProductCode: "MB-CLASSIC",
				Title:       "Classic mystery box",
				Label:       "bestseller",
				Price:       "₴250",
				Image:       "/img/classic.webp",
				Quantity:    1,
			},
		},
		Total:     289,
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	customer, err := order.NewCustomer(o.CustomerName, o.Phone, o.Email, o.City, o.Address, o.Comment)
	if err != nil {
		return nil, err
	}
	return order.NewOrder(order.Number(o.Number), customer, o.domainItems(), order.Pricing{
		Total:              o.Total,
		IsFlashOffer:       o.IsFlashOffer,
		FlashOfferDiscount: o.FlashOfferDiscount,
	}, o.IsTryNow, o.CreatedAt)
}

// BuildRequestDTO renders Total with the storefront currency symbol, as the client sends it.
func (o *OrderBuilder) BuildRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.CartLineRequest, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, reqdto.CartLineRequest(it))
	}
	return reqdto.CreateOrderRequest{
		Customer: reqdto.CustomerRequest{
			Name:    o.CustomerName,
			Phone:   o.Phone,
			Email:   o.Email,
			City:    o.City,
			Address: o.Address,
			Comment: o.Comment,
		},
		Items:              items,
		Total:              money.Format(o.Total, "₴"),
		IsFlashOffer:       o.IsFlashOffer,
		FlashOfferDiscount: o.FlashOfferDiscount,
		IsTryNowChallenge:  o.IsTryNow,
	}
}

func (o *OrderBuilder) WithProduct(id uuid.UUID, price string) *OrderBuilder {
	for i := range o.Items {
		o.Items[i].ProductID = id
		o.Items[i].Price = price
	}
	return o
}

func (o *OrderBuilder) domainItems() []order.Item {
	items := make([]order.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, order.Item(it))
	}
	return items
}

// Fluent builder methods
func (o *OrderBuilder) WithCustomerName(name string) *OrderBuilder {
	o.CustomerName = name
	return o
}

func (o *OrderBuilder) WithPhone(phone string) *OrderBuilder {
	o.Phone = phone
	return o
}

func (o *OrderBuilder) WithTotal(total int64) *OrderBuilder {
	o.Total = total
	return o
}

func (o *OrderBuilder) WithoutItems() *OrderBuilder {
	o.Items = nil
	return o
}

func (o *OrderBuilder) WithQuantity(qty int) *OrderBuilder {
	for i := range o.Items {
		o.Items[i].Quantity = qty
	}
	return o
}

func (o *OrderBuilder) AsFlashOffer(discount int64) *OrderBuilder {
	o.IsFlashOffer = true
	o.FlashOfferDiscount = discount
	return o
}

func (o *OrderBuilder) AsTryNow() *OrderBuilder {
	o.IsTryNow = true
	return o
}
