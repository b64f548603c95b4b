package order

import (
	"time"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/money"

	"github.com/google/uuid"
)

type Item struct {
	ProductID   uuid.UUID
	ProductCode string
	Title       string
	Label       string
	Price       string
	Image       string
	Quantity    int
}

func ItemsFromCart(lines []cart.Line) []Item {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID:   l.ProductID,
			ProductCode: l.ProductCode,
			Title:       l.Title,
			Label:       l.Label,
			Price:       l.Price,
			Image:       l.Image,
			Quantity:    l.Quantity,
		})
	}
	return items
}

// Pricing is what the client computed at submission time.
type Pricing struct {
	Total              int64
	IsFlashOffer       bool
	FlashOfferDiscount int64
}

// Order is immutable once created.
type Order struct {
	id        uuid.UUID
	number    Number
	customer  Customer
	items     []Item
	pricing   Pricing
	isTryNow  bool
	createdAt time.Time
}

func NewOrder(number Number, customer Customer, items []Item, pricing Pricing, isTryNow bool, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if pricing.Total < 0 {
		return nil, ErrNegativeTotal
	}
	if pricing.FlashOfferDiscount < 0 {
		pricing.FlashOfferDiscount = 0
	}
	return &Order{
		id:        uuid.New(),
		number:    number,
		customer:  customer,
		items:     append([]Item(nil), items...),
		pricing:   pricing,
		isTryNow:  isTryNow,
		createdAt: now,
	}, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) Number() Number       { return o.number }
func (o *Order) Customer() Customer   { return o.customer }
func (o *Order) Items() []Item        { return append([]Item(nil), o.items...) }
func (o *Order) Pricing() Pricing     { return o.pricing }
func (o *Order) IsTryNow() bool       { return o.isTryNow }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Subtotal is the undiscounted item sum, kept alongside the client total for auditing.
func (o *Order) Subtotal() int64 {
	var sum int64
	for _, it := range o.items {
		sum += money.ParseAmount(it.Price) * int64(it.Quantity)
	}
	return sum
}

// Persisted reports whether the order goes to storage and notification.
func (o *Order) Persisted() bool {
	return !o.isTryNow
}
