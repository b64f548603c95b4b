package cart

import (
	"errors"
	"slices"

	"mysterybox-storefront/internal/domain/money"

	"github.com/google/uuid"
)

var ErrInvalidLine = errors.New("cart line requires a product id")

// Line is one product in the cart. Price is the display string from the catalog.
type Line struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductCode string    `json:"productCode"`
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Quantity    int       `json:"quantity"`
}

func (l Line) Amount() int64 {
	return money.ParseAmount(l.Price) * int64(l.Quantity)
}

// Cart keeps insertion order and at most one line per product; every quantity is >= 1.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new line or increases the quantity of an existing one.
func (c *Cart) Add(l Line) error {
	if l.ProductID == uuid.Nil {
		return ErrInvalidLine
	}
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	if i := c.index(l.ProductID); i >= 0 {
		c.lines[i].Quantity += l.Quantity
		return nil
	}
	c.lines = append(c.lines, l)
	return nil
}

// UpdateQuantity sets the quantity; values below 1 and unknown products are ignored.
func (c *Cart) UpdateQuantity(productID uuid.UUID, qty int) bool {
	if qty < 1 {
		return false
	}
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = qty
	return true
}

func (c *Cart) Remove(productID uuid.UUID) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return true
}

// Subtract removes the given quantities, dropping lines that reach zero.
// Products not in the cart are ignored.
func (c *Cart) Subtract(lines []Line) {
	for _, l := range lines {
		i := c.index(l.ProductID)
		if i < 0 {
			continue
		}
		c.lines[i].Quantity -= l.Quantity
		if c.lines[i].Quantity < 1 {
			c.lines = slices.Delete(c.lines, i, i+1)
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() int64 {
	return Subtotal(c.lines)
}

// Restore replaces the contents with persisted lines, merging duplicates
// and dropping lines without a product id. Quantities below 1 become 1.
func (c *Cart) Restore(lines []Line) {
	c.lines = nil
	for _, l := range lines {
		_ = c.Add(l)
	}
}

func (c *Cart) index(productID uuid.UUID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ProductID == productID })
}

// Subtotal is Σ parseAmount(price) × quantity.
func Subtotal(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Amount()
	}
	return sum
}
