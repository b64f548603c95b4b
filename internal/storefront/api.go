// Package storefront is the shopper-side session: a persisted cart, the two
// local challenge runs, the flash-offer gate and the pollers that keep the
// server-held promotions fresh. Checkout captures the quote before the network
// round trip and mutates nothing until the server accepts the order.
package storefront

import (
	"context"
	"fmt"
	"time"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart            = errs.New("cart is empty")
	ErrChallengeUnavailable = errs.New("time challenge is not available")
	ErrClaimRejected        = errs.New("flash offer claim rejected")
	// ErrRetryable marks failures where resubmitting with the same idempotency key is safe.
	ErrRetryable = errs.New("request may be retried")
)

// API is the subset of the storefront HTTP API the session talks to.
type API interface {
	// GetFlashOffer returns nil when no offer is configured.
	GetFlashOffer(ctx context.Context) (*promotion.FlashOffer, error)
	GetCheckoutDiscount(ctx context.Context) (*promotion.CheckoutDiscount, error)
	GetTimeChallengeSettings(ctx context.Context) (*promotion.TimeChallengeSettings, error)
	SubmitOrder(ctx context.Context, req OrderRequest, idempotencyKey uuid.UUID) (*Order, error)
	ClaimFlashOffer(ctx context.Context) (*promotion.FlashOffer, error)
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type OrderRequest struct {
	Customer           Customer    `json:"customer"`
	Items              []cart.Line `json:"items"`
	Total              string      `json:"total"`
	IsFlashOffer       bool        `json:"isFlashOffer"`
	FlashOfferDiscount int64       `json:"flashOfferDiscount"`
	IsTryNowChallenge  bool        `json:"isTryNowChallenge"`
}

type Order struct {
	ID                 uuid.UUID   `json:"id"`
	OrderNumber        string      `json:"orderNumber"`
	Items              []cart.Line `json:"items"`
	Subtotal           int64       `json:"subtotal"`
	Total              int64       `json:"total"`
	IsFlashOffer       bool        `json:"isFlashOffer"`
	FlashOfferDiscount int64       `json:"flashOfferDiscount"`
	IsTrial            bool        `json:"isTrial"`
	CreatedAt          time.Time   `json:"createdAt"`
	// Replayed is set when the server answered from a stored idempotent response.
	Replayed bool `json:"-"`
}

// APIError is a non-2xx answer carrying the server's error envelope message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("storefront api responded %d", e.Status)
	}
	return fmt.Sprintf("storefront api responded %d: %s", e.Status, e.Message)
}
