package queries

import (
	"context"
	"log/slog"
	"time"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/challenge"
	"mysterybox-storefront/internal/domain/pricing"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
)

// DeclaredRun is the client's own account of a challenge run at quote time.
type DeclaredRun struct {
	Running         bool
	Type            challenge.Type
	DiscountPercent int
}

type QuoteInput struct {
	Lines         []cart.Line
	TimeChallenge *DeclaredRun
	TryNow        *DeclaredRun
}

type CheckoutQuoteView struct {
	pricing.Quote
	TierName           string    `json:"tierName"`
	IsFlashOffer       bool      `json:"isFlashOffer"`
	FlashOfferDiscount int64     `json:"flashOfferDiscount"`
	SnapshotAvailable  bool      `json:"snapshotAvailable"`
	ServerTime         time.Time `json:"serverTime"`
}

type CheckoutQueries interface {
	Quote(ctx context.Context, in QuoteInput) (*CheckoutQuoteView, error)
}

type checkoutQueriesImpl struct {
	promotions PromotionQueries
	resolver   *pricing.Resolver
	clock      clock.Clock
}

func NewCheckoutQueries(promotions PromotionQueries, cfg config.Config, clk clock.Clock) CheckoutQueries {
	return &checkoutQueriesImpl{
		promotions: promotions,
		resolver:   pricing.NewResolver(cfg.Promotion.ShippingCost, cfg.Promotion.FlashOfferLimit),
		clock:      clk,
	}
}

// Quote prices the cart against the current promotions. Without a snapshot every tier is off
// and the cart is quoted at full price.
func (q *checkoutQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*CheckoutQuoteView, error) {
	now := q.clock.Now()
	subtotal := cart.Subtotal(in.Lines)

	state, err := q.promotions.State(ctx)
	if err != nil {
		slog.WarnContext(ctx, "promotion snapshot unavailable, quoting at full price", slog.Any("error", err))
		state = nil
	}

	src := pricing.Sources{}
	if state != nil {
		src = q.sources(state, in, now)
	}

	quote := q.resolver.Resolve(subtotal, src)
	return &CheckoutQuoteView{
		Quote:              quote,
		TierName:           quote.Tier.String(),
		IsFlashOffer:       quote.IsFlashOffer(),
		FlashOfferDiscount: quote.FlashOfferDiscount(),
		SnapshotAvailable:  state != nil,
		ServerTime:         now,
	}, nil
}

// The time challenge percent always comes from the stored settings, and only while they are enabled.
func (q *checkoutQueriesImpl) sources(state *PromotionState, in QuoteInput, now time.Time) pricing.Sources {
	src := pricing.Sources{
		FlashOfferActive: pricing.FlashOfferActive(state.FlashOffer, now),
	}

	if tc := in.TimeChallenge; tc != nil && tc.Running && state.TimeChallenge != nil && state.TimeChallenge.IsActive() {
		src.TimeChallenge = &pricing.RunState{
			Running:         true,
			Active:          true,
			Type:            challenge.TypeTimer,
			DiscountPercent: state.TimeChallenge.DiscountPercent(),
		}
	}

	if tn := in.TryNow; tn != nil && tn.Running {
		t := tn.Type
		if t == "" {
			t = challenge.TypeTimer
		}
		src.TryNow = &pricing.RunState{
			Running:         true,
			Active:          true,
			Type:            t,
			DiscountPercent: tn.DiscountPercent,
		}
	}

	if state.CheckoutDiscount.Applies() {
		pct := state.CheckoutDiscount.DiscountPercent()
		src.CheckoutDiscountPercent = &pct
	}
	return src
}
