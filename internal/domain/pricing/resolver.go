package pricing

import (
	"time"

	"mysterybox-storefront/internal/domain/challenge"
	"mysterybox-storefront/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

const (
	DefaultShippingCost    int64 = 39
	DefaultFlashOfferLimit int64 = 200
)

// Tier is the highest-precedence mechanism that shaped a quote.
type Tier int

const (
	TierNone Tier = iota
	TierFlashOffer
	TierTryNowFlash
	TierChallenge
	TierCheckoutDiscount
)

func (t Tier) String() string {
	switch t {
	case TierFlashOffer:
		return "flash_offer"
	case TierTryNowFlash:
		return "try_now_flash"
	case TierChallenge:
		return "challenge"
	case TierCheckoutDiscount:
		return "checkout_discount"
	}
	return "none"
}

type Source string

const (
	SourceFlashOffer       Source = "flash_offer"
	SourceTryNowFlash      Source = "try_now_flash"
	SourceTimeChallenge    Source = "time_challenge"
	SourceTryNowTimer      Source = "try_now_timer"
	SourceCheckoutDiscount Source = "checkout_discount"
)

// RunState is the part of a challenge run the resolver reads, captured at one instant.
type RunState struct {
	Running         bool
	Active          bool
	Type            challenge.Type
	DiscountPercent int
}

func RunStateOf(r *challenge.Run) *RunState {
	if r == nil {
		return nil
	}
	return &RunState{
		Running:         r.Status() == challenge.StatusRunning,
		Active:          r.IsActive(),
		Type:            r.Type(),
		DiscountPercent: r.EffectiveDiscountPercent(),
	}
}

// Sources is the promotion snapshot fed to Resolve. Nil fields are inactive.
type Sources struct {
	FlashOfferActive        bool
	TimeChallenge           *RunState
	TryNow                  *RunState
	CheckoutDiscountPercent *int
}

// FlashOfferActive evaluates the gate for a possibly missing offer.
func FlashOfferActive(offer *promotion.FlashOffer, now time.Time) bool {
	return offer != nil && offer.IsEffectivelyActive(now)
}

type Line struct {
	Source  Source `json:"source"`
	Percent int    `json:"percent,omitempty"`
	Amount  int64  `json:"amount"`
}

type Quote struct {
	Subtotal      int64  `json:"subtotal"`
	Shipping      int64  `json:"shipping"`
	Tier          Tier   `json:"tier"`
	Lines         []Line `json:"lines"`
	DiscountTotal int64  `json:"discountTotal"`
	Total         int64  `json:"total"`
}

// IsFlashOffer reports whether the quote was priced by the global flash offer.
func (q Quote) IsFlashOffer() bool {
	return q.Tier == TierFlashOffer
}

// FlashOfferDiscount is the amount covered by the free-first-N mechanic, whichever tier applied it.
func (q Quote) FlashOfferDiscount() int64 {
	if q.Tier != TierFlashOffer && q.Tier != TierTryNowFlash {
		return 0
	}
	return q.DiscountTotal
}

type Resolver struct {
	ShippingCost    int64
	FlashOfferLimit int64
}

func NewDefaultResolver() *Resolver {
	return &Resolver{
		ShippingCost:    DefaultShippingCost,
		FlashOfferLimit: DefaultFlashOfferLimit,
	}
}

func NewResolver(shippingCost, flashOfferLimit int64) *Resolver {
	return &Resolver{ShippingCost: shippingCost, FlashOfferLimit: flashOfferLimit}
}

// Resolve applies exactly one of: the flash offer, the try-now flash mode,
// or the additive sum of challenge and checkout percentages.
func (r *Resolver) Resolve(subtotal int64, src Sources) Quote {
	if subtotal < 0 {
		subtotal = 0
	}
	q := Quote{Subtotal: subtotal, Shipping: r.ShippingCost}

	switch {
	case src.FlashOfferActive:
		q.Tier = TierFlashOffer
		q.add(Line{Source: SourceFlashOffer, Amount: min(subtotal, r.FlashOfferLimit)})
	case src.TryNow != nil && src.TryNow.Active && src.TryNow.Type == challenge.TypeFlash:
		q.Tier = TierTryNowFlash
		q.add(Line{Source: SourceTryNowFlash, Amount: min(subtotal, r.FlashOfferLimit)})
	default:
		if tc := src.TimeChallenge; tc != nil && tc.Running && tc.DiscountPercent > 0 {
			q.Tier = TierChallenge
			q.add(percentLine(SourceTimeChallenge, subtotal, tc.DiscountPercent))
		}
		if tn := src.TryNow; tn != nil && tn.Running && tn.Type == challenge.TypeTimer && tn.DiscountPercent > 0 {
			q.Tier = TierChallenge
			q.add(percentLine(SourceTryNowTimer, subtotal, tn.DiscountPercent))
		}
		if pct := src.CheckoutDiscountPercent; pct != nil && *pct > 0 {
			if q.Tier == TierNone {
				q.Tier = TierCheckoutDiscount
			}
			q.add(percentLine(SourceCheckoutDiscount, subtotal, *pct))
		}
	}

	q.Total = max(0, subtotal+q.Shipping-q.DiscountTotal)
	return q
}

func (q *Quote) add(l Line) {
	q.Lines = append(q.Lines, l)
	q.DiscountTotal += l.Amount
}

func percentLine(src Source, subtotal int64, pct int) Line {
	return Line{Source: src, Percent: pct, Amount: PercentOf(subtotal, pct)}
}

// PercentOf is round(amount × pct / 100), rounding halves up.
func PercentOf(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}

// ApplyCheckoutDiscountAgain multiplies an already-discounted total by (1 - pct/100),
// rounding to whole currency units. Used only in the reapply compatibility mode.
func ApplyCheckoutDiscountAgain(total int64, pct int) int64 {
	if pct <= 0 {
		return total
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(pct)).Div(decimal.NewFromInt(100)))
	return decimal.NewFromInt(total).Mul(factor).Round(0).IntPart()
}
