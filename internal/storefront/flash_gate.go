package storefront

import (
	"time"

	"mysterybox-storefront/internal/domain/promotion"
)

// FlashGateState is the gate's last observation. StartedAt identifies the
// offer window so a restored gate can tell the same window from a new one.
type FlashGateState struct {
	Active    bool       `json:"active"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`
}

func (s FlashGateState) equal(o FlashGateState) bool {
	return s.Active == o.Active && sameInstant(s.StartedAt, o.StartedAt) && sameInstant(s.EndsAt, o.EndsAt)
}

// FlashGate remembers whether the offer was effectively active at the previous
// observation so callers can react to the rising edge only.
type FlashGate struct {
	state FlashGateState
}

// RestoreFlashGate resumes from a persisted observation.
func RestoreFlashGate(st FlashGateState) FlashGate {
	return FlashGate{state: st}
}

// Observe reports true exactly when the offer goes from not effectively active
// to active, or when an active offer belongs to a different window than the
// active one seen last.
func (g *FlashGate) Observe(offer *promotion.FlashOffer, now time.Time) bool {
	next := FlashGateState{Active: offer != nil && offer.IsEffectivelyActive(now)}
	if offer != nil {
		next.StartedAt = copyTime(offer.StartedAt())
		next.EndsAt = copyTime(offer.EndsAt())
	}
	sameWindow := g.state.Active && sameInstant(g.state.StartedAt, next.StartedAt)
	g.state = next
	return next.Active && !sameWindow
}

func (g *FlashGate) Active() bool {
	return g.state.Active
}

func (g *FlashGate) State() FlashGateState {
	return g.state
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
