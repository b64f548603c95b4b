package storefront

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/challenge"
	"mysterybox-storefront/internal/domain/money"
	"mysterybox-storefront/internal/domain/pricing"
	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/countdown"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	FlashPoll    time.Duration
	SettingsPoll time.Duration
	SamplePeriod time.Duration
	// MaxStaleness is how old a promotion snapshot may be before pricing treats it as missing.
	MaxStaleness    time.Duration
	SubmitRetries   int
	RetryDelay      time.Duration
	CurrencySymbol  string
	ShippingCost    int64
	FlashOfferLimit int64
}

func ConfigFrom(c config.StorefrontConfig) Config {
	return Config{
		FlashPoll:       c.FlashPoll,
		SettingsPoll:    c.SettingsPoll,
		SamplePeriod:    c.SamplePeriod,
		MaxStaleness:    c.MaxStaleness,
		SubmitRetries:   c.SubmitRetries,
		RetryDelay:      500 * time.Millisecond,
		CurrencySymbol:  c.CurrencySymbol,
		ShippingCost:    c.ShippingCost,
		FlashOfferLimit: c.FlashOfferLimit,
	}
}

type CheckoutInput struct {
	Customer Customer
}

type CheckoutResult struct {
	Order *Order
	Quote pricing.Quote
	// ClaimLost is set when the order was placed under the flash offer but the
	// claim that followed was rejected. The order stands.
	ClaimLost bool
}

type FlashOfferState struct {
	Active           bool   `json:"isEffectivelyActive"`
	RemainingSeconds int    `json:"remainingSeconds"`
	RemainingClaims  int    `json:"remainingClaims"`
	BannerText       string `json:"bannerText"`
}

// View is a point-in-time copy of the session for rendering.
type View struct {
	Cart            []cart.Line      `json:"cart"`
	Subtotal        int64            `json:"subtotal"`
	TimeChallenge   challenge.View   `json:"timeChallenge"`
	TryNow          challenge.View   `json:"tryNow"`
	FlashOffer      *FlashOfferState `json:"flashOffer"`
	Quote           pricing.Quote    `json:"quote"`
	PromotionsStale bool             `json:"promotionsStale"`
}

// Session owns all shopper-local state. Methods are safe for concurrent use;
// the pollers started by Run share it with the caller.
type Session struct {
	mu sync.Mutex

	api      API
	store    CartStore
	clock    clock.Clock
	logger   *slog.Logger
	cfg      Config
	resolver *pricing.Resolver

	cart    *cart.Cart
	timeRun *challenge.Run
	tryNow  *challenge.Run
	gate    FlashGate

	flashOffer     *promotion.FlashOffer
	flashAt        time.Time
	flashCountdown *countdown.Countdown
	discount       *promotion.CheckoutDiscount
	discountAt     time.Time
	settings       *promotion.TimeChallengeSettings
	settingsAt     time.Time

	pendingKey  uuid.UUID
	pendingHash string
}

func NewSession(api API, store CartStore, clk clock.Clock, cfg Config, logger *slog.Logger) (*Session, error) {
	saved, err := store.Load()
	if err != nil {
		return nil, err
	}
	c := cart.New()
	c.Restore(saved.Items)

	return &Session{
		api:      api,
		store:    store,
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
		resolver: pricing.NewResolver(cfg.ShippingCost, cfg.FlashOfferLimit),
		cart:     c,
		timeRun:  challenge.NewRun(challenge.KindTime),
		tryNow:   challenge.NewRun(challenge.KindTryNow),
		gate:     RestoreFlashGate(saved.Flash),
	}, nil
}

func (s *Session) AddToCart(l cart.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Add(l); err != nil {
		return err
	}
	return s.persistLocked()
}

// UpdateQuantity ignores quantities below 1 and unknown products.
func (s *Session) UpdateQuantity(productID uuid.UUID, qty int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.UpdateQuantity(productID, qty) {
		return false, nil
	}
	return true, s.persistLocked()
}

func (s *Session) RemoveFromCart(productID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.Remove(productID) {
		return false, nil
	}
	return true, s.persistLocked()
}

func (s *Session) Cart() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// StartTimeChallenge starts a run from the last fetched settings.
func (s *Session) StartTimeChallenge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.settings == nil || !s.settings.IsActive() || !s.fresh(s.settingsAt, now) {
		return ErrChallengeUnavailable
	}
	return s.timeRun.Start(now, challenge.Params{
		DurationSeconds: s.settings.DurationSeconds(),
		DiscountPercent: s.settings.DiscountPercent(),
	})
}

// StartTryNow starts the try-now run and empties the cart.
func (s *Session) StartTryNow(p challenge.Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tryNow.Start(s.clock.Now(), p); err != nil {
		return err
	}
	if s.cart.IsEmpty() {
		return nil
	}
	s.cart.Clear()
	return s.persistLocked()
}

// Dismiss returns the run to Idle with no residual discount.
func (s *Session) Dismiss(kind challenge.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.run(kind).Reset()
}

// Sample advances both runs and re-evaluates the flash gate.
// It returns the kinds that timed out on this sample.
func (s *Session) Sample(now time.Time) []challenge.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sampleLocked(now)
}

// ObserveFlashOffer records a fetched offer and clears a non-empty cart on the rising edge.
func (s *Session) ObserveFlashOffer(offer *promotion.FlashOffer, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flashOffer = offer
	s.flashAt = now
	if offer != nil && offer.EndsAt() != nil {
		if s.flashCountdown == nil {
			s.flashCountdown = countdown.New(*offer.EndsAt())
		} else {
			s.flashCountdown.Retarget(*offer.EndsAt())
		}
	}
	return s.observeLocked(now)
}

func (s *Session) ObserveSettings(d *promotion.CheckoutDiscount, tc *promotion.TimeChallengeSettings, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount, s.discountAt = d, now
	s.settings, s.settingsAt = tc, now
}

func (s *Session) Quote(now time.Time) pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampleLocked(now)
	return s.resolver.Resolve(s.cart.Subtotal(), s.sourcesLocked(now))
}

func (s *Session) View(now time.Time) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampleLocked(now)

	v := View{
		Cart:            s.cart.Lines(),
		Subtotal:        s.cart.Subtotal(),
		TimeChallenge:   s.timeRun.View(),
		TryNow:          s.tryNow.View(),
		Quote:           s.resolver.Resolve(s.cart.Subtotal(), s.sourcesLocked(now)),
		PromotionsStale: !s.fresh(s.flashAt, now) || !s.fresh(s.discountAt, now) || !s.fresh(s.settingsAt, now),
	}
	if o := s.flashOffer; o != nil {
		v.FlashOffer = &FlashOfferState{
			Active:          o.IsEffectivelyActive(now),
			RemainingClaims: o.RemainingClaims(),
			BannerText:      o.BannerText(),
		}
		if s.flashCountdown != nil && o.IsActive() {
			v.FlashOffer.RemainingSeconds = s.flashCountdown.Sample(now)
		}
	}
	return v
}

// Checkout locks in the quote and flags, submits, and only after the server
// accepts the order claims the flash offer, completes the challenge runs that
// were running at capture and removes the ordered lines from the cart. Failure
// leaves the session untouched so the caller can retry with the same
// idempotency key.
func (s *Session) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	s.mu.Lock()
	now := s.clock.Now()
	s.sampleLocked(now)
	if s.cart.IsEmpty() {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	quote := s.resolver.Resolve(s.cart.Subtotal(), s.sourcesLocked(now))
	timeGen, tryNowGen := s.timeRun.Generation(), s.tryNow.Generation()
	req := OrderRequest{
		Customer:           in.Customer,
		Items:              s.cart.Lines(),
		Total:              money.Format(quote.Total, s.cfg.CurrencySymbol),
		IsFlashOffer:       quote.IsFlashOffer(),
		FlashOfferDiscount: quote.FlashOfferDiscount(),
		IsTryNowChallenge:  s.tryNow.IsActive(),
	}
	key := s.idempotencyKeyLocked(req)
	s.mu.Unlock()

	order, err := s.submit(ctx, req, key)
	if err != nil {
		return nil, err
	}

	res := &CheckoutResult{Order: order, Quote: quote}
	if quote.IsFlashOffer() && !order.IsTrial && !order.Replayed {
		offer, claimErr := s.api.ClaimFlashOffer(ctx)
		if claimErr != nil {
			res.ClaimLost = true
			s.logger.WarnContext(ctx, "flash offer claim lost after order was placed",
				slog.String("order_number", order.OrderNumber),
				slog.String("error", claimErr.Error()))
		} else {
			s.ObserveFlashOffer(offer, s.clock.Now())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeRun.CompleteGeneration(timeGen)
	s.tryNow.CompleteGeneration(tryNowGen)
	s.cart.Subtract(req.Items)
	s.pendingKey, s.pendingHash = uuid.Nil, ""
	if err := s.persistLocked(); err != nil {
		s.logger.WarnContext(ctx, "failed to persist cart after checkout", slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.OrderNumber),
		slog.String("tier", quote.Tier.String()),
		slog.Int64("total", quote.Total),
		slog.Bool("trial", order.IsTrial))
	return res, nil
}

func (s *Session) RefreshFlashOffer(ctx context.Context) error {
	offer, err := s.api.GetFlashOffer(ctx)
	if err != nil {
		return err
	}
	if s.ObserveFlashOffer(offer, s.clock.Now()) {
		s.logger.InfoContext(ctx, "flash offer started, cart cleared")
	}
	return nil
}

// RefreshSettings fetches the checkout discount and challenge settings concurrently.
// Each value is stored as soon as it arrives; one failing does not discard the other.
func (s *Session) RefreshSettings(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.api.GetCheckoutDiscount(gctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.discount, s.discountAt = d, s.clock.Now()
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		tc, err := s.api.GetTimeChallengeSettings(gctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.settings, s.settingsAt = tc, s.clock.Now()
		s.mu.Unlock()
		return nil
	})
	return g.Wait()
}

// Run drives the flash poll, the settings poll and the challenge sampler until ctx ends.
func (s *Session) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return countdown.Run(ctx, s.cfg.FlashPoll, s.clock, func(time.Time) {
			if err := s.RefreshFlashOffer(ctx); err != nil && ctx.Err() == nil {
				s.logger.WarnContext(ctx, "flash offer poll failed", slog.String("error", err.Error()))
			}
		})
	})
	g.Go(func() error {
		return countdown.Run(ctx, s.cfg.SettingsPoll, s.clock, func(time.Time) {
			if err := s.RefreshSettings(ctx); err != nil && ctx.Err() == nil {
				s.logger.WarnContext(ctx, "settings poll failed", slog.String("error", err.Error()))
			}
		})
	})
	g.Go(func() error {
		return countdown.Run(ctx, s.cfg.SamplePeriod, s.clock, func(now time.Time) {
			for _, kind := range s.Sample(now) {
				s.logger.InfoContext(ctx, "challenge timed out", slog.String("kind", string(kind)))
			}
		})
	})

	return g.Wait()
}

func (s *Session) submit(ctx context.Context, req OrderRequest, key uuid.UUID) (*Order, error) {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.SubmitRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		order, err := s.api.SubmitOrder(ctx, req, key)
		if err == nil {
			return order, nil
		}
		lastErr = err
		if !errors.Is(err, ErrRetryable) {
			break
		}
		s.logger.WarnContext(ctx, "order submission failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
	}
	return nil, lastErr
}

// idempotencyKeyLocked reuses the pending key while the request body is unchanged.
func (s *Session) idempotencyKeyLocked(req OrderRequest) uuid.UUID {
	raw, err := json.Marshal(req)
	if err != nil {
		return uuid.New()
	}
	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])

	if s.pendingKey == uuid.Nil || s.pendingHash != hash {
		s.pendingKey, s.pendingHash = uuid.New(), hash
	}
	return s.pendingKey
}

func (s *Session) sampleLocked(now time.Time) []challenge.Kind {
	var timedOut []challenge.Kind
	for _, r := range []*challenge.Run{s.timeRun, s.tryNow} {
		if r.Sample(now) {
			timedOut = append(timedOut, r.Kind())
		}
	}
	s.observeLocked(now)
	return timedOut
}

// observeLocked feeds the gate and persists its state whenever it changes,
// so a restarted session does not mistake an already running offer for a new one.
func (s *Session) observeLocked(now time.Time) bool {
	before := s.gate.State()
	rising := s.gate.Observe(s.flashOffer, now)
	cleared := rising && !s.cart.IsEmpty()
	if cleared {
		s.cart.Clear()
	}
	if cleared || !before.equal(s.gate.State()) {
		_ = s.persistLocked()
	}
	return cleared
}

// sourcesLocked treats snapshots older than MaxStaleness as missing.
func (s *Session) sourcesLocked(now time.Time) pricing.Sources {
	src := pricing.Sources{
		TimeChallenge: pricing.RunStateOf(s.timeRun),
		TryNow:        pricing.RunStateOf(s.tryNow),
	}
	if s.fresh(s.flashAt, now) {
		src.FlashOfferActive = pricing.FlashOfferActive(s.flashOffer, now)
	}
	if s.fresh(s.discountAt, now) && s.discount != nil {
		pct := s.discount.DiscountPercent()
		src.CheckoutDiscountPercent = &pct
	}
	return src
}

func (s *Session) fresh(at, now time.Time) bool {
	if at.IsZero() {
		return false
	}
	return s.cfg.MaxStaleness <= 0 || now.Sub(at) <= s.cfg.MaxStaleness
}

func (s *Session) run(kind challenge.Kind) *challenge.Run {
	if kind == challenge.KindTryNow {
		return s.tryNow
	}
	return s.timeRun
}

func (s *Session) persistLocked() error {
	if err := s.store.Save(SavedCart{Items: s.cart.Lines(), Flash: s.gate.State()}); err != nil {
		s.logger.Warn("failed to persist cart", slog.String("error", err.Error()))
		return err
	}
	return nil
}
