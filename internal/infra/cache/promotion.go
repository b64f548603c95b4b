package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const promotionSnapshotKey = "mysterybox:promotions:snapshot:v1"

type flashOfferRecord struct {
	IsActive        bool       `json:"is_active"`
	MaxClaims       int        `json:"max_claims"`
	ClaimedCount    int        `json:"claimed_count"`
	DurationSeconds int        `json:"duration_seconds"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	BannerText      string     `json:"banner_text"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type checkoutDiscountRecord struct {
	DiscountPercent int       `json:"discount_percent"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type timeChallengeRecord struct {
	Name            string    `json:"name"`
	IsActive        bool      `json:"is_active"`
	DurationSeconds int       `json:"duration_seconds"`
	DiscountPercent int       `json:"discount_percent"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type snapshotRecord struct {
	FlashOffer       *flashOfferRecord       `json:"flash_offer,omitempty"`
	CheckoutDiscount *checkoutDiscountRecord `json:"checkout_discount,omitempty"`
	TimeChallenge    *timeChallengeRecord    `json:"time_challenge,omitempty"`
}

// PromotionCache stores the raw promotion records in Redis for a short TTL.
// Redis failures are logged and reported as misses.
type PromotionCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewPromotionCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *PromotionCache {
	return &PromotionCache{client: client, ttl: ttl, logger: logger}
}

func (c *PromotionCache) Get(ctx context.Context) (*queries.PromotionState, bool) {
	raw, err := c.client.Get(ctx, promotionSnapshotKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "promotion cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var rec snapshotRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		c.logger.WarnContext(ctx, "promotion cache entry corrupt", slog.String("error", err.Error()))
		c.Invalidate(ctx)
		return nil, false
	}
	return rec.toState(), true
}

func (c *PromotionCache) Set(ctx context.Context, state *queries.PromotionState) {
	if state == nil || c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(fromState(state))
	if err != nil {
		c.logger.WarnContext(ctx, "promotion cache encode failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, promotionSnapshotKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "promotion cache write failed", slog.String("error", err.Error()))
	}
}

func (c *PromotionCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, promotionSnapshotKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "promotion cache invalidate failed", slog.String("error", err.Error()))
	}
}

func fromState(s *queries.PromotionState) snapshotRecord {
	var rec snapshotRecord
	if f := s.FlashOffer; f != nil {
		rec.FlashOffer = &flashOfferRecord{
			IsActive:        f.IsActive(),
			MaxClaims:       f.MaxClaims(),
			ClaimedCount:    f.ClaimedCount(),
			DurationSeconds: f.DurationSeconds(),
			StartedAt:       f.StartedAt(),
			EndsAt:          f.EndsAt(),
			BannerText:      f.BannerText(),
			UpdatedAt:       f.UpdatedAt(),
		}
	}
	if d := s.CheckoutDiscount; d != nil {
		rec.CheckoutDiscount = &checkoutDiscountRecord{DiscountPercent: d.DiscountPercent(), UpdatedAt: d.UpdatedAt()}
	}
	if t := s.TimeChallenge; t != nil {
		rec.TimeChallenge = &timeChallengeRecord{
			Name:            t.Name(),
			IsActive:        t.IsActive(),
			DurationSeconds: t.DurationSeconds(),
			DiscountPercent: t.DiscountPercent(),
			UpdatedAt:       t.UpdatedAt(),
		}
	}
	return rec
}

func (r snapshotRecord) toState() *queries.PromotionState {
	s := &queries.PromotionState{}
	if f := r.FlashOffer; f != nil {
		s.FlashOffer = promotion.ReconstructFlashOffer(
			f.IsActive, f.MaxClaims, f.ClaimedCount, f.DurationSeconds,
			f.StartedAt, f.EndsAt, f.BannerText, f.UpdatedAt,
		)
	}
	if d := r.CheckoutDiscount; d != nil {
		s.CheckoutDiscount = promotion.ReconstructCheckoutDiscount(d.DiscountPercent, d.UpdatedAt)
	}
	if t := r.TimeChallenge; t != nil {
		s.TimeChallenge = promotion.ReconstructTimeChallengeSettings(t.Name, t.IsActive, t.DurationSeconds, t.DiscountPercent, t.UpdatedAt)
	}
	return s
}

// NoopPromotionCache is used when no Redis address is configured.
type NoopPromotionCache struct{}

func (NoopPromotionCache) Get(context.Context) (*queries.PromotionState, bool) { return nil, false }
func (NoopPromotionCache) Set(context.Context, *queries.PromotionState)        {}
func (NoopPromotionCache) Invalidate(context.Context)                          {}
