package commands

import (
	"context"
	"log/slog"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/pkg/patch"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/internal/usecase/shared"
)

var (
	ErrPromotionNotConfigured = errs.New("promotion record not configured")
	ErrInvalidPromotion       = errs.New("invalid promotion settings")
	ErrClaimRejected          = errs.New("flash offer claim rejected")
)

// StartFlashOfferInput overrides the stored values; nil fields keep them.
type StartFlashOfferInput struct {
	MaxClaims       *int
	DurationSeconds *int
	BannerText      *string
}

type PromotionCommands interface {
	StartFlashOffer(ctx context.Context, in StartFlashOfferInput) (*queries.FlashOfferView, error)
	StopFlashOffer(ctx context.Context) (*queries.FlashOfferView, error)
	// ClaimFlashOffer rejections are marked ErrClaimRejected and carry the promotion.ErrFlashOffer* reason.
	ClaimFlashOffer(ctx context.Context) (*queries.FlashOfferView, error)
	UpdateCheckoutDiscount(ctx context.Context, discountPercent int) (*queries.CheckoutDiscountView, error)
	UpdateTimeChallengeSettings(ctx context.Context, p promotion.SettingsPatch) (*queries.TimeChallengeSettingsView, error)
}

type promotionCommandsImpl struct {
	uow   shared.UnitOfWork
	cache PromotionCacheInvalidator
	clock clock.Clock
}

func NewPromotionCommands(uow shared.UnitOfWork, cache PromotionCacheInvalidator, clk clock.Clock) PromotionCommands {
	return &promotionCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (p *promotionCommandsImpl) StartFlashOffer(ctx context.Context, in StartFlashOfferInput) (*queries.FlashOfferView, error) {
	now := p.clock.Now()

	var started *promotion.FlashOffer
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().FlashOfferForUpdate(ctx)
		if err != nil {
			return mapMissingRow(err)
		}

		err = current.Start(
			now,
			patch.Coalesce(in.MaxClaims, current.MaxClaims()),
			patch.Coalesce(in.DurationSeconds, current.DurationSeconds()),
			patch.Coalesce(in.BannerText, current.BannerText()),
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidPromotion)
		}

		started, err = tx.Promotions().StartFlashOffer(ctx, tx.DB(), current)
		return mapMissingRow(err)
	})
	if err != nil {
		return nil, err
	}

	p.cache.Invalidate(ctx)
	slog.Info("flash offer started",
		"max_claims", started.MaxClaims(),
		"duration_seconds", started.DurationSeconds(),
		"ends_at", started.EndsAt())
	return queries.NewFlashOfferView(started, now), nil
}

func (p *promotionCommandsImpl) StopFlashOffer(ctx context.Context) (*queries.FlashOfferView, error) {
	now := p.clock.Now()

	var stopped *promotion.FlashOffer
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		stopped, err = tx.Promotions().StopFlashOffer(ctx, tx.DB(), now)
		return mapMissingRow(err)
	})
	if err != nil {
		return nil, err
	}

	p.cache.Invalidate(ctx)
	slog.Info("flash offer stopped", "claimed_count", stopped.ClaimedCount())
	return queries.NewFlashOfferView(stopped, now), nil
}

func (p *promotionCommandsImpl) ClaimFlashOffer(ctx context.Context) (*queries.FlashOfferView, error) {
	now := p.clock.Now()

	var claimed *promotion.FlashOffer
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offer, ok, err := tx.Promotions().ClaimFlashOffer(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		if ok {
			claimed = offer
			return nil
		}
		return p.explainRejection(ctx, tx, now)
	})
	if err != nil {
		return nil, err
	}

	p.cache.Invalidate(ctx)
	return queries.NewFlashOfferView(claimed, now), nil
}

func (p *promotionCommandsImpl) UpdateCheckoutDiscount(ctx context.Context, discountPercent int) (*queries.CheckoutDiscountView, error) {
	next, err := promotion.NewCheckoutDiscount(discountPercent, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromotion)
	}

	var saved *promotion.CheckoutDiscount
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		saved, err = tx.Promotions().UpdateCheckoutDiscount(ctx, tx.DB(), next)
		return mapMissingRow(err)
	})
	if err != nil {
		return nil, err
	}

	p.cache.Invalidate(ctx)
	slog.Info("checkout discount updated", "discount_percent", saved.DiscountPercent())
	return queries.NewCheckoutDiscountView(saved), nil
}

func (p *promotionCommandsImpl) UpdateTimeChallengeSettings(ctx context.Context, sp promotion.SettingsPatch) (*queries.TimeChallengeSettingsView, error) {
	now := p.clock.Now()

	var saved *promotion.TimeChallengeSettings
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().TimeChallengeSettingsForUpdate(ctx)
		if err != nil {
			return mapMissingRow(err)
		}
		if err := current.Apply(sp, now); err != nil {
			return errs.Mark(err, ErrInvalidPromotion)
		}
		saved, err = tx.Promotions().UpdateTimeChallengeSettings(ctx, tx.DB(), current)
		return mapMissingRow(err)
	})
	if err != nil {
		return nil, err
	}

	p.cache.Invalidate(ctx)
	slog.Info("time challenge settings updated",
		"is_active", saved.IsActive(),
		"duration_seconds", saved.DurationSeconds(),
		"discount_percent", saved.DiscountPercent())
	return queries.NewTimeChallengeSettingsView(saved), nil
}

// explainRejection runs after the guarded increment matched no row.
func (p *promotionCommandsImpl) explainRejection(ctx context.Context, tx shared.Tx, now time.Time) error {
	current, err := tx.Reads().FlashOffer(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(promotion.ErrFlashOfferInactive, ErrClaimRejected)
		}
		return err
	}

	reason := current.ClaimBlocker(now)
	if reason == nil {
		// The last slot went to a concurrent claim between the update and this read.
		reason = promotion.ErrFlashOfferExhausted
	}
	return errs.Mark(reason, ErrClaimRejected)
}

func mapMissingRow(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrPromotionNotConfigured)
	}
	return err
}
