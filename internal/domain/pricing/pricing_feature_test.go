//go:build unit

package pricing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/challenge"
	"mysterybox-storefront/internal/domain/pricing"

	"github.com/cucumber/godog"
)

type pricingScenario struct {
	resolver *pricing.Resolver
	subtotal int64
	sources  pricing.Sources
	quote    pricing.Quote
}

func (s *pricingScenario) reset() {
	s.resolver = pricing.NewDefaultResolver()
	s.subtotal = 0
	s.sources = pricing.Sources{}
	s.quote = pricing.Quote{}
}

func (s *pricingScenario) shippingAndLimit(shipping, limit int) error {
	s.resolver = pricing.NewResolver(int64(shipping), int64(limit))
	return nil
}

func (s *pricingScenario) subtotalOf(amount int) error {
	s.subtotal = int64(amount)
	return nil
}

func (s *pricingScenario) flashOfferActive() error {
	s.sources.FlashOfferActive = true
	return nil
}

func (s *pricingScenario) timeChallengeRunning(pct int) error {
	s.sources.TimeChallenge = &pricing.RunState{Running: true, Active: true, Type: challenge.TypeTimer, DiscountPercent: pct}
	return nil
}

func (s *pricingScenario) timeChallengeExpired(duration, pct, passed int) error {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	run := challenge.NewRun(challenge.KindTime)
	if err := run.Start(start, challenge.Params{DurationSeconds: duration, DiscountPercent: pct}); err != nil {
		return err
	}
	run.Sample(start.Add(time.Duration(passed) * time.Second))
	s.sources.TimeChallenge = pricing.RunStateOf(run)
	return nil
}

func (s *pricingScenario) tryNowRunning(typ string, pct int) error {
	t, err := challenge.NewType(typ)
	if err != nil {
		return err
	}
	s.sources.TryNow = &pricing.RunState{Running: true, Active: true, Type: t, DiscountPercent: pct}
	return nil
}

func (s *pricingScenario) checkoutDiscount(pct int) error {
	s.sources.CheckoutDiscountPercent = &pct
	return nil
}

func (s *pricingScenario) resolve() error {
	s.quote = s.resolver.Resolve(s.subtotal, s.sources)
	return nil
}

func (s *pricingScenario) totalIs(want int) error {
	if s.quote.Total != int64(want) {
		return fmt.Errorf("expected total %d, got %d", want, s.quote.Total)
	}
	return nil
}

func (s *pricingScenario) tierIs(want string) error {
	if got := s.quote.Tier.String(); got != want {
		return fmt.Errorf("expected tier %q, got %q", want, got)
	}
	return nil
}

func (s *pricingScenario) lineCount(want int) error {
	if len(s.quote.Lines) != want {
		return fmt.Errorf("expected %d discount lines, got %d", want, len(s.quote.Lines))
	}
	return nil
}

func initializePricingScenario(ctx *godog.ScenarioContext) {
	s := &pricingScenario{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		s.reset()
		return ctx, nil
	})

	ctx.Step(`^shipping costs (\d+) and the flash offer covers the first (\d+)$`, s.shippingAndLimit)
	ctx.Step(`^a cart subtotal of (\d+)$`, s.subtotalOf)
	ctx.Step(`^the flash offer is effectively active$`, s.flashOfferActive)
	ctx.Step(`^a time challenge is running at (\d+) percent$`, s.timeChallengeRunning)
	ctx.Step(`^a time challenge ran for (\d+) seconds at (\d+) percent and (\d+) seconds passed$`, s.timeChallengeExpired)
	ctx.Step(`^a try-now "([^"]*)" challenge is running at (\d+) percent$`, s.tryNowRunning)
	ctx.Step(`^the checkout discount is (\d+) percent$`, s.checkoutDiscount)

	ctx.Step(`^the checkout total is resolved$`, s.resolve)

	ctx.Step(`^the total is (\d+)$`, s.totalIs)
	ctx.Step(`^the applied tier is "([^"]*)"$`, s.tierIs)
	ctx.Step(`^(\d+) discount lines? (?:is|are) shown$`, s.lineCount)
}

func TestPricingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializePricingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/pricing.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
