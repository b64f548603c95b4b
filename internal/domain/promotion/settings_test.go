//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutDiscount(t *testing.T) {
	for _, pct := range []int{0, 10, 100} {
		d, err := promotion.NewCheckoutDiscount(pct, now)
		require.NoError(t, err)
		assert.Equal(t, pct, d.DiscountPercent())
		assert.Equal(t, pct > 0, d.Applies())
	}

	for _, pct := range []int{-1, 101} {
		_, err := promotion.NewCheckoutDiscount(pct, now)
		assert.ErrorIs(t, err, promotion.ErrInvalidDiscountPercent)
	}

	var missing *promotion.CheckoutDiscount
	assert.False(t, missing.Applies())
}

func TestTimeChallengeSettingsApply(t *testing.T) {
	base := func() *promotion.TimeChallengeSettings {
		return promotion.ReconstructTimeChallengeSettings("Beat the clock", true, 300, 30, now)
	}

	t.Run("partial update", func(t *testing.T) {
		s := base()
		later := now.Add(time.Minute)
		require.NoError(t, s.Apply(promotion.SettingsPatch{DiscountPercent: patch.Ptr(15)}, later))

		assert.Equal(t, "Beat the clock", s.Name())
		assert.True(t, s.IsActive())
		assert.Equal(t, 300, s.DurationSeconds())
		assert.Equal(t, 15, s.DiscountPercent())
		assert.Equal(t, later, s.UpdatedAt())
	})

	t.Run("toggle availability", func(t *testing.T) {
		s := base()
		require.NoError(t, s.Apply(promotion.SettingsPatch{IsActive: patch.Ptr(false)}, now))
		assert.False(t, s.IsActive())
	})

	tests := []struct {
		name  string
		patch promotion.SettingsPatch
		errIs error
	}{
		{"blank name", promotion.SettingsPatch{Name: patch.Ptr("   ")}, promotion.ErrEmptyChallengeName},
		{"zero duration", promotion.SettingsPatch{DurationSeconds: patch.Ptr(0)}, promotion.ErrInvalidDuration},
		{"percent above 100", promotion.SettingsPatch{DiscountPercent: patch.Ptr(101)}, promotion.ErrInvalidDiscountPercent},
		{"negative percent", promotion.SettingsPatch{DiscountPercent: patch.Ptr(-5)}, promotion.ErrInvalidDiscountPercent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			err := s.Apply(tt.patch, now.Add(time.Minute))
			require.ErrorIs(t, err, tt.errIs)

			assert.Equal(t, "Beat the clock", s.Name())
			assert.Equal(t, 300, s.DurationSeconds())
			assert.Equal(t, 30, s.DiscountPercent())
			assert.Equal(t, now, s.UpdatedAt())
		})
	}
}
