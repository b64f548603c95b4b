//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func startedOffer(t *testing.T, maxClaims, duration int) *promotion.FlashOffer {
	t.Helper()
	offer := promotion.ReconstructFlashOffer(false, 200, 0, 60, nil, nil, "", now)
	require.NoError(t, offer.Start(now, maxClaims, duration, "first 200 free"))
	return offer
}

func TestFlashOfferStart(t *testing.T) {
	offer := startedOffer(t, 5, 30)

	require.NotNil(t, offer.StartedAt())
	require.NotNil(t, offer.EndsAt())
	assert.True(t, offer.IsActive())
	assert.Equal(t, now, *offer.StartedAt())
	assert.Equal(t, now.Add(30*time.Second), *offer.EndsAt())
	assert.True(t, offer.EndsAt().After(*offer.StartedAt()))
	assert.Equal(t, 0, offer.ClaimedCount())
	assert.Equal(t, 5, offer.RemainingClaims())
	assert.Equal(t, 30, offer.RemainingSeconds(now))

	t.Run("restart resets claims", func(t *testing.T) {
		o := promotion.ReconstructFlashOffer(true, 5, 5, 30, offer.StartedAt(), offer.EndsAt(), "", now)
		require.NoError(t, o.Start(now.Add(time.Minute), 5, 30, ""))
		assert.Equal(t, 0, o.ClaimedCount())
		assert.True(t, o.IsEffectivelyActive(now.Add(time.Minute)))
	})

	t.Run("invalid parameters leave offer untouched", func(t *testing.T) {
		o := promotion.ReconstructFlashOffer(false, 200, 0, 60, nil, nil, "", now)
		assert.ErrorIs(t, o.Start(now, 0, 30, ""), promotion.ErrInvalidMaxClaims)
		assert.ErrorIs(t, o.Start(now, 5, 0, ""), promotion.ErrInvalidDuration)
		assert.False(t, o.IsActive())
		assert.Nil(t, o.EndsAt())
	})
}

func TestFlashOfferEffectiveActivation(t *testing.T) {
	ends := now.Add(30 * time.Second)

	tests := []struct {
		name    string
		offer   *promotion.FlashOffer
		at      time.Time
		blocker error
	}{
		{
			name:  "active within window with capacity",
			offer: promotion.ReconstructFlashOffer(true, 5, 4, 30, &now, &ends, "", now),
			at:    now.Add(10 * time.Second),
		},
		{
			name:    "stopped",
			offer:   promotion.ReconstructFlashOffer(false, 5, 0, 30, &now, &ends, "", now),
			at:      now,
			blocker: promotion.ErrFlashOfferInactive,
		},
		{
			name:    "active flag without endsAt",
			offer:   promotion.ReconstructFlashOffer(true, 5, 0, 30, nil, nil, "", now),
			at:      now,
			blocker: promotion.ErrFlashOfferInactive,
		},
		{
			name:    "exactly at endsAt",
			offer:   promotion.ReconstructFlashOffer(true, 5, 0, 30, &now, &ends, "", now),
			at:      ends,
			blocker: promotion.ErrFlashOfferExpired,
		},
		{
			name:    "capacity exhausted while flag still true",
			offer:   promotion.ReconstructFlashOffer(true, 5, 5, 30, &now, &ends, "", now),
			at:      now.Add(time.Second),
			blocker: promotion.ErrFlashOfferExhausted,
		},
		{
			name:    "nil offer",
			offer:   nil,
			at:      now,
			blocker: promotion.ErrFlashOfferInactive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.offer.ClaimBlocker(tt.at)
			if tt.blocker == nil {
				assert.NoError(t, err)
				assert.True(t, tt.offer.IsEffectivelyActive(tt.at))
				return
			}
			assert.ErrorIs(t, err, tt.blocker)
			assert.False(t, tt.offer.IsEffectivelyActive(tt.at))
		})
	}
}

func TestFlashOfferStop(t *testing.T) {
	offer := startedOffer(t, 5, 30)
	offer.Stop(now.Add(time.Second))

	assert.False(t, offer.IsActive())
	assert.False(t, offer.IsEffectivelyActive(now.Add(time.Second)))
	assert.NotNil(t, offer.EndsAt(), "stop keeps the window for display")
}

func TestFlashOfferRemainingSecondsNeverNegative(t *testing.T) {
	offer := startedOffer(t, 5, 2)
	assert.Equal(t, 1, offer.RemainingSeconds(now.Add(500*time.Millisecond)))
	assert.Equal(t, 0, offer.RemainingSeconds(now.Add(2*time.Second)))
	assert.Equal(t, 0, offer.RemainingSeconds(now.Add(time.Hour)))
}
