//go:build unit

package storefront_test

import (
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashGate_Observe(t *testing.T) {
	var g storefront.FlashGate
	now := baseTime

	assert.False(t, g.Observe(nil, now))
	assert.False(t, g.Observe(inactiveOffer(), now))
	assert.True(t, g.Observe(activeOffer(5, 0), now), "rising edge")
	assert.False(t, g.Observe(activeOffer(5, 1), now.Add(time.Second)), "still active")
	assert.True(t, g.Active())

	assert.False(t, g.Observe(activeOffer(5, 5), now.Add(2*time.Second)), "exhausted is a falling edge")
	assert.False(t, g.Active())

	started := now.Add(3 * time.Second)
	ends := started.Add(time.Minute)
	restarted := promotion.ReconstructFlashOffer(true, 5, 0, 60, &started, &ends, "", started)
	assert.True(t, g.Observe(restarted, started), "a restart is a new rising edge")

	assert.False(t, g.Observe(restarted, ends), "expiry by time alone")
	assert.False(t, g.Active())
}

func TestFlashGate_Restore(t *testing.T) {
	var live storefront.FlashGate
	require.True(t, live.Observe(activeOffer(5, 0), baseTime))

	restored := storefront.RestoreFlashGate(live.State())
	assert.True(t, restored.Active())
	assert.False(t, restored.Observe(activeOffer(5, 2), baseTime.Add(time.Second)), "same window is not an edge")

	started := baseTime.Add(time.Hour)
	ends := started.Add(time.Minute)
	next := promotion.ReconstructFlashOffer(true, 5, 0, 60, &started, &ends, "", started)
	assert.True(t, restored.Observe(next, started), "different window is an edge")

	var fresh storefront.FlashGate
	assert.True(t, fresh.Observe(activeOffer(5, 0), baseTime), "nothing restored means the first active sample is an edge")
}
