//go:build unit

package challenge_test

import (
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/challenge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestRunLifecycle(t *testing.T) {
	t.Run("start then timeout after duration", func(t *testing.T) {
		for _, tc := range []struct{ duration, pct int }{{1, 0}, {30, 30}, {300, 100}} {
			r := challenge.NewRun(challenge.KindTime)
			require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: tc.duration, DiscountPercent: tc.pct}))
			assert.Equal(t, tc.pct, r.EffectiveDiscountPercent())

			var timeouts int
			for now := t0; !now.After(t0.Add(time.Duration(tc.duration) * time.Second)); now = now.Add(100 * time.Millisecond) {
				if r.Sample(now) {
					timeouts++
				}
			}
			assert.Equal(t, 1, timeouts)
			assert.Equal(t, challenge.StatusTimedOut, r.Status())
			assert.Equal(t, 0, r.EffectiveDiscountPercent())
			assert.Equal(t, 0, r.TimeRemaining())
			assert.False(t, r.IsActive())
		}
	})

	t.Run("remaining floors elapsed seconds", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTryNow)
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 30, DiscountPercent: 20}))
		assert.False(t, r.Sample(t0.Add(1900*time.Millisecond)))
		assert.Equal(t, 29, r.TimeRemaining())
		assert.True(t, r.IsActive())
	})

	t.Run("complete only from running", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTime)
		assert.False(t, r.Complete())
		assert.Equal(t, challenge.StatusIdle, r.Status())

		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 10, DiscountPercent: 30}))
		assert.True(t, r.Complete())
		assert.Equal(t, challenge.StatusCompleted, r.Status())
		assert.Equal(t, 0, r.EffectiveDiscountPercent())

		assert.False(t, r.Complete())
		assert.False(t, r.Sample(t0.Add(time.Hour)), "completed runs never time out")
		assert.Equal(t, challenge.StatusCompleted, r.Status())
	})

	t.Run("complete by generation ignores a restarted run", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTryNow)
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 30, DiscountPercent: 20}))
		first := r.Generation()

		r.Reset()
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 30, DiscountPercent: 20}))
		assert.NotEqual(t, first, r.Generation())

		assert.False(t, r.CompleteGeneration(first))
		assert.Equal(t, challenge.StatusRunning, r.Status())
		assert.True(t, r.CompleteGeneration(r.Generation()))
		assert.Equal(t, challenge.StatusCompleted, r.Status())
	})

	t.Run("complete after timeout is a silent no-op", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTime)
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 1, DiscountPercent: 30}))
		require.True(t, r.Sample(t0.Add(time.Second)))
		assert.False(t, r.Complete())
		assert.Equal(t, challenge.StatusTimedOut, r.Status())
	})

	t.Run("start from terminal state re-initializes", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTime)
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 1, DiscountPercent: 10}))
		require.True(t, r.Sample(t0.Add(2*time.Second)))

		restart := t0.Add(5 * time.Second)
		require.NoError(t, r.Start(restart, challenge.Params{DurationSeconds: 60, DiscountPercent: 25}))
		assert.Equal(t, challenge.StatusRunning, r.Status())
		assert.Equal(t, 60, r.TimeRemaining())
		assert.Equal(t, restart, *r.StartTime())
		assert.Equal(t, 25, r.EffectiveDiscountPercent())
	})

	t.Run("reset clears everything", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTryNow)
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 30, DiscountPercent: 50, Type: challenge.TypeFlash}))
		r.Reset()

		assert.Equal(t, challenge.KindTryNow, r.Kind())
		assert.Equal(t, challenge.StatusIdle, r.Status())
		assert.Nil(t, r.StartTime())
		assert.Zero(t, r.DurationSeconds())
		assert.Zero(t, r.DiscountPercent())
		assert.Equal(t, challenge.Type(""), r.Type())
		assert.Equal(t, 0, r.EffectiveDiscountPercent())
	})

	t.Run("invalid params rejected", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTime)
		assert.ErrorIs(t, r.Start(t0, challenge.Params{DurationSeconds: 0}), challenge.ErrInvalidDuration)
		assert.ErrorIs(t, r.Start(t0, challenge.Params{DurationSeconds: 5, DiscountPercent: 101}), challenge.ErrInvalidPercent)
		assert.Equal(t, challenge.StatusIdle, r.Status())
	})

	t.Run("type defaults to timer", func(t *testing.T) {
		r := challenge.NewRun(challenge.KindTryNow)
		require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 5}))
		assert.Equal(t, challenge.TypeTimer, r.Type())
	})
}

func TestLegacyNames(t *testing.T) {
	assert.Equal(t, "started", challenge.StatusRunning.LegacyName(challenge.KindTime))
	assert.Equal(t, "expired", challenge.StatusTimedOut.LegacyName(challenge.KindTime))
	assert.Equal(t, "active", challenge.StatusRunning.LegacyName(challenge.KindTryNow))
	assert.Equal(t, "failed", challenge.StatusTimedOut.LegacyName(challenge.KindTryNow))
	assert.Equal(t, "completed", challenge.StatusCompleted.LegacyName(challenge.KindTryNow))
	assert.Equal(t, "idle", challenge.StatusIdle.LegacyName(challenge.KindTime))
}

func TestView(t *testing.T) {
	r := challenge.NewRun(challenge.KindTryNow)
	require.NoError(t, r.Start(t0, challenge.Params{DurationSeconds: 30, DiscountPercent: 10, Type: challenge.TypeFlash}))
	r.Sample(t0.Add(5 * time.Second))

	v := r.View()
	assert.Equal(t, challenge.View{
		Kind:            challenge.KindTryNow,
		Status:          challenge.StatusRunning,
		LegacyStatus:    "active",
		Type:            challenge.TypeFlash,
		StartTime:       &t0,
		DurationSeconds: 30,
		DiscountPercent: 10,
		TimeRemaining:   25,
		Active:          true,
	}, v)

	// views are detached copies
	*v.StartTime = t0.Add(time.Hour)
	assert.Equal(t, t0, *r.StartTime())
}

func TestParse(t *testing.T) {
	k, err := challenge.NewKind("trynow")
	require.NoError(t, err)
	assert.Equal(t, challenge.KindTryNow, k)
	_, err = challenge.NewKind("bogus")
	assert.ErrorIs(t, err, challenge.ErrInvalidKind)

	typ, err := challenge.NewType("")
	require.NoError(t, err)
	assert.Equal(t, challenge.TypeTimer, typ)
	_, err = challenge.NewType("spin")
	assert.ErrorIs(t, err, challenge.ErrInvalidType)
}
