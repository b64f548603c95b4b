//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"mysterybox-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("marked error matches sentinel and keeps cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(err, sentinel))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("unique violation"), sentinel), "creating order")

		assert.True(t, errors.Is(err, sentinel))
		assert.True(t, errs.Is(err, sentinel))
		assert.Contains(t, err.Error(), "creating order")
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrapAndHints(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))
	assert.Nil(t, errs.WithHint(nil, "ignored"))

	err := errs.WithHint(errs.Wrap(errs.New("boom"), "loading offer"), "retry later")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading offer: boom")
	assert.Equal(t, []string{"retry later"}, errs.Hints(err))

	lines := errs.ExtractStackLines(err, 2)
	assert.Len(t, lines, 2)
}
