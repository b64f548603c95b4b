//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 10, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	for _, c := range []string{
		"",
		"!!not-base64!!",
		base64.URLEncoding.EncodeToString([]byte("v2:1-" + uuid.NewString())),
		base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid")),
	} {
		_, _, err := DecodeAfterCursor(c)
		assert.Error(t, err, c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-3))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, MaxListLimit, ValidateLimit(1000))
}

func TestTrimPage(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	rows := []*OrderView{
		{ID: uuid.New(), CreatedAt: base.Add(3 * time.Minute)},
		{ID: uuid.New(), CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New(), CreatedAt: base.Add(time.Minute)},
	}
	key := func(o *OrderView) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID }

	page, next := trimPage(rows, 2, key)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	at, id, err := DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, rows[1].ID, id)
	assert.True(t, rows[1].CreatedAt.Equal(at))

	page, next = trimPage(rows, 3, key)
	assert.Len(t, page, 3)
	assert.Nil(t, next)
}
