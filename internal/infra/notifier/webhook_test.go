//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mysterybox-storefront/internal/infra/notifier"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sender(url string) *notifier.WebhookSender {
	return notifier.NewWebhookSender(config.NotifierConfig{WebhookURL: url, Timeout: time.Second})
}

func TestWebhookSender_Send(t *testing.T) {
	job := shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     "order.created",
		Topic:    "orders",
		Payload:  []byte(`{"orderNumber":"MB-260314-000001","total":339}`),
		Attempts: 1,
	}

	t.Run("2xx delivers the envelope", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, job.ID.String(), r.Header.Get("Idempotency-Key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		require.NoError(t, sender(srv.URL).Send(context.Background(), job))
		assert.Equal(t, "order.created", got["kind"])
		payload, ok := got["payload"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "MB-260314-000001", payload["orderNumber"])
	})

	t.Run("5xx is retryable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := sender(srv.URL).Send(context.Background(), job)
		require.Error(t, err)
		assert.False(t, errs.Is(err, notifier.ErrPermanent))
	})

	t.Run("4xx is permanent", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "chat not found", http.StatusBadRequest)
		}))
		defer srv.Close()

		err := sender(srv.URL).Send(context.Background(), job)
		require.Error(t, err)
		assert.True(t, errs.Is(err, notifier.ErrPermanent))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("invalid payload never leaves the process", func(t *testing.T) {
		bad := job
		bad.Payload = []byte("not json")
		err := sender("http://127.0.0.1:1").Send(context.Background(), bad)
		assert.True(t, errs.Is(err, notifier.ErrPermanent))
	})
}
