//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"mysterybox-storefront/internal/handler/api"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/tests/common/httptest"
	queriesmock "mysterybox-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockNotificationQueries(ctrl)
	router := gin.New()
	router.GET("/admin/notifications/pending", api.NewNotificationHandler(q).ListPending)

	t.Run("payload is not exposed", func(t *testing.T) {
		lastErr := "webhook responded 502"
		q.EXPECT().ListPending(gomock.Any(), 5).Return([]*queries.NotificationJobView{{
			ID:        uuid.New(),
			Kind:      "webhook",
			Topic:     "order_created",
			Payload:   []byte(`{"phone":"+380501234567"}`),
			Attempts:  2,
			Status:    "queued",
			LastError: &lastErr,
		}}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notifications/pending?limit=5", nil, "")
		var res []resdto.NotificationJobResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		require.Len(t, res, 1)
		assert.Equal(t, int32(2), res[0].Attempts)
		assert.Equal(t, "webhook responded 502", *res[0].LastError)
		assert.NotContains(t, rec.Body.String(), "+380501234567")
	})

	t.Run("invalid limit", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notifications/pending?limit=-1", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid query")
	})

	t.Run("store failure", func(t *testing.T) {
		q.EXPECT().ListPending(gomock.Any(), 0).Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notifications/pending", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
