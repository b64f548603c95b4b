//go:build e2e

package order_test

import (
	"net/http"
	"testing"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/handler/api"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/tests/common/authtest"
	"mysterybox-storefront/tests/common/builder"
	"mysterybox-storefront/tests/common/dbtest"
	"mysterybox-storefront/tests/common/httptest"
	"mysterybox-storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL        = "/api/orders"
	adminOrdersURL   = "/api/admin/orders"
	pendingNotifyURL = "/api/admin/notifications/pending"
)

type orderSuite struct {
	e2e.SharedSuite
	productID uuid.UUID
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.productID = dbtest.CreateTestProduct(s.T(), s.DB, "MB-CLASSIC", "Classic mystery box", "₴250", 0)
}

func (s *orderSuite) submit(body any, key string) (code int, order resdto.OrderResponse, replayed bool) {
	t := s.T()
	headers := map[string]string{"Content-Type": "application/json"}
	if key != "" {
		headers[api.IdempotencyKeyHeader] = key
	}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, body, headers)
	if w.Code < 300 {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &order))
	}
	return w.Code, order, w.Header().Get(api.ReplayedHeader) == "true"
}

func (s *orderSuite) TestSubmitOrder() {
	s.Run("注文が保存され通知ジョブが登録されること", func() {
		t := s.T()
		body := builder.NewOrderBuilder().WithProduct(s.productID, "₴250").BuildRequestDTO()

		code, order, replayed := s.submit(body, uuid.NewString())
		require.Equal(t, http.StatusCreated, code)
		assert.False(t, replayed)
		assert.Equal(t, int64(289), order.Total)
		assert.Equal(t, int64(250), order.Subtotal)
		assert.Regexp(t, `^MB-\d{6}-\d{6}$`, order.OrderNumber)
		require.Len(t, order.Items, 1)
		assert.Equal(t, s.productID, order.Items[0].ProductID)

		var jobs int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM notification_jobs WHERE topic = 'order_created' AND status = 'queued'").Scan(&jobs))
		assert.Equal(t, 1, jobs)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@mysterybox.test", string(user.RoleOperator))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingNotifyURL, nil, token)
		var pending []resdto.NotificationJobResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Len(t, pending, 1)
		assert.Equal(t, "order_created", pending[0].Topic)
	})

	s.Run("同じキーの再送は保存済みの注文を返すこと", func() {
		t := s.T()
		body := builder.NewOrderBuilder().WithProduct(s.productID, "₴250").BuildRequestDTO()
		key := uuid.NewString()

		code, first, _ := s.submit(body, key)
		require.Equal(t, http.StatusCreated, code)

		code, second, replayed := s.submit(body, key)
		require.Equal(t, http.StatusOK, code)
		assert.True(t, replayed)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.OrderNumber, second.OrderNumber)

		var orders int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&orders))
		assert.Equal(t, 1, orders)
	})

	s.Run("同じキーで異なる内容は拒否されること", func() {
		t := s.T()
		key := uuid.NewString()
		code, _, _ := s.submit(builder.NewOrderBuilder().WithProduct(s.productID, "₴250").BuildRequestDTO(), key)
		require.Equal(t, http.StatusCreated, code)

		changed := builder.NewOrderBuilder().WithProduct(s.productID, "₴250").WithQuantity(2).WithTotal(539).BuildRequestDTO()
		code, _, _ = s.submit(changed, key)
		assert.Equal(t, http.StatusConflict, code)
	})

	s.Run("キーなしの注文は拒否されること", func() {
		t := s.T()
		code, _, _ := s.submit(builder.NewOrderBuilder().WithProduct(s.productID, "₴250").BuildRequestDTO(), "")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("お試し注文は保存されないこと", func() {
		t := s.T()
		body := builder.NewOrderBuilder().WithProduct(s.productID, "₴250").AsTryNow().BuildRequestDTO()

		code, order, _ := s.submit(body, "")
		require.Equal(t, http.StatusOK, code)
		assert.True(t, order.IsTrial)

		var orders, jobs int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&orders))
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM notification_jobs").Scan(&jobs))
		assert.Zero(t, orders)
		assert.Zero(t, jobs)
	})

	s.Run("空のカートは拒否されること", func() {
		t := s.T()
		body := builder.NewOrderBuilder().WithoutItems().BuildRequestDTO()
		code, _, _ := s.submit(body, uuid.NewString())
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func (s *orderSuite) TestAdminOrders() {
	s.Run("注文番号で取得し一覧に並ぶこと", func() {
		t := s.T()
		_, placed, _ := s.submit(builder.NewOrderBuilder().WithProduct(s.productID, "₴250").BuildRequestDTO(), uuid.NewString())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+placed.OrderNumber, nil, "")
		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, placed.ID, got.ID)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@mysterybox.test", string(user.RoleOperator))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, token)
		var list resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Orders, 1)
		assert.Equal(t, placed.OrderNumber, list.Orders[0].OrderNumber)
	})

	s.Run("存在しない注文番号は404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/MB-000000-000000", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})
}
