//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/handler/middleware"
	"mysterybox-storefront/internal/pkg/cookie"
	"mysterybox-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	tokens map[string]user.Role
	id     uuid.UUID
}

func (v *stubValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	role, ok := v.tokens[token]
	if !ok {
		return uuid.Nil, "", errors.New("invalid token")
	}
	return v.id, role, nil
}

func newRouter(m *middleware.AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ok := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	}
	r.GET("/me", m.RequireAuth(), ok)
	r.POST("/start", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleOperator), ok)
	r.PATCH("/discount", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleDeveloper), ok)
	r.GET("/public", m.OptionalAuth(), ok)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	v := &stubValidator{
		id: uuid.New(),
		tokens: map[string]user.Role{
			"op-token":  user.RoleOperator,
			"dev-token": user.RoleDeveloper,
		},
	}
	router := newRouter(middleware.NewAuthMiddleware(v))

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"no token", http.MethodGet, "/me", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/me", "forged", http.StatusUnauthorized},
		{"bearer token", http.MethodGet, "/me", "op-token", http.StatusOK},
		{"operator starts flash offer", http.MethodPost, "/start", "op-token", http.StatusOK},
		{"operator cannot patch discount", http.MethodPatch, "/discount", "op-token", http.StatusForbidden},
		{"developer patches discount", http.MethodPatch, "/discount", "dev-token", http.StatusOK},
		{"developer outranks operator", http.MethodPost, "/start", "dev-token", http.StatusOK},
		{"optional auth ignores bad token", http.MethodGet, "/public", "forged", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, tt.method, tt.path, nil, tt.token)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("cookie is accepted", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "op-token"}}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), v.id.String())
	})

	t.Run("rejections use the error envelope", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPatch, "/discount", nil, "op-token")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
