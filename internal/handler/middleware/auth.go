package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/handler/httperr"
	"mysterybox-storefront/internal/pkg/cookie"
	"mysterybox-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

// AuthMiddleware guards staff endpoints. Shoppers are anonymous, so most
// routes run OptionalAuth and only the promotion admin and order admin
// endpoints require a token.
type AuthMiddleware struct {
	tokens usecase.TokenValidator
}

func NewAuthMiddleware(tokens usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// authenticate stores the identity on c. It reports false with no side effects
// when the token is missing or invalid.
func (m *AuthMiddleware) authenticate(c *gin.Context) (present, ok bool) {
	token := bearerOrCookie(c)
	if token == "" {
		return false, false
	}
	userID, role, err := m.tokens.ValidateToken(token)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "token rejected", "error", err, "path", c.Request.URL.Path)
		return true, false
	}
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	return true, true
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); ok {
			c.Next()
			return
		}
		switch present, ok := m.authenticate(c); {
		case !present:
			httperr.Abort(c, http.StatusUnauthorized, "Access token required")
		case !ok:
			httperr.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
		default:
			c.Next()
		}
	}
}

// RequireRoleAtLeast expects RequireAuth to have run; without an identity it answers 401.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		switch {
		case !ok:
			httperr.Abort(c, http.StatusUnauthorized, "Access token required")
		case !role.AtLeast(minRole):
			httperr.Abort(c, http.StatusForbidden, "Insufficient permissions")
		default:
			c.Next()
		}
	}
}

// OptionalAuth attaches the identity when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c)
		c.Next()
	}
}

// bearerOrCookie prefers the access-token cookie over the Authorization header.
func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, ok := c.Get(ctxUserRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
