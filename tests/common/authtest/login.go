//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"mysterybox-storefront/internal/pkg/cookie"
	"mysterybox-storefront/tests/common/builder"
	"mysterybox-storefront/tests/common/dbtest"
	"mysterybox-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the real endpoint and returns the access token cookie value.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := builder.NewAuthBuilder().WithCredentials(email, password).BuildDTO()
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equalf(t, http.StatusOK, w.Code, "login %s: %s", email, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value, "access token cookie empty")
	return access.Value
}

// CreateAndLogin seeds a staff user with the fixture password and logs them in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()
	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
