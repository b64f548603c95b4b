// Package cookie carries staff session tokens as HttpOnly cookies.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"mysterybox-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// The refresh token is only ever sent to the auth endpoints.
const (
	accessCookiePath  = "/"
	refreshCookiePath = "/api/auth"
)

type tokenCookie struct {
	name string
	path string
}

var (
	accessCookie  = tokenCookie{name: AccessTokenCookieName, path: accessCookiePath}
	refreshCookie = tokenCookie{name: RefreshTokenCookieName, path: refreshCookiePath}
)

func (tc tokenCookie) set(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetCookie(tc.name, value, maxAge, tc.path, cfg.Domain, cfg.Secure, true)
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	accessCookie.set(c, cfg, accessToken, int(accessExpiry/time.Second))
	refreshCookie.set(c, cfg, refreshToken, int(refreshExpiry/time.Second))
}

// ClearTokenCookies expires both cookies on the client.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	accessCookie.set(c, cfg, "", -1)
	refreshCookie.set(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSiteMode(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
