//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/handler/dto/request"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/tests/common/authtest"
	"mysterybox-storefront/tests/common/dbtest"
	"mysterybox-storefront/tests/common/httptest"
	"mysterybox-storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@mysterybox.test", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "operator@mysterybox.test", string(user.RoleOperator))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@mysterybox.test", string(user.RoleAdmin))

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@mysterybox.test'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "admin@mysterybox.test",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nobody@mysterybox.test",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "admin@mysterybox.test",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@mysterybox.test",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "短すぎるパスワード",
			email:          "admin@mysterybox.test",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"), "リフレッシュトークンのCookieがない")

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("Cookieのリフレッシュトークンで更新できること", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@mysterybox.test", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, httptest.ExtractCookies(login), "")
		var res resdto.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("無効なリフレッシュトークンは拒否されること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})

	s.Run("トークンなしは拒否されること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@mysterybox.test", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("トークンなしではログアウトできないこと", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー情報を取得できること", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "dev@mysterybox.test", string(user.RoleDeveloper))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "dev@mysterybox.test", res.Email)
		require.Equal(t, string(user.RoleDeveloper), res.Role)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("期限切れトークンは拒否されること", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@mysterybox.test", string(user.RoleAdmin))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleGuards() {
	s.Run("オペレーターは割引率を変更できないこと", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "operator@mysterybox.test", "password123")
		pct := 15
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/promotions/checkout-discount",
			request.UpdateCheckoutDiscountRequest{DiscountPercent: &pct}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("未認証では管理APIにアクセスできないこと", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/orders", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
