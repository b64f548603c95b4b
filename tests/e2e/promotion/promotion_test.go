//go:build e2e

package promotion_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/handler/dto/request"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/tests/common/authtest"
	"mysterybox-storefront/tests/common/builder"
	"mysterybox-storefront/tests/common/httptest"
	"mysterybox-storefront/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	flashOfferURL = "/api/promotions/flash-offer"
	claimURL      = "/api/promotions/flash-offer/claim"
	startURL      = "/api/promotions/flash-offer/start"
	stopURL       = "/api/promotions/flash-offer/stop"
	discountURL   = "/api/promotions/checkout-discount"
	challengeURL  = "/api/promotions/time-challenge"
	snapshotURL   = "/api/promotions"
)

type promotionSuite struct {
	e2e.SharedSuite
	operatorToken  string
	developerToken string
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(promotionSuite))
}

func (s *promotionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operatorToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@mysterybox.test", string(user.RoleOperator))
	s.developerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "dev@mysterybox.test", string(user.RoleDeveloper))
}

func (s *promotionSuite) startOffer(maxClaims int) resdto.FlashOfferResponse {
	t := s.T()
	body := builder.NewFlashOfferBuilder(time.Now()).WithClaims(maxClaims, 0).BuildStartDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, startURL, body, s.operatorToken)
	var res resdto.FlashOfferResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *promotionSuite) TestFlashOfferLifecycle() {
	s.Run("未設定のオファーは非アクティブで返ること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, flashOfferURL, nil, "")
		var res resdto.FlashOfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.False(t, res.IsEffectivelyActive)
	})

	s.Run("開始すると残り枠と残り時間が返ること", func() {
		t := s.T()
		res := s.startOffer(5)
		assert.True(t, res.IsActive)
		assert.True(t, res.IsEffectivelyActive)
		assert.Equal(t, 5, res.RemainingClaims)
		assert.InDelta(t, 600, res.RemainingSeconds, 2)
		require.NotNil(t, res.EndsAt)
	})

	s.Run("停止後は取得できないこと", func() {
		t := s.T()
		s.startOffer(5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stopURL, nil, s.operatorToken)
		var stopped resdto.FlashOfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stopped)
		assert.False(t, stopped.IsActive)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("未認証では開始できないこと", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, startURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *promotionSuite) TestConcurrentClaims() {
	s.Run("同時取得でも上限を超えないこと", func() {
		t := s.T()
		const maxClaims, shoppers = 5, 7
		s.startOffer(maxClaims)

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			statuses = map[int]int{}
		)
		for range shoppers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL, nil, "")
				mu.Lock()
				statuses[w.Code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, maxClaims, statuses[http.StatusOK])
		assert.Equal(t, shoppers-maxClaims, statuses[http.StatusConflict])

		var claimed int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT claimed_count FROM flash_offers WHERE id = 1").Scan(&claimed))
		assert.Equal(t, maxClaims, claimed)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, flashOfferURL, nil, "")
		var res resdto.FlashOfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, 0, res.RemainingClaims)
		assert.False(t, res.IsEffectivelyActive)
	})
}

func (s *promotionSuite) TestSettings() {
	s.Run("開発者は割引率を更新できること", func() {
		t := s.T()
		pct := 15
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, discountURL,
			request.UpdateCheckoutDiscountRequest{DiscountPercent: &pct}, s.developerToken)
		var res resdto.CheckoutDiscountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, 15, res.DiscountPercent)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, snapshotURL, nil, "")
		var snap resdto.PromotionsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &snap)
		require.NotNil(t, snap.CheckoutDiscount)
		assert.Equal(t, 15, snap.CheckoutDiscount.DiscountPercent)
	})

	s.Run("範囲外の割引率は拒否されること", func() {
		t := s.T()
		pct := 101
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, discountURL,
			request.UpdateCheckoutDiscountRequest{DiscountPercent: &pct}, s.developerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid promotion settings")
	})

	s.Run("タイムチャレンジ設定を更新できること", func() {
		t := s.T()
		body := builder.NewTimeChallengeBuilder().BuildPatchDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, challengeURL, body, s.developerToken)
		var res resdto.TimeChallengeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.True(t, res.IsActive)
		assert.Equal(t, 60, res.DurationSeconds)
		assert.Equal(t, 30, res.DiscountPercent)
	})
}
