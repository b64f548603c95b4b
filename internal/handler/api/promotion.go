package api

import (
	"errors"
	"net/http"

	"mysterybox-storefront/internal/domain/promotion"
	reqdto "mysterybox-storefront/internal/handler/dto/request"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/internal/handler/httperr"
	"mysterybox-storefront/internal/usecase/commands"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary Promotion snapshot
// @Description Flash offer, checkout discount and time challenge settings with the server time
// @Tags promotions
// @Produce json
// @Success 200 {object} resdto.PromotionsResponse
// @Router /promotions [get]
func (h *PromotionHandler) GetSnapshot(c *gin.Context) {
	view, err := h.q.GetSnapshot(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotView(view))
}

// @Summary Get flash offer
// @Description Current flash offer; null when none is configured
// @Tags promotions
// @Produce json
// @Success 200 {object} resdto.FlashOfferResponse
// @Router /promotions/flash-offer [get]
func (h *PromotionHandler) GetFlashOffer(c *gin.Context) {
	view, err := h.q.GetFlashOffer(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load flash offer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlashOfferView(view))
}

// @Summary Start flash offer
// @Description Start the flash offer, optionally overriding stored limits
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartFlashOfferRequest false "Overrides"
// @Success 200 {object} resdto.FlashOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/flash-offer/start [post]
func (h *PromotionHandler) StartFlashOffer(c *gin.Context) {
	var req reqdto.StartFlashOfferRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	view, err := h.cmds.StartFlashOffer(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlashOfferView(view))
}

// @Summary Stop flash offer
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FlashOfferResponse
// @Failure 404 {object} httperr.Response
// @Router /promotions/flash-offer/stop [post]
func (h *PromotionHandler) StopFlashOffer(c *gin.Context) {
	view, err := h.cmds.StopFlashOffer(c.Request.Context())
	if err != nil {
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlashOfferView(view))
}

// @Summary Claim flash offer
// @Description Take one flash-offer slot; 409 when the offer is inactive, expired or exhausted
// @Tags promotions
// @Produce json
// @Success 200 {object} resdto.FlashOfferResponse
// @Failure 409 {object} httperr.Response
// @Router /promotions/flash-offer/claim [post]
func (h *PromotionHandler) ClaimFlashOffer(c *gin.Context) {
	view, err := h.cmds.ClaimFlashOffer(c.Request.Context())
	if err != nil {
		if errors.Is(err, commands.ErrClaimRejected) {
			httperr.AbortWithError(c, http.StatusConflict, err, claimRejectionMessage(err), nil)
			return
		}
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlashOfferView(view))
}

// @Summary Get checkout discount
// @Tags promotions
// @Produce json
// @Success 200 {object} resdto.CheckoutDiscountResponse
// @Failure 404 {object} httperr.Response
// @Router /promotions/checkout-discount [get]
func (h *PromotionHandler) GetCheckoutDiscount(c *gin.Context) {
	view, err := h.q.GetCheckoutDiscount(c.Request.Context())
	if err != nil {
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutDiscountView(view))
}

// @Summary Update checkout discount
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateCheckoutDiscountRequest true "Discount percent (0-100)"
// @Success 200 {object} resdto.CheckoutDiscountResponse
// @Failure 400 {object} httperr.Response
// @Router /promotions/checkout-discount [patch]
func (h *PromotionHandler) UpdateCheckoutDiscount(c *gin.Context) {
	var req reqdto.UpdateCheckoutDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateCheckoutDiscount(c.Request.Context(), *req.DiscountPercent)
	if err != nil {
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutDiscountView(view))
}

// @Summary Get time challenge settings
// @Tags promotions
// @Produce json
// @Success 200 {object} resdto.TimeChallengeResponse
// @Failure 404 {object} httperr.Response
// @Router /promotions/time-challenge [get]
func (h *PromotionHandler) GetTimeChallengeSettings(c *gin.Context) {
	view, err := h.q.GetTimeChallengeSettings(c.Request.Context())
	if err != nil {
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeChallengeView(view))
}

// @Summary Update time challenge settings
// @Description Partial update; absent fields keep their stored values
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateTimeChallengeRequest true "Settings patch"
// @Success 200 {object} resdto.TimeChallengeResponse
// @Failure 400 {object} httperr.Response
// @Router /promotions/time-challenge [patch]
func (h *PromotionHandler) UpdateTimeChallengeSettings(c *gin.Context) {
	var req reqdto.UpdateTimeChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateTimeChallengeSettings(c.Request.Context(), req.ToPatch())
	if err != nil {
		h.abortPromotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeChallengeView(view))
}

func (h *PromotionHandler) abortPromotionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidPromotion):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promotion settings", gin.H{"reason": err.Error()})
	case errors.Is(err, commands.ErrPromotionNotConfigured), errors.Is(err, queries.ErrTimeChallengeNotConfigured):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not configured", nil)
	default:
		httperr.AbortInternal(c, err)
	}
}

func claimRejectionMessage(err error) string {
	switch {
	case errors.Is(err, promotion.ErrFlashOfferExhausted):
		return "Flash offer is sold out"
	case errors.Is(err, promotion.ErrFlashOfferExpired):
		return "Flash offer has ended"
	default:
		return "Flash offer is not active"
	}
}
