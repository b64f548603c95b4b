package api

import (
	"net/http"

	reqdto "mysterybox-storefront/internal/handler/dto/request"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/internal/handler/httperr"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	q queries.CheckoutQueries
}

func NewCheckoutHandler(q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{q: q}
}

// @Summary Quote checkout
// @Description Price a cart against the current promotions and the client's declared challenge runs
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Cart and challenge state"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
