package api

import (
	"errors"
	"net/http"

	reqdto "mysterybox-storefront/internal/handler/dto/request"
	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/internal/handler/httperr"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/usecase/commands"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Submit order
// @Description Place an order with the totals captured at checkout. Persisted orders need an Idempotency-Key; try-now orders are echoed without storage.
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID reused on client retries"
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "Replayed or trial order"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubmitOrder(c.Request.Context(), in, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrIdempotencyKeyRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header is required", nil)
		case errors.Is(err, commands.ErrInvalidOrder):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order validation failed", gin.H{"reason": err.Error()})
		case errors.Is(err, commands.ErrIdempotencyKeyConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key was used with a different request", nil)
		case errors.Is(err, commands.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order request is currently being processed", nil)
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}

	res := resdto.FromOrderView(result.Order)
	res.IsTrial = result.IsTrial
	switch {
	case result.IsReplayed:
		c.Header(ReplayedHeader, "true")
		c.JSON(http.StatusOK, res)
	case result.IsTrial:
		c.JSON(http.StatusOK, res)
	default:
		c.JSON(http.StatusCreated, res)
	}
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param number path string true "Order number (MB-YYMMDD-NNNNNN)"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{number} [get]
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	view, err := h.q.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

type listOrdersQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// @Summary List orders
// @Description Newest first, keyset paginated
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q listOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, next, err := h.q.List(c.Request.Context(), &queries.Cursor{After: q.After}, q.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views, next))
}

// getIdempotencyKey returns uuid.Nil when the header is absent; the use case decides whether it is required.
func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader(IdempotencyKeyHeader)
	if keyStr == "" {
		return uuid.Nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidIdempotencyKey)
	}
	return key, nil
}
