package api

import (
	"net/http"

	resdto "mysterybox-storefront/internal/handler/dto/response"
	"mysterybox-storefront/internal/handler/httperr"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary Pending notifications
// @Description Queued and running order notifications, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum jobs"
// @Success 200 {array} resdto.NotificationJobResponse
// @Router /admin/notifications/pending [get]
func (h *NotificationHandler) ListPending(c *gin.Context) {
	var q struct {
		Limit int `form:"limit" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.ListPending(c.Request.Context(), q.Limit)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationJobViews(views))
}
