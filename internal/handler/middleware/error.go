package middleware

import (
	"log/slog"
	"net/http"

	"mysterybox-storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope for handlers that recorded an error on the
// context without writing a body themselves. The most recent public error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Internal())
		}
	}
}

func lastPublicResponse(errs []*gin.Error) (httperr.Response, bool) {
	for i := len(errs) - 1; i >= 0; i-- {
		if !errs[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errs[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a handler panic into a 500 envelope. It must be the
// outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"panic", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
			)
			resp := httperr.Internal()
			c.AbortWithStatusJSON(resp.Status, resp)
		}()
		c.Next()
	}
}
