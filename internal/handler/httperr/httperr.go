// Package httperr renders the API error envelope {"error":{"message":...}}.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type ErrorBody struct {
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: ErrorBody{Message: msg}, Detail: detail}
}

// AbortWithError writes the envelope and records err on the context so the
// request logger sees the cause the client does not.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(status, resp)
}

// Abort writes the envelope for rejections that have no underlying cause.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, New(status, msg, nil))
}

func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, internalMessage, nil)
}

func Internal() Response {
	return New(http.StatusInternalServerError, internalMessage, nil)
}
