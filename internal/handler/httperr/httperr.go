package httperr

import (
	"log/slog"
	"net/http"

	"jersey-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError answers with the public message and keeps err on the gin context.
// Server side failures are logged with the head of their stack trace.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg,
			"status", status,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines))
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
