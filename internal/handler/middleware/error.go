package middleware

import (
	"log/slog"
	"net/http"

	"student-travels/internal/handler/httperr"
	"student-travels/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error a handler recorded but did not
// render. Handlers normally respond through httperr themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		public := c.Errors.ByType(gin.ErrorTypePublic)
		if n := len(public); n > 0 {
			if resp, ok := public[n-1].Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		// a bare status was set without a body (e.g. AbortWithStatus)
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled error", "request_id", GetRequestID(c), "error", c.Errors.Last().Err.Error())
			writeInternal(c)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = errs.Newf("panic: %v", rec)
			}
			slog.Error("recovered from panic",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(errs.Wrap(err, "recovered"), 8),
			)
			writeInternal(c)
			c.Abort()
		}()
		c.Next()
	}
}

func writeInternal(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(resp.Status, resp)
}
