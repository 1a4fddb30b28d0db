package middleware

import (
	"log/slog"
	"net/http"

	"booking-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// newest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
			}
		}()
		c.Next()
	}
}

// NoRoute renders unknown paths in the same envelope as every other error.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound,
			httperr.NewResponse(http.StatusNotFound, httperr.CodeNotFound, "Not found"))
	}
}
