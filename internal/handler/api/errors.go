package api

import (
	"net/http"
	"unicode"
	"unicode/utf8"

	"booking-api/internal/handler/httperr"
	"booking-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortFromError maps marked use-case errors onto the public envelope. Only
// validation messages reach the client verbatim.
func abortFromError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, capitalize(err.Error()), nil)
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, internalMsg, nil)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
