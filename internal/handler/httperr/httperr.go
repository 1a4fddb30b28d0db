package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest = "invalid_request"
	CodeValidation     = "validation_error"
	CodeUnauthorized   = "unauthorized"
	CodeNotFound       = "not_found"
	CodeRateLimited    = "rate_limited"
	CodeInternal       = "internal_error"
)

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	OK     bool `json:"ok"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	return Response{
		Status: status,
		Error:  Body{Code: code, Message: msg},
	}
}

// AbortWithError keeps the original error on the gin context for the logging
// middleware and writes the public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, codeFor(status), msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusUnprocessableEntity:
		return CodeInvalidRequest
	default:
		return CodeInternal
	}
}

// AbortInvalidRequest is used for bodies that cannot be decoded at all.
func AbortInvalidRequest(c *gin.Context, err error) {
	resp := NewResponse(http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}
