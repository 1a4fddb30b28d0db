package api

import (
	"net/http"
	"time"

	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/handler/httperr"
	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/cookie"
	"booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a token, returned in the body and as the token cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Password)
	if err != nil {
		abortFromError(c, err, "Internal server error")
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, secondsToDuration(result.ExpiresIn))
	c.JSON(http.StatusOK, resdto.LoginResponse{OK: true, Token: result.Token})
}

// @Summary Admin logout
// @Description Clears the token cookie. Issued tokens stay valid until they expire.
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.LogoutResponse
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.LogoutResponse{OK: true})
}

func secondsToDuration(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
