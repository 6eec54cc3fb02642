package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	pair, accountRM, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	respond(c, http.StatusOK, "login successful", gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"account":       resdto.NewAccountResponse(accountRM),
	})
}

// @Summary Refresh the token pair
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing refresh token"), "Refresh token required")
		return
	}

	pair, err := h.authUseCase.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	respond(c, http.StatusOK, "token refreshed", gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	respond(c, http.StatusOK, "logged out", nil)
}

// @Summary Current account
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("not authenticated"), "Not authenticated")
		return
	}

	rm, err := h.authUseCase.GetCurrentUser(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"account": resdto.NewAccountResponse(rm)})
}
