package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/config"
	"iptv-hub/blog-backend/internal/database"
	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/middleware"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/pkg/response"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(db *gorm.DB, settingsService *settings.SettingsService) *AuthHandler {
	repo := NewAuthRepository(db)
	limiter := NewLoginLimiter(database.GetRedis())
	return &AuthHandler{
		authService: NewAuthService(repo, limiter, settingsService),
	}
}

func respondError(c *gin.Context, err error, fallback string) {
	var bizErr *response.BusinessError
	if errors.As(err, &bizErr) {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(fallback),
	))
}

// Login 后台登录
// @Summary 后台登录，成功后写入 HTTP-only Cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Router /auth/admin [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	token, userInfo, err := h.authService.Login(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		respondError(c, err, "登录失败")
		return
	}

	// Cookie 有效期与令牌一致
	maxAge := config.Conf.JWT.ExpireTime * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", false, true)

	dto.SuccessResponse(c, gin.H{
		"token": token,
		"user":  userInfo,
	})
}

// Logout 退出登录
// @Summary 退出登录，清除 Cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/admin [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	dto.MessageResponse(c, "已退出登录")
}

// Me 获取当前登录用户
// @Summary 获取当前登录用户信息
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Router /auth/admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userInfo, err := h.authService.GetCurrentUser(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "获取用户信息失败")
		return
	}

	dto.SuccessResponse(c, userInfo)
}
