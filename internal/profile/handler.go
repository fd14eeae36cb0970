package profile

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/middleware"
	"iptv-hub/blog-backend/pkg/response"
)

type ProfileHandler struct {
	profileService *ProfileService
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{
		profileService: NewProfileService(db),
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

// UpdateProfile 更新个人资料
// @Summary 更新当前用户的姓名和邮箱
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "更新资料请求"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Router /admin/profile/update [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userInfo, err := h.profileService.UpdateProfile(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err, "更新资料失败")
		return
	}

	dto.SuccessResponse(c, userInfo)
}

// ChangePassword 修改密码
// @Summary 修改当前用户密码（需验证当前密码）
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "修改密码请求"
// @Success 200 {object} response.Response
// @Router /admin/profile/password [put]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.profileService.ChangePassword(middleware.CurrentUserID(c), req); err != nil {
		respondError(c, err, "修改密码失败")
		return
	}

	dto.MessageResponse(c, "密码修改成功")
}

// SetupProfileRoutes 设置个人资料相关路由
func SetupProfileRoutes(admin *gin.RouterGroup, db *gorm.DB) {
	handler := NewProfileHandler(db)

	profileGroup := admin.Group("/admin/profile")
	{
		profileGroup.PUT("/update", handler.UpdateProfile)     // 更新资料
		profileGroup.PUT("/password", handler.ChangePassword) // 修改密码
	}
}
