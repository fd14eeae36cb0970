package settings

import (
	"github.com/gin-gonic/gin"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/pkg/response"
)

type SettingsHandler struct {
	service *SettingsService
}

func NewSettingsHandler(service *SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSettings 获取站点设置
// @Summary 获取站点设置（默认值与数据库覆盖合并后的完整集合）
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Response{data=map[string]any}
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	dto.SuccessResponse(c, h.service.GetSettings())
}

// UpdateSettings 批量更新站点设置
// @Summary 批量更新站点设置
// @Description 请求体为任意 JSON 对象，每个键按值类型（string/number/boolean/json）入库
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body map[string]any true "设置键值对"
// @Success 200 {object} response.Response
// @Router /settings [post]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if len(body) == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("设置数据不能为空"),
		))
		return
	}

	if err := h.service.UpdateSettings(body); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新设置失败"),
			response.WithError(err),
		))
		return
	}

	dto.MessageResponse(c, "设置更新成功")
}

// SetupSettingsRouter 注册设置路由，GET 公开、POST 需要后台认证
func SetupSettingsRouter(public *gin.RouterGroup, admin *gin.RouterGroup, service *SettingsService) {
	handler := NewSettingsHandler(service)

	public.GET("/settings", handler.GetSettings)
	admin.POST("/settings", handler.UpdateSettings)
}
