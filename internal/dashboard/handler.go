package dashboard

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/pkg/response"
)

type DashboardHandler struct {
	dashboardService *DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: NewDashboardService(db),
	}
}

// GetStats 后台概览
// @Summary 后台概览统计（文章/分类/标签/评论/阅读量）
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=dashboard.Stats}
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取统计数据失败"),
		))
		return
	}

	dto.SuccessResponse(c, stats)
}

// SetupDashboardRoutes 设置后台概览路由
func SetupDashboardRoutes(admin *gin.RouterGroup, db *gorm.DB) {
	handler := NewDashboardHandler(db)
	admin.GET("/admin/dashboard", handler.GetStats)
}
