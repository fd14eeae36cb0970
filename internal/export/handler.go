package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/pkg/response"
)

type ExportHandler struct {
	exportService *ExportService
}

func NewExportHandler(db *gorm.DB, settingsService *settings.SettingsService) *ExportHandler {
	return &ExportHandler{
		exportService: NewExportService(db, settingsService),
	}
}

// Export 导出全站数据
// @Summary 导出全站数据为 JSON 附件
// @Tags Export
// @Accept json
// @Produce json
// @Success 200 {object} export.ExportDocument
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	doc, err := h.exportService.BuildExport()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("导出数据失败"),
		))
		return
	}

	fileName := fmt.Sprintf("blog-export-%s.json", time.Now().Format("2006-01-02-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.JSON(http.StatusOK, doc)
}

// SetupExportRoutes 设置导出路由
func SetupExportRoutes(admin *gin.RouterGroup, db *gorm.DB, settingsService *settings.SettingsService) {
	handler := NewExportHandler(db, settingsService)
	admin.GET("/export", handler.Export)
}
