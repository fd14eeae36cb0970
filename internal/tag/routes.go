package tag

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupTagRoutes 设置标签相关路由
func SetupTagRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, db *gorm.DB) {
	handler := NewTagHandler(db)

	public.GET("/tags", handler.ListTags) // 标签列表（含文章数）

	adminTags := admin.Group("/tags")
	{
		adminTags.POST("", handler.CreateTag)       // 创建标签
		adminTags.PUT("/:id", handler.UpdateTag)    // 更新标签
		adminTags.DELETE("/:id", handler.DeleteTag) // 删除标签
	}
}
