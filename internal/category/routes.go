package category

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/events"
)

// SetupCategoryRoutes 设置分类相关路由
func SetupCategoryRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, db *gorm.DB, hub *events.Hub) {
	handler := NewCategoryHandler(db, hub)

	categories := public.Group("/categories")
	{
		categories.GET("", handler.ListCategories)   // 分类列表（含已发布文章数）
		categories.GET("/:id", handler.GetCategory)  // 分类详情
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", handler.CreateCategory)       // 创建分类
		adminCategories.PUT("/:id", handler.UpdateCategory)    // 更新分类
		adminCategories.DELETE("/:id", handler.DeleteCategory) // 删除分类
	}
}
