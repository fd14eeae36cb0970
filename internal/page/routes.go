package page

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPageRoutes 设置静态页面相关路由
func SetupPageRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, db *gorm.DB) {
	handler := NewPageHandler(db)

	public.GET("/pages/:slug", handler.GetPageBySlug) // 公开页面

	adminPages := admin.Group("/admin/pages")
	{
		adminPages.GET("", handler.ListPages)        // 页面列表
		adminPages.POST("", handler.CreatePage)      // 创建页面
		adminPages.GET("/:id", handler.GetPage)      // 页面详情
		adminPages.PUT("/:id", handler.UpdatePage)   // 更新页面
		adminPages.DELETE("/:id", handler.DeletePage) // 删除页面
	}
}
