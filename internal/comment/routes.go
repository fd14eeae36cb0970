package comment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/settings"
)

// SetupCommentRoutes 设置评论相关路由
func SetupCommentRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, db *gorm.DB, settingsService *settings.SettingsService) {
	handler := NewCommentHandler(db, settingsService)

	comments := public.Group("/comments")
	{
		comments.GET("", handler.ListComments)   // 文章已通过评论
		comments.POST("", handler.CreateComment) // 游客发表评论
	}

	adminComments := admin.Group("/admin/comments")
	{
		adminComments.GET("", handler.ListAdminComments)   // 后台评论列表
		adminComments.PUT("/:id", handler.ModerateComment) // 审核评论
		adminComments.DELETE("/:id", handler.DeleteComment) // 删除评论
	}
}
