package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/middleware"
	"iptv-hub/blog-backend/internal/settings"
)

// SetupAuthRoutes 设置认证相关路由
// 登录/登出是公开路由，me 需要认证
func SetupAuthRoutes(public *gin.RouterGroup, db *gorm.DB, settingsService *settings.SettingsService) {
	handler := NewAuthHandler(db, settingsService)

	authGroup := public.Group("/auth/admin")
	{
		authGroup.POST("", handler.Login)    // 后台登录
		authGroup.DELETE("", handler.Logout) // 退出登录
		authGroup.GET("/me", middleware.AdminAuth(db), handler.Me) // 当前用户
	}
}
