package route

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/config"
	"iptv-hub/blog-backend/internal/article"
	"iptv-hub/blog-backend/internal/auth"
	"iptv-hub/blog-backend/internal/category"
	"iptv-hub/blog-backend/internal/comment"
	"iptv-hub/blog-backend/internal/dashboard"
	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/export"
	"iptv-hub/blog-backend/internal/middleware"
	"iptv-hub/blog-backend/internal/page"
	"iptv-hub/blog-backend/internal/profile"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/internal/tag"
	"iptv-hub/blog-backend/internal/upload"
)

// SetupRouter 装配完整的 HTTP 路由
func SetupRouter(db *gorm.DB, hub *events.Hub) *gin.Engine {
	gin.SetMode(config.Conf.Server.Mode)
	r := gin.Default()

	origin := config.Conf.Server.FrontendURL
	if origin == "" {
		origin = "http://localhost:3000"
	}

	// 跨域：前端携带 Cookie，需开启凭证
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// 共享的站点设置服务（带缓存，变更经 SSE 推送）
	settingsService := settings.NewSettingsService(
		settings.NewSettingsRepository(db),
		settings.NewCache(config.Conf.SettingsCacheTTL()),
		hub,
	)

	api := r.Group("/api")

	// 健康检查
	api.GET("/health", healthHandler(db))

	// 公开路由
	public := api.Group("")

	// 后台路由，全部要求认证
	admin := api.Group("")
	admin.Use(middleware.AdminAuth(db))

	events.SetupEventsRouter(public, hub)
	settings.SetupSettingsRouter(public, admin, settingsService)
	auth.SetupAuthRoutes(public, db, settingsService)
	article.SetupArticleRoutes(public, admin, db)
	category.SetupCategoryRoutes(public, admin, db, hub)
	tag.SetupTagRoutes(public, admin, db)
	comment.SetupCommentRoutes(public, admin, db, settingsService)
	page.SetupPageRoutes(public, admin, db)
	profile.SetupProfileRoutes(admin, db)
	dashboard.SetupDashboardRoutes(admin, db)
	upload.SetupUploadRoutes(admin, db, settingsService)
	export.SetupExportRoutes(admin, db, settingsService)

	return r
}

// healthHandler 数据库连通性检查
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
