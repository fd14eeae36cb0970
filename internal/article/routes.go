package article

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupArticleRoutes 设置文章相关路由
// public 为公开路由组，admin 为已挂认证中间件的路由组
func SetupArticleRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, db *gorm.DB) {
	handler := NewArticleHandler(db)

	articles := public.Group("/articles")
	{
		articles.GET("", handler.ListArticles)                // 文章列表（分页、过滤）
		articles.GET("/slug/:slug", handler.GetArticleBySlug) // slug 查询，阅读量 +1
		articles.GET("/:id", handler.GetArticle)              // 文章详情
	}

	adminArticles := admin.Group("/articles")
	{
		adminArticles.POST("", handler.CreateArticle)       // 创建文章
		adminArticles.PUT("/:id", handler.UpdateArticle)    // 更新文章
		adminArticles.DELETE("/:id", handler.DeleteArticle) // 删除文章
	}
}
