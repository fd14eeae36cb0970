package model

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/category"
	"iptv-hub/blog-backend/internal/model/comment"
	"iptv-hub/blog-backend/internal/model/media"
	"iptv-hub/blog-backend/internal/model/page"
	"iptv-hub/blog-backend/internal/model/setting"
	"iptv-hub/blog-backend/internal/model/tag"
	"iptv-hub/blog-backend/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 后台用户
		&user.AdminUser{},
		// 内容相关模型
		&category.Category{},
		&tag.Tag{},
		&article.Article{},
		&article.ArticleTag{},
		&comment.Comment{},
		&page.Page{},
		// 站点设置与媒体
		&setting.SiteSetting{},
		&media.Media{},
	)
	if err != nil {
		return err
	}
	return nil
}
