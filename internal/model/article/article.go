// Package article 文章相关模型
package article

import (
	"time"
)

// 文章状态
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

// Article 文章表
type Article struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Slug    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt string `gorm:"type:text" json:"excerpt"`
	// 富文本 HTML 正文
	Content       string `gorm:"type:text;not null" json:"content"`
	FeaturedImage string `gorm:"type:varchar(500)" json:"featured_image"`
	// 状态: DRAFT, PUBLISHED, ARCHIVED
	Status string `gorm:"type:varchar(20);default:'DRAFT';index" json:"status"`
	// 发布时间，转为 PUBLISHED 时设置
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	// SEO 字段
	SeoTitle       string `gorm:"type:varchar(255)" json:"seo_title"`
	SeoDescription string `gorm:"type:text" json:"seo_description"`
	SeoKeywords    string `gorm:"type:varchar(500)" json:"seo_keywords"`
	// 阅读量统计
	ViewCount uint `gorm:"default:0" json:"view_count"`
	// 预估阅读时长（分钟），按每分钟 200 词估算
	ReadTime   int       `gorm:"default:0" json:"read_time"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID uint      `gorm:"primaryKey;index" json:"article_id"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
