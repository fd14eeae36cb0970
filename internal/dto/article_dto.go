package dto

import (
	"time"
)

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Title          string     `json:"title" binding:"required,max=255"`
	Slug           string     `json:"slug" binding:"omitempty,max=255"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content" binding:"required"`
	FeaturedImage  string     `json:"featured_image"`
	CategoryID     uint       `json:"category_id" binding:"required"`
	TagIDs         []uint     `json:"tag_ids"`
	SeoTitle       string     `json:"seo_title" binding:"omitempty,max=255"`
	SeoDescription string     `json:"seo_description"`
	SeoKeywords    string     `json:"seo_keywords" binding:"omitempty,max=500"`
	Status         string     `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	PublishedAt    *time.Time `json:"published_at"`
}

// UpdateArticleRequest 更新文章请求
type UpdateArticleRequest struct {
	Title          string     `json:"title" binding:"required,max=255"`
	Slug           string     `json:"slug" binding:"omitempty,max=255"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content" binding:"required"`
	FeaturedImage  string     `json:"featured_image"`
	CategoryID     uint       `json:"category_id" binding:"required"`
	TagIDs         []uint     `json:"tag_ids"`
	SeoTitle       string     `json:"seo_title" binding:"omitempty,max=255"`
	SeoDescription string     `json:"seo_description"`
	SeoKeywords    string     `json:"seo_keywords" binding:"omitempty,max=500"`
	Status         string     `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	PublishedAt    *time.Time `json:"published_at"`
}

// ArticleListQuery 文章列表查询参数
type ArticleListQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Category string `form:"category"` // 分类 slug
	Tag      string `form:"tag"`      // 标签 slug
	Search   string `form:"search"`   // 标题/摘要/正文模糊搜索
	Status   string `form:"status"`   // 空=仅 PUBLISHED，all=不过滤，其他=指定状态
}

// AuthorBrief 文章作者摘要
type AuthorBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryBrief 文章分类摘要
type CategoryBrief struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// TagBrief 文章标签摘要
type TagBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleListItem 文章列表项
type ArticleListItem struct {
	ID            uint          `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Excerpt       string        `json:"excerpt"`
	FeaturedImage string        `json:"featured_image"`
	Status        string        `json:"status"`
	PublishedAt   *time.Time    `json:"published_at"`
	CreatedAt     time.Time     `json:"created_at"`
	ViewCount     uint          `json:"view_count"`
	ReadTime      int           `json:"read_time"`
	Author        AuthorBrief   `json:"author"`
	Category      CategoryBrief `json:"category"`
	Tags          []TagBrief    `json:"tags"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ArticleListResponse 文章列表响应
type ArticleListResponse struct {
	Articles   []ArticleListItem `json:"articles"`
	Pagination Pagination        `json:"pagination"`
}
