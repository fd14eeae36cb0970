package dto

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Slug        string `json:"slug" binding:"omitempty,max=50"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,max=20"`
}

// UpdateTagRequest 更新标签请求
type UpdateTagRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Slug        string `json:"slug" binding:"omitempty,max=50"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,max=20"`
}

// TagWithCount 带文章数的标签
type TagWithCount struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	ArticleCount int64  `json:"article_count"`
	CreatedAt    string `json:"created_at"`
}
