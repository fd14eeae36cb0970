package dto

// CreatePageRequest 创建页面请求
type CreatePageRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Slug     string `json:"slug" binding:"omitempty,max=255"`
	Content  string `json:"content" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// UpdatePageRequest 更新页面请求
type UpdatePageRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Slug     string `json:"slug" binding:"omitempty,max=255"`
	Content  string `json:"content" binding:"required"`
	IsActive *bool  `json:"is_active"`
}
