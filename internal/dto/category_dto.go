package dto

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,max=20"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
	ShowInMenu  *bool  `json:"show_in_menu"`
	MenuOrder   int    `json:"menu_order"`
	IsActive    *bool  `json:"is_active"`
	MenuLabel   string `json:"menu_label" binding:"omitempty,max=100"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,max=20"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
	ShowInMenu  *bool  `json:"show_in_menu"`
	MenuOrder   *int   `json:"menu_order"`
	IsActive    *bool  `json:"is_active"`
	MenuLabel   string `json:"menu_label" binding:"omitempty,max=100"`
}

// CategoryWithCount 带已发布文章数的分类
type CategoryWithCount struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	ShowInMenu   bool   `json:"show_in_menu"`
	MenuOrder    int    `json:"menu_order"`
	IsActive     bool   `json:"is_active"`
	MenuLabel    string `json:"menu_label"`
	ArticleCount int64  `json:"article_count"`
}
