package dto

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	ArticleID   uint   `json:"article_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
	AuthorName  string `json:"author_name" binding:"required,max=100"`
	AuthorEmail string `json:"author_email" binding:"required,email,max=255"`
	AuthorURL   string `json:"author_url" binding:"omitempty,max=500"`
}

// CommentListQuery 公开评论列表查询参数
type CommentListQuery struct {
	ArticleID uint `form:"articleId" binding:"required"`
}

// AdminCommentListQuery 后台评论列表查询参数
type AdminCommentListQuery struct {
	// 空=全部，approved=已通过，pending=待审核
	Status string `form:"status" binding:"omitempty,oneof=approved pending"`
}

// ModerateCommentRequest 审核评论请求
type ModerateCommentRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}
