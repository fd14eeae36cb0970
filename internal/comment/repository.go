package comment

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/comment"
)

// CommentRepository 评论仓储层
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) GetByID(id uint) (*comment.Comment, error) {
	var cmt comment.Comment
	err := r.db.First(&cmt, id).Error
	return &cmt, err
}

func (r *CommentRepository) Create(cmt *comment.Comment) error {
	return r.db.Create(cmt).Error
}

func (r *CommentRepository) Update(cmt *comment.Comment) error {
	return r.db.Save(cmt).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&comment.Comment{}, id).Error
}

// GetArticle 获取评论目标文章
func (r *CommentRepository) GetArticle(articleID uint) (*article.Article, error) {
	var art article.Article
	err := r.db.First(&art, articleID).Error
	return &art, err
}

// ListApprovedByArticle 获取文章的已通过评论，最新在前
func (r *CommentRepository) ListApprovedByArticle(articleID uint) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.Where("article_id = ? AND is_approved = ?", articleID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// ListAll 后台评论列表，approved 为 nil 时不过滤审核状态
func (r *CommentRepository) ListAll(approved *bool) ([]comment.Comment, error) {
	query := r.db.Model(&comment.Comment{})
	if approved != nil {
		query = query.Where("is_approved = ?", *approved)
	}

	var comments []comment.Comment
	err := query.Order("created_at DESC").Find(&comments).Error
	return comments, err
}
