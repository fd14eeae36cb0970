package article

import (
	"time"

	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/category"
	"iptv-hub/blog-backend/internal/model/tag"
	"iptv-hub/blog-backend/internal/model/user"
)

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ===== Article 基础操作 =====

func (r *ArticleRepository) GetByID(id uint) (*article.Article, error) {
	var art article.Article
	err := r.db.First(&art, id).Error
	return &art, err
}

// GetPublishedBySlug 根据 slug 获取已发布文章
func (r *ArticleRepository) GetPublishedBySlug(slug string) (*article.Article, error) {
	var art article.Article
	err := r.db.Where("slug = ? AND status = ?", slug, article.StatusPublished).
		First(&art).Error
	return &art, err
}

func (r *ArticleRepository) Create(art *article.Article) error {
	return r.db.Create(art).Error
}

func (r *ArticleRepository) Update(art *article.Article) error {
	return r.db.Save(art).Error
}

func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Delete(&article.Article{}, id).Error
}

// SlugExists 检查 slug 是否已被其他文章占用
// excludeID 为 0 时检查全部文章（创建场景）
func (r *ArticleRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&article.Article{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// IncrementViewCount 增加阅读量
func (r *ArticleRepository) IncrementViewCount(articleID uint) error {
	return r.db.Model(&article.Article{}).
		Where("id = ?", articleID).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// List 按查询条件获取文章列表（分页）
// status 语义：空=仅已发布，"all"=不过滤，其他值=指定状态
func (r *ArticleRepository) List(q dto.ArticleListQuery) ([]article.Article, int64, error) {
	var articles []article.Article
	var total int64

	query := r.db.Model(&article.Article{})

	switch q.Status {
	case "":
		query = query.Where("articles.status = ?", article.StatusPublished)
	case "all":
		// 不过滤
	default:
		query = query.Where("articles.status = ?", q.Status)
	}

	if q.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", q.Category)
	}

	if q.Tag != "" {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", q.Tag)
	}

	if q.Search != "" {
		keyword := "%" + q.Search + "%"
		query = query.Where("articles.title ILIKE ? OR articles.excerpt ILIKE ? OR articles.content ILIKE ?",
			keyword, keyword, keyword)
	}

	// 获取总数
	if err := query.Distinct("articles.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := query.Distinct("articles.*").
		Order("articles.published_at DESC NULLS LAST").
		Order("articles.created_at DESC").
		Offset(offset).Limit(q.Limit).
		Find(&articles).Error
	return articles, total, err
}

// ===== 关联数据批量加载 =====

// GetAuthors 批量获取作者
func (r *ArticleRepository) GetAuthors(ids []uint) (map[uint]user.AdminUser, error) {
	result := make(map[uint]user.AdminUser)
	if len(ids) == 0 {
		return result, nil
	}

	var users []user.AdminUser
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

// GetCategories 批量获取分类
func (r *ArticleRepository) GetCategories(ids []uint) (map[uint]category.Category, error) {
	result := make(map[uint]category.Category)
	if len(ids) == 0 {
		return result, nil
	}

	var categories []category.Category
	if err := r.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	for _, cat := range categories {
		result[cat.ID] = cat
	}
	return result, nil
}

// GetTagsByArticles 批量获取文章标签，按文章 ID 分组
func (r *ArticleRepository) GetTagsByArticles(articleIDs []uint) (map[uint][]tag.Tag, error) {
	result := make(map[uint][]tag.Tag)
	if len(articleIDs) == 0 {
		return result, nil
	}

	type taggedRow struct {
		tag.Tag
		ArticleID uint
	}

	var rows []taggedRow
	err := r.db.Model(&tag.Tag{}).
		Select("tags.*, article_tags.article_id").
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id IN ?", articleIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ArticleID] = append(result[row.ArticleID], row.Tag)
	}
	return result, nil
}

// ===== 文章-标签关联 =====

// ReplaceTags 整体替换文章的标签集合
func (r *ArticleRepository) ReplaceTags(articleID uint, tagIDs []uint) error {
	if err := r.db.Where("article_id = ?", articleID).
		Delete(&article.ArticleTag{}).Error; err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		articleTag := &article.ArticleTag{
			ArticleID: articleID,
			TagID:     tagID,
			CreatedAt: time.Now(),
		}
		if err := r.db.Create(articleTag).Error; err != nil {
			return err
		}
	}
	return nil
}

// RemoveArticleTags 移除文章的所有标签关联
func (r *ArticleRepository) RemoveArticleTags(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&article.ArticleTag{}).Error
}

// GetArticleTags 获取单篇文章的标签
func (r *ArticleRepository) GetArticleTags(articleID uint) ([]tag.Tag, error) {
	var tags []tag.Tag
	err := r.db.
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Find(&tags).Error
	return tags, err
}
