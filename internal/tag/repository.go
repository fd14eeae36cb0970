package tag

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/tag"
)

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetByID(id uint) (*tag.Tag, error) {
	var t tag.Tag
	err := r.db.First(&t, id).Error
	return &t, err
}

func (r *TagRepository) Create(t *tag.Tag) error {
	return r.db.Create(t).Error
}

func (r *TagRepository) Update(t *tag.Tag) error {
	return r.db.Save(t).Error
}

// Delete 删除标签并解除文章关联
func (r *TagRepository) Delete(id uint) error {
	if err := r.db.Where("tag_id = ?", id).
		Delete(&article.ArticleTag{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&tag.Tag{}, id).Error
}

// NameOrSlugExists 检查名称或 slug 是否已被其他标签占用
func (r *TagRepository) NameOrSlugExists(name, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&tag.Tag{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ListAll 获取全部标签，创建时间倒序
func (r *TagRepository) ListAll() ([]tag.Tag, error) {
	var tags []tag.Tag
	err := r.db.Order("created_at DESC").Find(&tags).Error
	return tags, err
}

// CountArticlesByTag 按标签统计关联文章数
func (r *TagRepository) CountArticlesByTag() (map[uint]int64, error) {
	type row struct {
		TagID uint
		Count int64
	}

	var rows []row
	err := r.db.Model(&article.ArticleTag{}).
		Select("tag_id, COUNT(*) as count").
		Group("tag_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]int64, len(rows))
	for _, r := range rows {
		result[r.TagID] = r.Count
	}
	return result, nil
}
