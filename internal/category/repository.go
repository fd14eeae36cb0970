package category

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/category"
)

// CategoryRepository 分类仓储层
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByID(id uint) (*category.Category, error) {
	var cat category.Category
	err := r.db.First(&cat, id).Error
	return &cat, err
}

func (r *CategoryRepository) Create(cat *category.Category) error {
	return r.db.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *category.Category) error {
	return r.db.Save(cat).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Delete(&category.Category{}, id).Error
}

// SlugExists 检查 slug 是否已被其他分类占用
func (r *CategoryRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&category.Category{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ListAll 获取全部分类，名称升序
func (r *CategoryRepository) ListAll() ([]category.Category, error) {
	var categories []category.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// ListActive 获取启用的分类，菜单顺序升序
func (r *CategoryRepository) ListActive() ([]category.Category, error) {
	var categories []category.Category
	err := r.db.Where("is_active = ?", true).
		Order("menu_order ASC").
		Order("id ASC").
		Find(&categories).Error
	return categories, err
}

// CountArticles 统计分类下的文章数（不限状态）
func (r *CategoryRepository) CountArticles(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&article.Article{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// CountPublishedByCategory 按分类统计已发布文章数
func (r *CategoryRepository) CountPublishedByCategory() (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Count      int64
	}

	var rows []row
	err := r.db.Model(&article.Article{}).
		Select("category_id, COUNT(*) as count").
		Where("status = ?", article.StatusPublished).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]int64, len(rows))
	for _, r := range rows {
		result[r.CategoryID] = r.Count
	}
	return result, nil
}
