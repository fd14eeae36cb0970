package page

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/page"
)

// PageRepository 静态页面仓储层
type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) GetByID(id uint) (*page.Page, error) {
	var p page.Page
	err := r.db.First(&p, id).Error
	return &p, err
}

// GetActiveBySlug 根据 slug 获取启用中的页面
func (r *PageRepository) GetActiveBySlug(slug string) (*page.Page, error) {
	var p page.Page
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).
		First(&p).Error
	return &p, err
}

func (r *PageRepository) Create(p *page.Page) error {
	return r.db.Create(p).Error
}

func (r *PageRepository) Update(p *page.Page) error {
	return r.db.Save(p).Error
}

func (r *PageRepository) Delete(id uint) error {
	return r.db.Delete(&page.Page{}, id).Error
}

// SlugExists 检查 slug 是否已被其他页面占用
func (r *PageRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&page.Page{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ListAll 全部页面，创建时间倒序
func (r *PageRepository) ListAll() ([]page.Page, error) {
	var pages []page.Page
	err := r.db.Order("created_at DESC").Find(&pages).Error
	return pages, err
}
