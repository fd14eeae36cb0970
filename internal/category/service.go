package category

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/model/category"
	"iptv-hub/blog-backend/pkg/response"
	"iptv-hub/blog-backend/pkg/slug"
)

type CategoryService struct {
	repo *CategoryRepository
	hub  *events.Hub
}

func NewCategoryService(repo *CategoryRepository, hub *events.Hub) *CategoryService {
	return &CategoryService{repo: repo, hub: hub}
}

// ListCategories 获取全部分类及已发布文章数，名称升序
func (s *CategoryService) ListCategories() ([]dto.CategoryWithCount, error) {
	categories, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountPublishedByCategory()
	if err != nil {
		return nil, err
	}

	result := make([]dto.CategoryWithCount, 0, len(categories))
	for _, cat := range categories {
		result = append(result, toCategoryWithCount(cat, counts[cat.ID]))
	}
	return result, nil
}

func toCategoryWithCount(cat category.Category, count int64) dto.CategoryWithCount {
	return dto.CategoryWithCount{
		ID:           cat.ID,
		Name:         cat.Name,
		Slug:         cat.Slug,
		Description:  cat.Description,
		Color:        cat.Color,
		Icon:         cat.Icon,
		ShowInMenu:   cat.ShowInMenu,
		MenuOrder:    cat.MenuOrder,
		IsActive:     cat.IsActive,
		MenuLabel:    cat.MenuLabel,
		ArticleCount: count,
	}
}

// GetCategory 获取单个分类
func (s *CategoryService) GetCategory(id uint) (*category.Category, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("分类不存在"),
			)
		}
		return nil, err
	}
	return cat, nil
}

// CreateCategory 创建分类
func (s *CategoryService) CreateCategory(req dto.CreateCategoryRequest) (*category.Category, error) {
	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	} else {
		categorySlug = slug.Make(categorySlug)
	}

	exists, err := s.repo.SlugExists(categorySlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("slug 已存在"),
		)
	}

	cat := &category.Category{
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		ShowInMenu:  true,
		MenuOrder:   req.MenuOrder,
		IsActive:    true,
		MenuLabel:   req.MenuLabel,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if req.ShowInMenu != nil {
		cat.ShowInMenu = *req.ShowInMenu
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if cat.Color == "" {
		cat.Color = "#3b82f6"
	}

	if err := s.repo.Create(cat); err != nil {
		return nil, err
	}

	s.publishSnapshot()
	return cat, nil
}

// UpdateCategory 更新分类
func (s *CategoryService) UpdateCategory(id uint, req dto.UpdateCategoryRequest) (*category.Category, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("分类不存在"),
			)
		}
		return nil, err
	}

	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	} else {
		categorySlug = slug.Make(categorySlug)
	}

	exists, err := s.repo.SlugExists(categorySlug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("slug 已存在"),
		)
	}

	cat.Name = req.Name
	cat.Slug = categorySlug
	cat.Description = req.Description
	if req.Color != "" {
		cat.Color = req.Color
	}
	cat.Icon = req.Icon
	if req.ShowInMenu != nil {
		cat.ShowInMenu = *req.ShowInMenu
	}
	if req.MenuOrder != nil {
		cat.MenuOrder = *req.MenuOrder
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	cat.MenuLabel = req.MenuLabel
	cat.UpdatedAt = time.Now()

	if err := s.repo.Update(cat); err != nil {
		return nil, err
	}

	s.publishSnapshot()
	return cat, nil
}

// DeleteCategory 删除分类，仍有文章归属时拒绝删除
func (s *CategoryService) DeleteCategory(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("分类不存在"),
			)
		}
		return err
	}

	count, err := s.repo.CountArticles(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("分类下仍有文章，无法删除"),
		)
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publishSnapshot()
	return nil
}

// publishSnapshot 推送启用分类的完整快照（菜单顺序升序）
// 每次变更后全量推送，消费端无需拼接增量
func (s *CategoryService) publishSnapshot() {
	categories, err := s.repo.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("加载分类快照失败，跳过推送")
		return
	}
	s.hub.Publish(events.TypeCategoriesUpdated, categories)
}
