package page

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/page"
	"iptv-hub/blog-backend/pkg/response"
	"iptv-hub/blog-backend/pkg/slug"
)

type PageService struct {
	repo *PageRepository
}

func NewPageService(repo *PageRepository) *PageService {
	return &PageService{repo: repo}
}

func notFoundErr() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("页面不存在"),
	)
}

// GetPageBySlug 公开访问启用中的页面
func (s *PageService) GetPageBySlug(pageSlug string) (*page.Page, error) {
	p, err := s.repo.GetActiveBySlug(pageSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr()
		}
		return nil, err
	}
	return p, nil
}

// ListPages 后台页面列表
func (s *PageService) ListPages() ([]page.Page, error) {
	return s.repo.ListAll()
}

// GetPage 后台获取页面详情
func (s *PageService) GetPage(id uint) (*page.Page, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr()
		}
		return nil, err
	}
	return p, nil
}

// CreatePage 创建页面
func (s *PageService) CreatePage(req dto.CreatePageRequest) (*page.Page, error) {
	pageSlug := req.Slug
	if pageSlug == "" {
		pageSlug = slug.Make(req.Title)
	} else {
		pageSlug = slug.Make(pageSlug)
	}

	exists, err := s.repo.SlugExists(pageSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("slug 已存在"),
		)
	}

	p := &page.Page{
		Title:     req.Title,
		Slug:      pageSlug,
		Content:   req.Content,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePage 更新页面
func (s *PageService) UpdatePage(id uint, req dto.UpdatePageRequest) (*page.Page, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr()
		}
		return nil, err
	}

	pageSlug := req.Slug
	if pageSlug == "" {
		pageSlug = slug.Make(req.Title)
	} else {
		pageSlug = slug.Make(pageSlug)
	}

	exists, err := s.repo.SlugExists(pageSlug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("slug 已存在"),
		)
	}

	p.Title = req.Title
	p.Slug = pageSlug
	p.Content = req.Content
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePage 删除页面
func (s *PageService) DeletePage(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr()
		}
		return err
	}
	return s.repo.Delete(id)
}
