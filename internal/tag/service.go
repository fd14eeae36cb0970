package tag

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/tag"
	"iptv-hub/blog-backend/pkg/response"
	"iptv-hub/blog-backend/pkg/slug"
)

type TagService struct {
	repo *TagRepository
}

func NewTagService(repo *TagRepository) *TagService {
	return &TagService{repo: repo}
}

// ListTags 获取全部标签及文章数，创建时间倒序
func (s *TagService) ListTags() ([]dto.TagWithCount, error) {
	tags, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountArticlesByTag()
	if err != nil {
		return nil, err
	}

	result := make([]dto.TagWithCount, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.TagWithCount{
			ID:           t.ID,
			Name:         t.Name,
			Slug:         t.Slug,
			Description:  t.Description,
			Color:        t.Color,
			ArticleCount: counts[t.ID],
			CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// CreateTag 创建标签，名称与 slug 都要求唯一
func (s *TagService) CreateTag(req dto.CreateTagRequest) (*tag.Tag, error) {
	tagSlug := req.Slug
	if tagSlug == "" {
		tagSlug = slug.Make(req.Name)
	} else {
		tagSlug = slug.Make(tagSlug)
	}

	exists, err := s.repo.NameOrSlugExists(req.Name, tagSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("标签名称或 slug 已存在"),
		)
	}

	t := &tag.Tag{
		Name:        req.Name,
		Slug:        tagSlug,
		Description: req.Description,
		Color:       req.Color,
		CreatedAt:   time.Now(),
	}
	if t.Color == "" {
		t.Color = "#3B82F6"
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTag 更新标签
func (s *TagService) UpdateTag(id uint, req dto.UpdateTagRequest) (*tag.Tag, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("标签不存在"),
			)
		}
		return nil, err
	}

	tagSlug := req.Slug
	if tagSlug == "" {
		tagSlug = slug.Make(req.Name)
	} else {
		tagSlug = slug.Make(tagSlug)
	}

	exists, err := s.repo.NameOrSlugExists(req.Name, tagSlug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("标签名称或 slug 已存在"),
		)
	}

	t.Name = req.Name
	t.Slug = tagSlug
	t.Description = req.Description
	if req.Color != "" {
		t.Color = req.Color
	}

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTag 删除标签（解除文章关联，不阻塞删除）
func (s *TagService) DeleteTag(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("标签不存在"),
			)
		}
		return err
	}

	return s.repo.Delete(id)
}
