package article

import (
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/tag"
	"iptv-hub/blog-backend/pkg/response"
	"iptv-hub/blog-backend/pkg/slug"
)

// 阅读时长按每分钟 200 词估算
const wordsPerMinute = 200

type ArticleService struct {
	repo *ArticleRepository
}

func NewArticleService(repo *ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo}
}

// calculateReadTime 估算阅读时长（分钟，向上取整）
func calculateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

// resolveSlug 规范化 slug：未提供时从标题生成
func resolveSlug(requested, title string) string {
	if requested != "" {
		return slug.Make(requested)
	}
	return slug.Make(title)
}

// ListArticles 获取文章列表（分页，带作者/分类/标签）
func (s *ArticleService) ListArticles(q dto.ArticleListQuery) (*dto.ArticleListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}

	articles, total, err := s.repo.List(q)
	if err != nil {
		return nil, err
	}

	items, err := s.buildListItems(articles)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(q.Limit)))
	return &dto.ArticleListResponse{
		Articles: items,
		Pagination: dto.Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// buildListItems 批量装配文章的作者/分类/标签
func (s *ArticleService) buildListItems(articles []article.Article) ([]dto.ArticleListItem, error) {
	items := make([]dto.ArticleListItem, 0, len(articles))
	if len(articles) == 0 {
		return items, nil
	}

	authorIDs := make([]uint, 0, len(articles))
	categoryIDs := make([]uint, 0, len(articles))
	articleIDs := make([]uint, 0, len(articles))
	for _, art := range articles {
		authorIDs = append(authorIDs, art.AuthorID)
		categoryIDs = append(categoryIDs, art.CategoryID)
		articleIDs = append(articleIDs, art.ID)
	}

	authors, err := s.repo.GetAuthors(authorIDs)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.GetCategories(categoryIDs)
	if err != nil {
		return nil, err
	}
	tagsByArticle, err := s.repo.GetTagsByArticles(articleIDs)
	if err != nil {
		return nil, err
	}

	for _, art := range articles {
		item := dto.ArticleListItem{
			ID:            art.ID,
			Title:         art.Title,
			Slug:          art.Slug,
			Excerpt:       art.Excerpt,
			FeaturedImage: art.FeaturedImage,
			Status:        art.Status,
			PublishedAt:   art.PublishedAt,
			CreatedAt:     art.CreatedAt,
			ViewCount:     art.ViewCount,
			ReadTime:      art.ReadTime,
			Tags:          toTagBriefs(tagsByArticle[art.ID]),
		}
		if author, ok := authors[art.AuthorID]; ok {
			item.Author = dto.AuthorBrief{ID: author.ID, Name: author.Name}
		}
		if cat, ok := categories[art.CategoryID]; ok {
			item.Category = dto.CategoryBrief{ID: cat.ID, Name: cat.Name, Slug: cat.Slug, Color: cat.Color}
		}
		items = append(items, item)
	}
	return items, nil
}

func toTagBriefs(tags []tag.Tag) []dto.TagBrief {
	briefs := make([]dto.TagBrief, 0, len(tags))
	for _, t := range tags {
		briefs = append(briefs, dto.TagBrief{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return briefs
}

// GetArticle 获取文章详情（含作者/分类/标签）
func (s *ArticleService) GetArticle(id uint) (map[string]interface{}, error) {
	art, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return nil, err
	}
	return s.buildDetail(art)
}

// GetArticleBySlug 根据 slug 获取已发布文章并增加阅读量
func (s *ArticleService) GetArticleBySlug(articleSlug string) (map[string]interface{}, error) {
	art, err := s.repo.GetPublishedBySlug(articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return nil, err
	}

	// 阅读量自增失败不阻塞读取
	_ = s.repo.IncrementViewCount(art.ID)
	art.ViewCount++

	return s.buildDetail(art)
}

// buildDetail 装配单篇文章的完整详情
func (s *ArticleService) buildDetail(art *article.Article) (map[string]interface{}, error) {
	authors, err := s.repo.GetAuthors([]uint{art.AuthorID})
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.GetCategories([]uint{art.CategoryID})
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.GetArticleTags(art.ID)
	if err != nil {
		return nil, err
	}

	detail := map[string]interface{}{
		"id":              art.ID,
		"title":           art.Title,
		"slug":            art.Slug,
		"excerpt":         art.Excerpt,
		"content":         art.Content,
		"featured_image":  art.FeaturedImage,
		"status":          art.Status,
		"published_at":    art.PublishedAt,
		"seo_title":       art.SeoTitle,
		"seo_description": art.SeoDescription,
		"seo_keywords":    art.SeoKeywords,
		"view_count":      art.ViewCount,
		"read_time":       art.ReadTime,
		"created_at":      art.CreatedAt,
		"updated_at":      art.UpdatedAt,
		"tags":            toTagBriefs(tags),
	}
	if author, ok := authors[art.AuthorID]; ok {
		detail["author"] = dto.AuthorBrief{ID: author.ID, Name: author.Name}
	}
	if cat, ok := categories[art.CategoryID]; ok {
		detail["category"] = dto.CategoryBrief{ID: cat.ID, Name: cat.Name, Slug: cat.Slug, Color: cat.Color}
	}
	return detail, nil
}

// CreateArticle 创建文章
func (s *ArticleService) CreateArticle(req dto.CreateArticleRequest, authorID uint) (map[string]interface{}, error) {
	// 1. 规范化 slug 并检查唯一性
	articleSlug := resolveSlug(req.Slug, req.Title)
	exists, err := s.repo.SlugExists(articleSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("slug 已存在"),
		)
	}

	// 2. 状态与发布时间
	status := req.Status
	if status == "" {
		status = article.StatusDraft
	}
	var publishedAt *time.Time
	if status == article.StatusPublished {
		if req.PublishedAt != nil {
			publishedAt = req.PublishedAt
		} else {
			now := time.Now()
			publishedAt = &now
		}
	}

	// 3. 创建文章记录
	art := &article.Article{
		Title:          req.Title,
		Slug:           articleSlug,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		FeaturedImage:  req.FeaturedImage,
		Status:         status,
		PublishedAt:    publishedAt,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		SeoKeywords:    req.SeoKeywords,
		ReadTime:       calculateReadTime(req.Content),
		AuthorID:       authorID,
		CategoryID:     req.CategoryID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.repo.Create(art); err != nil {
		return nil, err
	}

	// 4. 绑定标签
	if len(req.TagIDs) > 0 {
		if err := s.repo.ReplaceTags(art.ID, req.TagIDs); err != nil {
			return nil, err
		}
	}

	return s.buildDetail(art)
}

// UpdateArticle 更新文章
func (s *ArticleService) UpdateArticle(id uint, req dto.UpdateArticleRequest) (map[string]interface{}, error) {
	// 1. 获取现有文章
	art, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return nil, err
	}

	// 2. 规范化 slug 并检查唯一性（排除自身）
	articleSlug := resolveSlug(req.Slug, req.Title)
	exists, err := s.repo.SlugExists(articleSlug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("slug 已存在"),
		)
	}

	// 3. 状态迁移决定发布时间
	status := req.Status
	if status == "" {
		status = art.Status
	}
	switch {
	case status == article.StatusPublished && req.PublishedAt != nil:
		art.PublishedAt = req.PublishedAt
	case status == article.StatusPublished && art.PublishedAt == nil:
		now := time.Now()
		art.PublishedAt = &now
	case status != article.StatusPublished:
		art.PublishedAt = nil
	}

	art.Title = req.Title
	art.Slug = articleSlug
	art.Excerpt = req.Excerpt
	art.Content = req.Content
	art.FeaturedImage = req.FeaturedImage
	art.Status = status
	art.SeoTitle = req.SeoTitle
	art.SeoDescription = req.SeoDescription
	art.SeoKeywords = req.SeoKeywords
	art.ReadTime = calculateReadTime(req.Content)
	art.CategoryID = req.CategoryID
	art.UpdatedAt = time.Now()

	if err := s.repo.Update(art); err != nil {
		return nil, err
	}

	// 4. 整体替换标签集合
	if err := s.repo.ReplaceTags(art.ID, req.TagIDs); err != nil {
		return nil, err
	}

	return s.buildDetail(art)
}

// DeleteArticle 删除文章及其标签关联
func (s *ArticleService) DeleteArticle(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return err
	}

	if err := s.repo.RemoveArticleTags(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
