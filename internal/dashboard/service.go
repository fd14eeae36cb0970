package dashboard

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/category"
	"iptv-hub/blog-backend/internal/model/comment"
	"iptv-hub/blog-backend/internal/model/tag"
)

// Stats 后台概览统计
type Stats struct {
	TotalArticles     int64           `json:"total_articles"`
	PublishedArticles int64           `json:"published_articles"`
	DraftArticles     int64           `json:"draft_articles"`
	TotalCategories   int64           `json:"total_categories"`
	TotalTags         int64           `json:"total_tags"`
	PendingComments   int64           `json:"pending_comments"`
	TotalViews        int64           `json:"total_views"`
	RecentArticles    []RecentArticle `json:"recent_articles"`
}

// RecentArticle 最近文章摘要
type RecentArticle struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Status    string `json:"status"`
	ViewCount uint   `json:"view_count"`
	CreatedAt string `json:"created_at"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// 最近文章条数
const recentArticleLimit = 5

// GetStats 汇总后台概览数据
func (s *DashboardService) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Model(&article.Article{}).Count(&stats.TotalArticles).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&article.Article{}).
		Where("status = ?", article.StatusPublished).
		Count(&stats.PublishedArticles).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&article.Article{}).
		Where("status = ?", article.StatusDraft).
		Count(&stats.DraftArticles).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&category.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&tag.Tag{}).Count(&stats.TotalTags).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&comment.Comment{}).
		Where("is_approved = ?", false).
		Count(&stats.PendingComments).Error; err != nil {
		return nil, err
	}

	var totalViews *int64
	if err := s.db.Model(&article.Article{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&totalViews).Error; err != nil {
		return nil, err
	}
	if totalViews != nil {
		stats.TotalViews = *totalViews
	}

	var recent []article.Article
	if err := s.db.Order("created_at DESC").
		Limit(recentArticleLimit).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	stats.RecentArticles = make([]RecentArticle, 0, len(recent))
	for _, art := range recent {
		stats.RecentArticles = append(stats.RecentArticles, RecentArticle{
			ID:        art.ID,
			Title:     art.Title,
			Slug:      art.Slug,
			Status:    art.Status,
			ViewCount: art.ViewCount,
			CreatedAt: art.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return stats, nil
}
