package export

import (
	"time"

	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/category"
	"iptv-hub/blog-backend/internal/model/comment"
	"iptv-hub/blog-backend/internal/model/tag"
	"iptv-hub/blog-backend/internal/model/user"
	"iptv-hub/blog-backend/internal/settings"
)

// ExportInfo 导出文件的元信息
type ExportInfo struct {
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
	SiteName   string    `json:"site_name"`
}

// ExportedUser 后台用户导出视图，不含密码哈希
type ExportedUser struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportedArticle 文章导出视图，内联作者/分类/标签
type ExportedArticle struct {
	article.Article
	AuthorName   string   `json:"author_name"`
	CategoryName string   `json:"category_name"`
	CategorySlug string   `json:"category_slug"`
	TagSlugs     []string `json:"tags"`
}

// ExportedComment 评论导出视图，内联文章标题与 slug
type ExportedComment struct {
	comment.Comment
	ArticleTitle string `json:"article_title"`
	ArticleSlug  string `json:"article_slug"`
}

// ExportDocument 完整导出文档
type ExportDocument struct {
	ExportInfo ExportInfo          `json:"exportInfo"`
	Settings   map[string]any      `json:"settings"`
	Categories []category.Category `json:"categories"`
	Tags       []tag.Tag           `json:"tags"`
	Articles   []ExportedArticle   `json:"articles"`
	Comments   []ExportedComment   `json:"comments"`
	AdminUsers []ExportedUser      `json:"adminUsers"`
}

type ExportService struct {
	db       *gorm.DB
	settings *settings.SettingsService
}

func NewExportService(db *gorm.DB, settingsService *settings.SettingsService) *ExportService {
	return &ExportService{db: db, settings: settingsService}
}

// BuildExport 汇总全站数据
func (s *ExportService) BuildExport() (*ExportDocument, error) {
	siteSettings := s.settings.GetSettings()

	var categories []category.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	categoryByID := make(map[uint]category.Category, len(categories))
	for _, cat := range categories {
		categoryByID[cat.ID] = cat
	}

	var tags []tag.Tag
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	tagByID := make(map[uint]tag.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}

	var users []user.AdminUser
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	userByID := make(map[uint]user.AdminUser, len(users))
	exportedUsers := make([]ExportedUser, 0, len(users))
	for _, u := range users {
		userByID[u.ID] = u
		exportedUsers = append(exportedUsers, ExportedUser{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	var articleTags []article.ArticleTag
	if err := s.db.Find(&articleTags).Error; err != nil {
		return nil, err
	}
	tagSlugsByArticle := make(map[uint][]string)
	for _, at := range articleTags {
		if t, ok := tagByID[at.TagID]; ok {
			tagSlugsByArticle[at.ArticleID] = append(tagSlugsByArticle[at.ArticleID], t.Slug)
		}
	}

	var articles []article.Article
	if err := s.db.Order("id ASC").Find(&articles).Error; err != nil {
		return nil, err
	}
	articleByID := make(map[uint]article.Article, len(articles))
	exportedArticles := make([]ExportedArticle, 0, len(articles))
	for _, art := range articles {
		articleByID[art.ID] = art
		exported := ExportedArticle{
			Article:  art,
			TagSlugs: tagSlugsByArticle[art.ID],
		}
		if exported.TagSlugs == nil {
			exported.TagSlugs = []string{}
		}
		if author, ok := userByID[art.AuthorID]; ok {
			exported.AuthorName = author.Name
		}
		if cat, ok := categoryByID[art.CategoryID]; ok {
			exported.CategoryName = cat.Name
			exported.CategorySlug = cat.Slug
		}
		exportedArticles = append(exportedArticles, exported)
	}

	var comments []comment.Comment
	if err := s.db.Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	exportedComments := make([]ExportedComment, 0, len(comments))
	for _, cmt := range comments {
		exported := ExportedComment{Comment: cmt}
		if art, ok := articleByID[cmt.ArticleID]; ok {
			exported.ArticleTitle = art.Title
			exported.ArticleSlug = art.Slug
		}
		exportedComments = append(exportedComments, exported)
	}

	siteName, _ := siteSettings["siteName"].(string)
	return &ExportDocument{
		ExportInfo: ExportInfo{
			ExportedAt: time.Now(),
			Version:    "1.0",
			SiteName:   siteName,
		},
		Settings:   siteSettings,
		Categories: categories,
		Tags:       tags,
		Articles:   exportedArticles,
		Comments:   exportedComments,
		AdminUsers: exportedUsers,
	}, nil
}
