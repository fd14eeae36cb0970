package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/model/category"
	"iptv-hub/blog-backend/internal/model/tag"
	"iptv-hub/blog-backend/internal/model/user"
	"iptv-hub/blog-backend/pkg/slug"
)

// CreateTestAdmin creates an admin user with a unique email.
// The plaintext password is "password123".
func CreateTestAdmin(db *gorm.DB, opts ...AdminOption) *user.AdminUser {
	uniqueID := uuid.New().String()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	testAdmin := &user.AdminUser{
		Email:     fmt.Sprintf("admin_%s@example.com", uniqueID),
		Name:      "Test Admin",
		Password:  string(hash),
		Role:      user.RoleAdmin,
		CreatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testAdmin)
	}

	if err := db.Create(testAdmin).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test admin: %v", err))
	}

	return testAdmin
}

// AdminOption configures test admin user
type AdminOption func(*user.AdminUser)

// WithEmail sets the email
func WithEmail(email string) AdminOption {
	return func(u *user.AdminUser) {
		u.Email = email
	}
}

// WithRole sets the role
func WithRole(role string) AdminOption {
	return func(u *user.AdminUser) {
		u.Role = role
	}
}

// CreateTestCategory creates a category with a unique slug
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *category.Category {
	uniqueID := uuid.New().String()
	name := fmt.Sprintf("Test Category %s", uniqueID)

	testCategory := &category.Category{
		Name:       name,
		Slug:       slug.Make(name),
		ShowInMenu: true,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(testCategory)
	}

	if err := db.Create(testCategory).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}

	return testCategory
}

// CategoryOption configures test category
type CategoryOption func(*category.Category)

// WithCategoryName sets name and derived slug
func WithCategoryName(name string) CategoryOption {
	return func(c *category.Category) {
		c.Name = name
		c.Slug = slug.Make(name)
	}
}

// WithMenuOrder sets the menu order
func WithMenuOrder(order int) CategoryOption {
	return func(c *category.Category) {
		c.MenuOrder = order
	}
}

// CreateTestTag creates a tag with a unique slug
func CreateTestTag(db *gorm.DB) *tag.Tag {
	uniqueID := uuid.New().String()
	name := fmt.Sprintf("tag-%s", uniqueID)

	testTag := &tag.Tag{
		Name:      name,
		Slug:      slug.Make(name),
		Color:     "#3B82F6",
		CreatedAt: time.Now(),
	}

	if err := db.Create(testTag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}

	return testTag
}

// CreateTestArticle creates an article owned by the given author and category
func CreateTestArticle(db *gorm.DB, authorID, categoryID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()
	title := fmt.Sprintf("Test Article %s", uniqueID)

	testArticle := &article.Article{
		Title:      title,
		Slug:       slug.Make(title),
		Content:    "<p>Test content</p>",
		Status:     article.StatusDraft,
		AuthorID:   authorID,
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets title and derived slug
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
		a.Slug = slug.Make(title)
	}
}

// WithStatus sets the status; PUBLISHED also sets the publish timestamp
func WithStatus(status string) ArticleOption {
	return func(a *article.Article) {
		a.Status = status
		if status == article.StatusPublished && a.PublishedAt == nil {
			now := time.Now()
			a.PublishedAt = &now
		}
	}
}
