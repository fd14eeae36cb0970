package page

import (
	"testing"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/testutils"
	"iptv-hub/blog-backend/pkg/response"
)

func boolPtr(b bool) *bool { return &b }

// TestGetPageBySlug_InactiveHidden 停用页面不对外可见
func TestGetPageBySlug_InactiveHidden(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewPageService(NewPageRepository(db))

	created, err := svc.CreatePage(dto.CreatePageRequest{
		Title:    "About Us",
		Content:  "<p>about</p>",
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.GetPageBySlug(created.Slug)
	bizErr, ok := err.(*response.BusinessError)
	if !ok || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound for inactive page, got %v", err)
	}

	// 启用后可见
	if _, err := svc.UpdatePage(created.ID, dto.UpdatePageRequest{
		Title:    "About Us",
		Content:  "<p>about</p>",
		IsActive: boolPtr(true),
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.GetPageBySlug(created.Slug); err != nil {
		t.Errorf("active page should be visible: %v", err)
	}
}

// TestCreatePage_SlugConflict slug 重复时返回冲突
func TestCreatePage_SlugConflict(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewPageService(NewPageRepository(db))

	if _, err := svc.CreatePage(dto.CreatePageRequest{
		Title:   "Privacy Policy",
		Content: "<p>policy</p>",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreatePage(dto.CreatePageRequest{
		Title:   "Other Title",
		Slug:    "privacy-policy",
		Content: "<p>dup</p>",
	})
	bizErr, ok := err.(*response.BusinessError)
	if !ok || bizErr.Code != response.Conflict {
		t.Errorf("expected Conflict error, got %v", err)
	}
}

// TestCreatePage_SlugFromTitle 未提供 slug 时从标题生成
func TestCreatePage_SlugFromTitle(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewPageService(NewPageRepository(db))

	p, err := svc.CreatePage(dto.CreatePageRequest{
		Title:   "Terms of Service",
		Content: "<p>terms</p>",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Slug != "terms-of-service" {
		t.Errorf("slug = %q, want terms-of-service", p.Slug)
	}
	if !p.IsActive {
		t.Error("page should default to active")
	}
}
