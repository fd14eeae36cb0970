package dashboard

import (
	"testing"

	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/testutils"
)

// TestGetStats_Counts 统计数字与数据一致
func TestGetStats_Counts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewDashboardService(db)

	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	testutils.CreateTestTag(db)

	testutils.CreateTestArticle(db, admin.ID, cat.ID,
		testutils.WithStatus(article.StatusPublished))
	testutils.CreateTestArticle(db, admin.ID, cat.ID) // DRAFT

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}

	if stats.TotalArticles != 2 {
		t.Errorf("total_articles = %d, want 2", stats.TotalArticles)
	}
	if stats.PublishedArticles != 1 {
		t.Errorf("published_articles = %d, want 1", stats.PublishedArticles)
	}
	if stats.DraftArticles != 1 {
		t.Errorf("draft_articles = %d, want 1", stats.DraftArticles)
	}
	if stats.TotalCategories != 1 {
		t.Errorf("total_categories = %d, want 1", stats.TotalCategories)
	}
	if stats.TotalTags != 1 {
		t.Errorf("total_tags = %d, want 1", stats.TotalTags)
	}
	if len(stats.RecentArticles) != 2 {
		t.Errorf("recent_articles = %d, want 2", len(stats.RecentArticles))
	}
}

// TestGetStats_Empty 空库不报错
func TestGetStats_Empty(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewDashboardService(db)

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}
	if stats.TotalViews != 0 {
		t.Errorf("total_views = %d, want 0", stats.TotalViews)
	}
	if len(stats.RecentArticles) != 0 {
		t.Errorf("recent_articles should be empty")
	}
}
