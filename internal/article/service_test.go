package article

import (
	"testing"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/article"
	"iptv-hub/blog-backend/internal/testutils"
	"iptv-hub/blog-backend/pkg/response"
)

// TestCalculateReadTime 阅读时长按每分钟 200 词向上取整
func TestCalculateReadTime(t *testing.T) {
	words := func(n int) string {
		s := ""
		for i := 0; i < n; i++ {
			s += "word "
		}
		return s
	}

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"single word", "hello", 1},
		{"exactly one minute", words(200), 1},
		{"just over one minute", words(201), 2},
		{"two minutes", words(400), 2},
		{"under one minute", words(199), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateReadTime(tt.content); got != tt.want {
				t.Errorf("calculateReadTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestResolveSlug 未提供 slug 时从标题生成
func TestResolveSlug(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		title     string
		want      string
	}{
		{"explicit slug wins", "custom-slug", "Some Title", "custom-slug"},
		{"explicit slug normalized", "Custom Slug!", "Some Title", "custom-slug"},
		{"derived from title", "", "Hello World", "hello-world"},
		{"title with punctuation", "", "IPTV: The Future?", "iptv-the-future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSlug(tt.requested, tt.title); got != tt.want {
				t.Errorf("resolveSlug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestService(t *testing.T) (*ArticleService, *testServiceDeps) {
	db := testutils.SetupTestDB(t)
	repo := NewArticleRepository(db)
	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	return NewArticleService(repo), &testServiceDeps{
		adminID:    admin.ID,
		categoryID: cat.ID,
		repo:       repo,
	}
}

type testServiceDeps struct {
	adminID    uint
	categoryID uint
	repo       *ArticleRepository
}

// TestCreateArticle_SlugConflict slug 重复时返回冲突错误
func TestCreateArticle_SlugConflict(t *testing.T) {
	svc, deps := newTestService(t)

	req := dto.CreateArticleRequest{
		Title:      "First Article",
		Slug:       "duplicate-slug",
		Content:    "content body",
		CategoryID: deps.categoryID,
	}
	if _, err := svc.CreateArticle(req, deps.adminID); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	req.Title = "Second Article"
	_, err := svc.CreateArticle(req, deps.adminID)
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	bizErr, ok := err.(*response.BusinessError)
	if !ok {
		t.Fatalf("expected BusinessError, got %T", err)
	}
	if bizErr.Code != response.Conflict {
		t.Errorf("error code = %d, want Conflict", bizErr.Code)
	}
}

// TestCreateArticle_PublishSetsTimestamp 直接发布时自动写入发布时间
func TestCreateArticle_PublishSetsTimestamp(t *testing.T) {
	svc, deps := newTestService(t)

	detail, err := svc.CreateArticle(dto.CreateArticleRequest{
		Title:      "Published On Create",
		Content:    "content",
		CategoryID: deps.categoryID,
		Status:     article.StatusPublished,
	}, deps.adminID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if detail["published_at"] == nil {
		t.Error("published_at should be set for PUBLISHED article")
	}
}

// TestUpdateArticle_PublishTransitions 状态迁移决定发布时间
func TestUpdateArticle_PublishTransitions(t *testing.T) {
	svc, deps := newTestService(t)

	detail, err := svc.CreateArticle(dto.CreateArticleRequest{
		Title:      "Draft Article",
		Content:    "content",
		CategoryID: deps.categoryID,
	}, deps.adminID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	articleID := detail["id"].(uint)

	// 草稿没有发布时间
	if art, _ := deps.repo.GetByID(articleID); art.PublishedAt != nil {
		t.Error("draft should not have published_at")
	}

	// DRAFT -> PUBLISHED 写入发布时间
	updateReq := dto.UpdateArticleRequest{
		Title:      "Draft Article",
		Content:    "content",
		CategoryID: deps.categoryID,
		Status:     article.StatusPublished,
	}
	detail, err = svc.UpdateArticle(articleID, updateReq)
	if err != nil {
		t.Fatalf("publish update failed: %v", err)
	}
	art, err := deps.repo.GetByID(articleID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if art.PublishedAt == nil {
		t.Fatal("published_at should be set after transition to PUBLISHED")
	}
	firstPublish := *art.PublishedAt

	// 再次保存 PUBLISHED 不改写发布时间
	if _, err := svc.UpdateArticle(articleID, updateReq); err != nil {
		t.Fatalf("republish update failed: %v", err)
	}
	art, _ = deps.repo.GetByID(articleID)
	if art.PublishedAt == nil || !art.PublishedAt.Equal(firstPublish) {
		t.Error("published_at should be stable across repeated PUBLISHED saves")
	}

	// PUBLISHED -> ARCHIVED 清空发布时间
	updateReq.Status = article.StatusArchived
	if _, err := svc.UpdateArticle(articleID, updateReq); err != nil {
		t.Fatalf("archive update failed: %v", err)
	}
	art, _ = deps.repo.GetByID(articleID)
	if art.PublishedAt != nil {
		t.Error("published_at should be cleared when leaving PUBLISHED")
	}
}

// TestUpdateArticle_ReplacesTags 更新时整体替换标签集合
func TestUpdateArticle_ReplacesTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewArticleRepository(db)
	svc := NewArticleService(repo)
	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	tag1 := testutils.CreateTestTag(db)
	tag2 := testutils.CreateTestTag(db)
	tag3 := testutils.CreateTestTag(db)

	detail, err := svc.CreateArticle(dto.CreateArticleRequest{
		Title:      "Tagged Article",
		Content:    "content",
		CategoryID: cat.ID,
		TagIDs:     []uint{tag1.ID, tag2.ID},
	}, admin.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	articleID := detail["id"].(uint)

	_, err = svc.UpdateArticle(articleID, dto.UpdateArticleRequest{
		Title:      "Tagged Article",
		Content:    "content",
		CategoryID: cat.ID,
		TagIDs:     []uint{tag3.ID},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	tags, err := repo.GetArticleTags(articleID)
	if err != nil {
		t.Fatalf("get tags failed: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != tag3.ID {
		t.Errorf("tag set = %v, want only tag %d", tags, tag3.ID)
	}
}

// TestGetArticleBySlug_IncrementsViewCount slug 查询使阅读量 +1
func TestGetArticleBySlug_IncrementsViewCount(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewArticleRepository(db)
	svc := NewArticleService(repo)
	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	art := testutils.CreateTestArticle(db, admin.ID, cat.ID,
		testutils.WithStatus(article.StatusPublished))

	detail, err := svc.GetArticleBySlug(art.Slug)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got := detail["view_count"].(uint); got != 1 {
		t.Errorf("view_count = %d, want 1", got)
	}

	reloaded, _ := repo.GetByID(art.ID)
	if reloaded.ViewCount != 1 {
		t.Errorf("persisted view_count = %d, want 1", reloaded.ViewCount)
	}
}

// TestGetArticleBySlug_DraftNotFound 草稿不能通过 slug 公开访问
func TestGetArticleBySlug_DraftNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewArticleRepository(db)
	svc := NewArticleService(repo)
	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	art := testutils.CreateTestArticle(db, admin.ID, cat.ID) // DRAFT

	_, err := svc.GetArticleBySlug(art.Slug)
	if err == nil {
		t.Fatal("expected not found for draft article")
	}
	bizErr, ok := err.(*response.BusinessError)
	if !ok || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound error, got %v", err)
	}
}

// TestListArticles_DefaultPublishedOnly 默认仅返回已发布文章
func TestListArticles_DefaultPublishedOnly(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewArticleRepository(db)
	svc := NewArticleService(repo)
	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)

	testutils.CreateTestArticle(db, admin.ID, cat.ID,
		testutils.WithStatus(article.StatusPublished))
	testutils.CreateTestArticle(db, admin.ID, cat.ID) // DRAFT

	result, err := svc.ListArticles(dto.ArticleListQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Pagination.Total != 1 {
		t.Errorf("total = %d, want 1", result.Pagination.Total)
	}

	// status=all 返回全部
	result, err = svc.ListArticles(dto.ArticleListQuery{Page: 1, Limit: 10, Status: "all"})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if result.Pagination.Total != 2 {
		t.Errorf("total with status=all = %d, want 2", result.Pagination.Total)
	}
}

// TestListArticles_FilterByCategorySlug 按分类 slug 过滤
func TestListArticles_FilterByCategorySlug(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewArticleRepository(db)
	svc := NewArticleService(repo)
	admin := testutils.CreateTestAdmin(db)
	cat1 := testutils.CreateTestCategory(db)
	cat2 := testutils.CreateTestCategory(db)

	testutils.CreateTestArticle(db, admin.ID, cat1.ID,
		testutils.WithStatus(article.StatusPublished))
	testutils.CreateTestArticle(db, admin.ID, cat2.ID,
		testutils.WithStatus(article.StatusPublished))

	result, err := svc.ListArticles(dto.ArticleListQuery{Page: 1, Limit: 10, Category: cat1.Slug})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Pagination.Total != 1 {
		t.Errorf("total = %d, want 1", result.Pagination.Total)
	}
	if len(result.Articles) == 1 && result.Articles[0].Category.Slug != cat1.Slug {
		t.Errorf("category slug = %s, want %s", result.Articles[0].Category.Slug, cat1.Slug)
	}
}
