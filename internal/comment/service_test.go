package comment

import (
	"testing"

	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/internal/testutils"
	"iptv-hub/blog-backend/pkg/response"
)

// newTestService 带指定设置开关的评论服务
func newTestService(t *testing.T, db *gorm.DB, overrides map[string]any) *CommentService {
	t.Helper()
	settingsService := settings.NewSettingsService(
		settings.NewSettingsRepository(db),
		settings.NewCache(0),
		events.NewHub(),
	)
	if len(overrides) > 0 {
		if err := settingsService.UpdateSettings(overrides); err != nil {
			t.Fatalf("apply settings failed: %v", err)
		}
	}
	return NewCommentService(NewCommentRepository(db), settingsService)
}

// TestCreateComment_DisabledByDefault 默认 enableComments=false 时拒绝评论
func TestCreateComment_DisabledByDefault(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newTestService(t, db, nil)

	_, err := svc.CreateComment(dto.CreateCommentRequest{
		ArticleID:   1,
		Content:     "nice article",
		AuthorName:  "Guest",
		AuthorEmail: "guest@example.com",
	})
	bizErr, ok := err.(*response.BusinessError)
	if !ok || bizErr.Code != response.Forbidden {
		t.Errorf("expected Forbidden error, got %v", err)
	}
}

// TestCreateComment_ArticleMustExist 文章不存在时返回 NotFound
func TestCreateComment_ArticleMustExist(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newTestService(t, db, map[string]any{"enableComments": true})

	_, err := svc.CreateComment(dto.CreateCommentRequest{
		ArticleID:   99999999,
		Content:     "orphan comment",
		AuthorName:  "Guest",
		AuthorEmail: "guest@example.com",
	})
	bizErr, ok := err.(*response.BusinessError)
	if !ok || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound error, got %v", err)
	}
}

// TestCreateComment_ModerationGate 审核开关决定初始状态
func TestCreateComment_ModerationGate(t *testing.T) {
	tests := []struct {
		name         string
		moderate     bool
		wantApproved bool
	}{
		{"moderation on holds comment", true, false},
		{"moderation off approves immediately", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.SetupTestDB(t)
			svc := newTestService(t, db, map[string]any{
				"enableComments":   true,
				"moderateComments": tt.moderate,
			})

			admin := testutils.CreateTestAdmin(db)
			cat := testutils.CreateTestCategory(db)
			art := testutils.CreateTestArticle(db, admin.ID, cat.ID)

			cmt, err := svc.CreateComment(dto.CreateCommentRequest{
				ArticleID:   art.ID,
				Content:     "great read",
				AuthorName:  "Guest",
				AuthorEmail: "guest@example.com",
			})
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if cmt.IsApproved != tt.wantApproved {
				t.Errorf("is_approved = %v, want %v", cmt.IsApproved, tt.wantApproved)
			}
			if !cmt.IsGuest {
				t.Error("guest comment should have is_guest=true")
			}
		})
	}
}

// TestListComments_OnlyApproved 公开列表只含已通过评论
func TestListComments_OnlyApproved(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newTestService(t, db, map[string]any{
		"enableComments":   true,
		"moderateComments": true,
	})

	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	art := testutils.CreateTestArticle(db, admin.ID, cat.ID)

	held, err := svc.CreateComment(dto.CreateCommentRequest{
		ArticleID:   art.ID,
		Content:     "pending comment",
		AuthorName:  "Guest",
		AuthorEmail: "guest@example.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	comments, err := svc.ListComments(art.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("public list should exclude pending comments, got %d", len(comments))
	}

	// 审核通过后出现在公开列表
	if _, err := svc.ModerateComment(held.ID, true); err != nil {
		t.Fatalf("moderate failed: %v", err)
	}
	comments, _ = svc.ListComments(art.ID)
	if len(comments) != 1 {
		t.Errorf("approved comment missing, got %d", len(comments))
	}
}

// TestListAdminComments_StatusFilter 后台列表按审核状态过滤
func TestListAdminComments_StatusFilter(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newTestService(t, db, map[string]any{
		"enableComments":   true,
		"moderateComments": true,
	})

	admin := testutils.CreateTestAdmin(db)
	cat := testutils.CreateTestCategory(db)
	art := testutils.CreateTestArticle(db, admin.ID, cat.ID)

	pending, _ := svc.CreateComment(dto.CreateCommentRequest{
		ArticleID:   art.ID,
		Content:     "one",
		AuthorName:  "Guest",
		AuthorEmail: "guest@example.com",
	})
	approved, _ := svc.CreateComment(dto.CreateCommentRequest{
		ArticleID:   art.ID,
		Content:     "two",
		AuthorName:  "Guest",
		AuthorEmail: "guest@example.com",
	})
	if _, err := svc.ModerateComment(approved.ID, true); err != nil {
		t.Fatalf("moderate failed: %v", err)
	}

	pendingList, err := svc.ListAdminComments("pending")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pendingList) != 1 || pendingList[0].ID != pending.ID {
		t.Errorf("pending filter wrong: %v", pendingList)
	}

	approvedList, _ := svc.ListAdminComments("approved")
	if len(approvedList) != 1 || approvedList[0].ID != approved.ID {
		t.Errorf("approved filter wrong: %v", approvedList)
	}

	all, _ := svc.ListAdminComments("")
	if len(all) != 2 {
		t.Errorf("unfiltered list = %d, want 2", len(all))
	}
}
