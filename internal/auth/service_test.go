package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/config"
	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/internal/testutils"
	"iptv-hub/blog-backend/pkg/response"
)

func setupService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	config.Conf.JWT.Secret = "test-secret"
	config.Conf.JWT.ExpireTime = 1

	settingsService := settings.NewSettingsService(
		settings.NewSettingsRepository(db),
		settings.NewCache(0),
		events.NewHub(),
	)
	// Redis 未接入，限流降级为关闭
	return NewAuthService(NewAuthRepository(db), NewLoginLimiter(nil), settingsService)
}

// TestLogin_Success 正确凭证登录成功
func TestLogin_Success(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := setupService(t, db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	admin := testutils.CreateTestAdmin(db, testutils.WithEmail("login@example.com"))
	db.Model(admin).Update("password", string(hash))

	token, userInfo, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "login@example.com",
		Password: "correct-password",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if userInfo.Email != "login@example.com" {
		t.Errorf("user email = %s", userInfo.Email)
	}
}

// TestLogin_GenericFailureMessage 未知邮箱和错误密码返回相同错误
func TestLogin_GenericFailureMessage(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := setupService(t, db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	admin := testutils.CreateTestAdmin(db, testutils.WithEmail("known@example.com"))
	db.Model(admin).Update("password", string(hash))

	_, _, errUnknown := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "unknown@example.com",
		Password: "whatever",
	}, "127.0.0.1")
	_, _, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	}, "127.0.0.1")

	bizUnknown, ok1 := errUnknown.(*response.BusinessError)
	bizWrong, ok2 := errWrongPass.(*response.BusinessError)
	if !ok1 || !ok2 {
		t.Fatalf("expected BusinessError, got %v / %v", errUnknown, errWrongPass)
	}
	if bizUnknown.Code != response.Unauthorized || bizWrong.Code != response.Unauthorized {
		t.Error("both failures should be Unauthorized")
	}
	// 不泄露用户是否存在
	if bizUnknown.Msg != bizWrong.Msg {
		t.Errorf("failure messages differ: %q vs %q", bizUnknown.Msg, bizWrong.Msg)
	}
}

// TestGetCurrentUser_Deleted 被删除的用户返回未认证
func TestGetCurrentUser_Deleted(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := setupService(t, db)

	_, err := svc.GetCurrentUser(99999999)
	bizErr, ok := err.(*response.BusinessError)
	if !ok || bizErr.Code != response.Unauthorized {
		t.Errorf("expected Unauthorized error, got %v", err)
	}
}

// TestLoginLimiter_NilRedisAlwaysAllows Redis 未接入时限流放行
func TestLoginLimiter_NilRedisAlwaysAllows(t *testing.T) {
	limiter := NewLoginLimiter(nil)
	ctx := context.Background()

	if limiter.Blocked(ctx, "a@example.com", "127.0.0.1", 1) {
		t.Error("nil redis should never block")
	}
	// 不会 panic
	limiter.RecordFailure(ctx, "a@example.com", "127.0.0.1")
	limiter.Reset(ctx, "a@example.com", "127.0.0.1")
}
