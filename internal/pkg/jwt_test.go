package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"iptv-hub/blog-backend/config"
)

func setupJWTConfig() {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 168,
		},
	}
}

func TestGenerateAdminToken(t *testing.T) {
	setupJWTConfig()

	tests := []struct {
		name    string
		userID  uint
		email   string
		role    string
		wantErr bool
	}{
		{
			name:    "生成有效的访问令牌",
			userID:  1,
			email:   "admin@example.com",
			role:    "ADMIN",
			wantErr: false,
		},
		{
			name:    "编辑角色",
			userID:  2,
			email:   "editor@example.com",
			role:    "EDITOR",
			wantErr: false,
		},
		{
			name:    "邮箱为空",
			userID:  3,
			email:   "",
			role:    "ADMIN",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAdminToken(tt.userID, tt.email, "Test User", tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestParseAdminToken(t *testing.T) {
	setupJWTConfig()

	token, err := GenerateAdminToken(42, "admin@example.com", "Admin", "ADMIN")
	assert.NoError(t, err)

	claims, err := ParseAdminToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	// 有效期应约为 7 天
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseAdminToken_Invalid(t *testing.T) {
	setupJWTConfig()

	tests := []struct {
		name  string
		token string
	}{
		{"空字符串", ""},
		{"格式错误", "not-a-token"},
		{"签名被篡改", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdminToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	setupJWTConfig()
	token, err := GenerateAdminToken(1, "a@b.c", "A", "ADMIN")
	assert.NoError(t, err)

	config.Conf.JWT.Secret = "another-secret"
	_, err = ParseAdminToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	config.Conf.JWT.Secret = "test-secret-key"
}
