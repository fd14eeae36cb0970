package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/pkg"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/pkg/response"
)

type AuthService struct {
	repo     *AuthRepository
	limiter  *LoginLimiter
	settings *settings.SettingsService
}

func NewAuthService(repo *AuthRepository, limiter *LoginLimiter, settingsService *settings.SettingsService) *AuthService {
	return &AuthService{repo: repo, limiter: limiter, settings: settingsService}
}

// invalidCredentials 统一的登录失败错误，不区分"用户不存在"和"密码错误"
func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("邮箱或密码错误"),
	)
}

// Login 后台登录，成功返回令牌与用户信息
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, clientIP string) (string, *dto.UserInfo, error) {
	maxAttempts := s.settings.GetInt("maxLoginAttempts")
	if s.limiter.Blocked(ctx, req.Email, clientIP, maxAttempts) {
		return "", nil, response.NewBusinessError(
			response.WithErrorCode(response.TooManyRequests),
			response.WithErrorMessage("登录尝试过于频繁，请稍后再试"),
		)
	}

	// 1. 查询用户
	u, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.limiter.RecordFailure(ctx, req.Email, clientIP)
			return "", nil, invalidCredentials()
		}
		return "", nil, err
	}

	// 2. 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.limiter.RecordFailure(ctx, req.Email, clientIP)
		return "", nil, invalidCredentials()
	}

	// 3. 生成令牌
	token, err := pkg.GenerateAdminToken(u.ID, u.Email, u.Name, u.Role)
	if err != nil {
		return "", nil, err
	}

	s.limiter.Reset(ctx, req.Email, clientIP)
	return token, &dto.UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// GetCurrentUser 获取当前登录用户信息
func (s *AuthService) GetCurrentUser(userID uint) (*dto.UserInfo, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("用户不存在或已被删除"),
			)
		}
		return nil, err
	}
	return &dto.UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}
