package profile

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/user"
	"iptv-hub/blog-backend/pkg/response"
)

// 密码哈希强度
const bcryptCost = 12

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) getUser(userID uint) (*user.AdminUser, error) {
	var u user.AdminUser
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("用户不存在或已被删除"),
			)
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile 更新姓名和邮箱，邮箱要求全局唯一
func (s *ProfileService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	u, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	// 换邮箱时检查占用
	if req.Email != u.Email {
		var count int64
		if err := s.db.Model(&user.AdminUser{}).
			Where("email = ? AND id != ?", req.Email, userID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Conflict),
				response.WithErrorMessage("邮箱已被使用"),
			)
		}
	}

	u.Name = req.Name
	u.Email = req.Email
	u.UpdatedAt = time.Now()
	if err := s.db.Save(u).Error; err != nil {
		return nil, err
	}

	return &dto.UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// ChangePassword 修改密码，需要验证当前密码
func (s *ProfileService) ChangePassword(userID uint, req dto.ChangePasswordRequest) error {
	u, err := s.getUser(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("当前密码不正确"),
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	u.UpdatedAt = time.Now()
	return s.db.Save(u).Error
}
