package auth

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/user"
)

// AuthRepository 后台用户认证仓储层
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetByEmail(email string) (*user.AdminUser, error) {
	var u user.AdminUser
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *AuthRepository) GetByID(id uint) (*user.AdminUser, error) {
	var u user.AdminUser
	err := r.db.First(&u, id).Error
	return &u, err
}
