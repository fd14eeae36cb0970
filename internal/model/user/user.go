// Package user 后台用户模型
package user

import "time"

// 后台用户角色
const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

// AdminUser 后台用户表
type AdminUser struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	// bcrypt 哈希，永远不对外输出
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	// 角色: ADMIN, EDITOR
	Role      string    `gorm:"type:varchar(20);default:'EDITOR'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
