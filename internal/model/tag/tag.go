// Package tag 标签模型
package tag

import "time"

// Tag 标签表
// 删除标签时解除与文章的关联，不阻塞删除
type Tag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"type:varchar(20);default:'#3B82F6'" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}
