// Package category 分类模型
package category

import "time"

// Category 分类表
// 约束：slug 唯一；仍有文章归属时不允许删除
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	// 展示颜色
	Color string `gorm:"type:varchar(20);default:'#3b82f6'" json:"color"`
	// 图标名称（前端图标库的 key）
	Icon string `gorm:"type:varchar(50)" json:"icon"`
	// 是否出现在导航菜单
	ShowInMenu bool `gorm:"default:true" json:"show_in_menu"`
	// 菜单排序，升序稳定排序
	MenuOrder int  `gorm:"default:0" json:"menu_order"`
	IsActive  bool `gorm:"default:true" json:"is_active"`
	// 菜单自定义标签，为空时使用 Name
	MenuLabel string    `gorm:"type:varchar(100)" json:"menu_label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
