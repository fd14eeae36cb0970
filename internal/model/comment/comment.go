// Package comment 评论模型
package comment

import "time"

// Comment 评论表
// 审核默认值取决于站点设置 moderateComments
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArticleID uint   `gorm:"not null;index" json:"article_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	// 游客评论的作者信息
	AuthorName  string `gorm:"type:varchar(100);not null" json:"author_name"`
	AuthorEmail string `gorm:"type:varchar(255);not null" json:"author_email"`
	AuthorURL   string `gorm:"type:varchar(500)" json:"author_url"`
	IsApproved  bool   `gorm:"default:false;index" json:"is_approved"`
	IsGuest     bool   `gorm:"default:true" json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}
