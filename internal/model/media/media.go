// Package media 上传资源模型
package media

import "time"

// Media 上传资源记录，文件本体存储在外部 CDN
type Media struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FileName string `gorm:"type:varchar(255);not null" json:"file_name"`
	// CDN 返回的公开访问地址
	URL string `gorm:"type:varchar(500);not null" json:"url"`
	// CDN 侧的文件 ID，用于后续管理
	FileID       string    `gorm:"type:varchar(100)" json:"file_id"`
	Size         int64     `gorm:"default:0" json:"size"`
	MimeType     string    `gorm:"type:varchar(100)" json:"mime_type"`
	ThumbnailURL string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	UploadedBy   uint      `gorm:"index" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}
