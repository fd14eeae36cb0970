package settings

import (
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/model/setting"
)

// SettingsRepository 设置仓储层
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// ListAll 读取全部设置行
func (r *SettingsRepository) ListAll() ([]setting.SiteSetting, error) {
	var rows []setting.SiteSetting
	err := r.db.Find(&rows).Error
	return rows, err
}

// Upsert 按键更新设置，不存在则创建
func (r *SettingsRepository) Upsert(key, value, valueType string) error {
	result := r.db.Model(&setting.SiteSetting{}).
		Where("key = ?", key).
		Updates(map[string]any{"value": value, "type": valueType})

	if result.Error != nil {
		return result.Error
	}

	// 如果没有行被更新，说明记录不存在，则创建它
	if result.RowsAffected == 0 {
		return r.db.Create(&setting.SiteSetting{
			Key:   key,
			Value: value,
			Type:  valueType,
		}).Error
	}

	return nil
}
