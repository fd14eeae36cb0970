package settings

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/model/setting"
)

// SettingsService 站点设置服务：读取时合并默认值，写入时广播变更
type SettingsService struct {
	repo  *SettingsRepository
	cache *Cache
	hub   *events.Hub
}

func NewSettingsService(repo *SettingsRepository, cache *Cache, hub *events.Hub) *SettingsService {
	return &SettingsService{
		repo:  repo,
		cache: cache,
		hub:   hub,
	}
}

// GetSettings 获取合并后的设置集合（默认值 + 数据库覆盖）
// 数据库不可用时回退为默认值，公开站点不因后端抖动报错
func (s *SettingsService) GetSettings() map[string]any {
	if cached, ok := s.cache.Get(); ok {
		return cached
	}

	merged := Defaults()

	rows, err := s.repo.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("读取站点设置失败，使用默认值")
		return merged
	}

	for _, row := range rows {
		merged[row.Key] = row.Decode()
	}

	s.cache.Set(merged)
	return merged
}

// UpdateSettings 批量更新设置
// 每个键按值类型编码后 upsert，随后失效缓存并广播变更
func (s *SettingsService) UpdateSettings(body map[string]any) error {
	for key, value := range body {
		stringValue, valueType := setting.Encode(value)
		if err := s.repo.Upsert(key, stringValue, valueType); err != nil {
			return fmt.Errorf("更新设置 %s 失败: %w", key, err)
		}
	}

	// 清除缓存，保证 POST 后的 GET 立即读到新值
	s.cache.Invalidate()

	// 广播实时更新
	s.hub.Publish(events.TypeSettingsUpdated, body)

	// 站点名变更单独广播一次
	if siteName, ok := body["siteName"]; ok {
		s.hub.Publish(events.TypeSiteNameUpdated, map[string]any{"siteName": siteName})
	}

	return nil
}

// GetBool 读取布尔设置，缺失或类型不符时返回默认集合中的值
func (s *SettingsService) GetBool(key string) bool {
	if v, ok := s.GetSettings()[key].(bool); ok {
		return v
	}
	v, _ := Defaults()[key].(bool)
	return v
}

// GetString 读取字符串设置
func (s *SettingsService) GetString(key string) string {
	if v, ok := s.GetSettings()[key].(string); ok {
		return v
	}
	v, _ := Defaults()[key].(string)
	return v
}

// GetInt 读取数值设置（存储为 float64）
func (s *SettingsService) GetInt(key string) int {
	if v, ok := s.GetSettings()[key].(float64); ok {
		return int(v)
	}
	if v, ok := Defaults()[key].(float64); ok {
		return int(v)
	}
	return 0
}
