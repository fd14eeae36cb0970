// Package setting 站点设置模型
package setting

import (
	"encoding/json"
	"strconv"
	"time"
)

// 设置值类型标签
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeJSON    = "json"
)

// SiteSetting 键值设置表，value 以文本存储并带类型标签
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Type      string    `gorm:"type:varchar(20);default:'string'" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Decode 按类型标签解码存储的文本值
// 解码失败时回退为原始字符串，与源数据的宽松语义保持一致
func (s *SiteSetting) Decode() any {
	switch s.Type {
	case TypeNumber:
		if f, err := strconv.ParseFloat(s.Value, 64); err == nil {
			return f
		}
		return s.Value
	case TypeBoolean:
		return s.Value == "true"
	case TypeJSON:
		var v any
		if err := json.Unmarshal([]byte(s.Value), &v); err == nil {
			return v
		}
		return s.Value
	default:
		return s.Value
	}
}

// Encode 根据 Go 值推断类型标签并编码为存储文本
// JSON 反序列化后的数值是 float64，布尔是 bool，对象/数组是 map/slice
func Encode(value any) (stringValue string, valueType string) {
	switch v := value.(type) {
	case nil:
		return "", TypeString
	case string:
		return v, TypeString
	case bool:
		if v {
			return "true", TypeBoolean
		}
		return "false", TypeBoolean
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), TypeNumber
	case int:
		return strconv.Itoa(v), TypeNumber
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return "", TypeString
		}
		return string(b), TypeJSON
	}
}
