package settings

import (
	"testing"
	"time"
)

// TestCache_GetSet 基本读写与副本语义
func TestCache_GetSet(t *testing.T) {
	cache := NewCache(5 * time.Minute)

	if _, ok := cache.Get(); ok {
		t.Fatal("空缓存不应命中")
	}

	cache.Set(map[string]any{"siteName": "IPTV Hub"})

	got, ok := cache.Get()
	if !ok {
		t.Fatal("写入后缓存应命中")
	}
	if got["siteName"] != "IPTV Hub" {
		t.Errorf("siteName = %v, want IPTV Hub", got["siteName"])
	}

	// 修改返回值不应污染缓存
	got["siteName"] = "hacked"
	again, _ := cache.Get()
	if again["siteName"] != "IPTV Hub" {
		t.Error("缓存返回值应是副本")
	}
}

// TestCache_TTLExpiry TTL 过期后不再命中
func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(5 * time.Minute)

	current := time.Unix(1700000000, 0)
	cache.now = func() time.Time { return current }

	cache.Set(map[string]any{"articlesPerPage": float64(12)})

	// TTL 窗口内命中
	current = current.Add(4 * time.Minute)
	if _, ok := cache.Get(); !ok {
		t.Fatal("TTL 内应命中")
	}

	// 到达 TTL 后失效
	current = current.Add(time.Minute)
	if _, ok := cache.Get(); ok {
		t.Fatal("TTL 过期后不应命中")
	}
}

// TestCache_Invalidate 显式失效
func TestCache_Invalidate(t *testing.T) {
	cache := NewCache(5 * time.Minute)
	cache.Set(map[string]any{"enableComments": true})

	cache.Invalidate()

	if _, ok := cache.Get(); ok {
		t.Fatal("失效后不应命中")
	}
}
