package settings

import (
	"sync"
	"time"
)

// Cache 站点设置的进程内缓存
// 读多写少的时间受限缓存：TTL 窗口内的过期读取是可接受的折中，写入时显式失效
type Cache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	data     map[string]any
	loadedAt time.Time

	// 测试注入时间源
	now func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get 返回缓存的设置集合，过期或未加载时返回 false
func (c *Cache) Get() (map[string]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data == nil || c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}

	// 返回副本，调用方可能会修改
	out := make(map[string]any, len(c.data))
	for k, v := range c.data {
		out[k] = v
	}
	return out, true
}

// Set 写入合并后的设置集合
func (c *Cache) Set(data map[string]any) {
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}

	c.mu.Lock()
	c.data = copied
	c.loadedAt = c.now()
	c.mu.Unlock()
}

// Invalidate 设置写入后显式失效
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}
