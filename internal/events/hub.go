// Package events 实时推送：设置/分类变更通过 SSE 广播给所有在线页面
package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// 事件类型
const (
	TypeConnected         = "connected"
	TypeHeartbeat         = "heartbeat"
	TypeSettingsUpdated   = "settings_updated"
	TypeCategoriesUpdated = "categories_updated"
	TypeSiteNameUpdated   = "site_name_updated"
)

// Event 一条推送事件，每个事件都是完整快照，消费端幂等
type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewEvent 构造事件，时间戳为毫秒
func NewEvent(eventType string, data any) Event {
	return Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Frame 编码为 SSE 帧: "data: <JSON>\n\n"
func (e Event) Frame() []byte {
	payload, err := json.Marshal(e)
	if err != nil {
		// 事件数据都来自己方代码，序列化失败属于编程错误
		log.Error().Err(err).Str("type", e.Type).Msg("事件序列化失败")
		return nil
	}
	frame := make([]byte, 0, len(payload)+8)
	frame = append(frame, "data: "...)
	frame = append(frame, payload...)
	frame = append(frame, "\n\n"...)
	return frame
}

// subscriberBuffer 每个订阅者的帧缓冲大小
// 事件低频（后台改设置才会产生），8 足够；写不进说明连接已废弃
const subscriberBuffer = 8

// Subscriber 一个订阅连接，帧通道只由所属连接的处理协程消费
type Subscriber struct {
	frames    chan []byte
	closeOnce sync.Once
}

// Frames 订阅者的帧通道，通道关闭表示被移除
func (s *Subscriber) Frames() <-chan []byte {
	return s.frames
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.frames)
	})
}

// Hub 进程级广播中枢，持有所有在线订阅者
// 成员集合用互斥锁保护：订阅、退订、广播可能来自不同协程
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
	}
}

// Subscribe 注册一个新订阅者
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		frames: make(chan []byte, subscriberBuffer),
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe 移除订阅者并关闭其帧通道，可安全重复调用
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
	sub.close()
}

// Publish 向所有当前订阅者广播一条事件
// 单个订阅者接收失败只会导致它被移除，不影响其他订阅者；
// 不保证跨订阅者的接收顺序，也不为断线的客户端缓存错过的事件
func (h *Hub) Publish(eventType string, data any) {
	frame := NewEvent(eventType, data).Frame()
	if frame == nil {
		return
	}

	var stale []*Subscriber

	h.mu.RLock()
	for sub := range h.subs {
		select {
		case sub.frames <- frame:
		default:
			// 缓冲写满说明连接已废弃但尚未被检测到，标记移除
			stale = append(stale, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range stale {
		h.Unsubscribe(sub)
	}
	if len(stale) > 0 {
		log.Debug().Int("removed", len(stale)).Str("type", eventType).Msg("移除失效的订阅者")
	}
}

// Len 当前订阅者数量
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
