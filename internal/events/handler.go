package events

import (
	"time"

	"github.com/gin-gonic/gin"
)

// defaultHeartbeat 心跳间隔，防止中间代理回收空闲连接
const defaultHeartbeat = 30 * time.Second

type EventsHandler struct {
	hub       *Hub
	heartbeat time.Duration
}

func NewEventsHandler(hub *Hub) *EventsHandler {
	return &EventsHandler{
		hub:       hub,
		heartbeat: defaultHeartbeat,
	}
}

// Subscribe 订阅实时事件
// @Summary 订阅实时事件（SSE 长连接）
// @Description 返回 text/event-stream，连接后立即收到 connected 帧，之后每 30 秒一次 heartbeat
// @Tags Events
// @Produce text/event-stream
// @Success 200 {string} string "SSE 事件流"
// @Router /events [get]
func (h *EventsHandler) Subscribe(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	// 先发送欢迎帧，再登记订阅
	welcome := Event{
		Type:      TypeConnected,
		Message:   "Real-time updates connected",
		Timestamp: time.Now().UnixMilli(),
	}
	if _, err := c.Writer.Write(welcome.Frame()); err != nil {
		return
	}
	c.Writer.Flush()

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	// 心跳随连接退出一起停止，不会泄漏定时器
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case frame, ok := <-sub.Frames():
			if !ok {
				// 被 hub 移除（广播时检测到写入失败）
				return
			}
			if _, err := c.Writer.Write(frame); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ticker.C:
			hb := Event{Type: TypeHeartbeat, Timestamp: time.Now().UnixMilli()}
			if _, err := c.Writer.Write(hb.Frame()); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ctx.Done():
			// 客户端断开是唯一的取消信号
			return
		}
	}
}

// SetupEventsRouter 注册事件订阅路由
func SetupEventsRouter(r *gin.RouterGroup, hub *Hub) {
	handler := NewEventsHandler(hub)
	r.GET("/events", handler.Subscribe)
}
