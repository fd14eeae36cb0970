package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// recvFrame 带超时地读取一帧，避免测试悬挂
func recvFrame(t *testing.T, sub *Subscriber) []byte {
	t.Helper()
	select {
	case frame, ok := <-sub.Frames():
		if !ok {
			t.Fatal("订阅者通道被意外关闭")
		}
		return frame
	case <-time.After(time.Second):
		t.Fatal("等待事件帧超时")
		return nil
	}
}

func decodeFrame(t *testing.T, frame []byte) Event {
	t.Helper()
	s := string(frame)
	if !strings.HasPrefix(s, "data: ") || !strings.HasSuffix(s, "\n\n") {
		t.Fatalf("帧格式错误: %q", s)
	}
	var evt Event
	if err := json.Unmarshal([]byte(strings.TrimSuffix(strings.TrimPrefix(s, "data: "), "\n\n")), &evt); err != nil {
		t.Fatalf("帧 JSON 解析失败: %v", err)
	}
	return evt
}

// TestPublish_FanOut 所有订阅者各收到一次广播
func TestPublish_FanOut(t *testing.T) {
	hub := NewHub()

	const n = 5
	subs := make([]*Subscriber, n)
	for i := range subs {
		subs[i] = hub.Subscribe()
	}
	if hub.Len() != n {
		t.Fatalf("订阅者数量 = %d, want %d", hub.Len(), n)
	}

	hub.Publish(TypeCategoriesUpdated, []string{"news", "guides"})

	for i, sub := range subs {
		evt := decodeFrame(t, recvFrame(t, sub))
		if evt.Type != TypeCategoriesUpdated {
			t.Errorf("订阅者 %d 收到类型 %q, want %q", i, evt.Type, TypeCategoriesUpdated)
		}
		if evt.Timestamp == 0 {
			t.Errorf("订阅者 %d 的事件缺少时间戳", i)
		}

		// 不应该收到第二帧
		select {
		case extra := <-sub.Frames():
			t.Errorf("订阅者 %d 收到了多余的帧: %s", i, extra)
		default:
		}
	}
}

// TestPublish_FailureIsolation 单个失效订阅者不影响其他订阅者
func TestPublish_FailureIsolation(t *testing.T) {
	hub := NewHub()

	healthy := hub.Subscribe()
	// 模拟已废弃的连接：填满缓冲使后续写入失败
	abandoned := hub.Subscribe()
	for i := 0; i < subscriberBuffer; i++ {
		abandoned.frames <- []byte("stale")
	}

	hub.Publish(TypeSettingsUpdated, map[string]any{"siteName": "X"})

	evt := decodeFrame(t, recvFrame(t, healthy))
	if evt.Type != TypeSettingsUpdated {
		t.Errorf("健康订阅者收到类型 %q, want %q", evt.Type, TypeSettingsUpdated)
	}

	// 失效订阅者应当被移除
	if hub.Len() != 1 {
		t.Errorf("广播后订阅者数量 = %d, want 1", hub.Len())
	}
}

// TestUnsubscribe_StopsDelivery 退订后不再收到事件
func TestUnsubscribe_StopsDelivery(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	if hub.Len() != 0 {
		t.Fatalf("退订后订阅者数量 = %d, want 0", hub.Len())
	}

	// 对空集合广播不应 panic
	hub.Publish(TypeSettingsUpdated, nil)

	// 通道应已关闭且无残留帧
	if frame, ok := <-sub.Frames(); ok {
		t.Errorf("退订后仍收到帧: %s", frame)
	}

	// 重复退订安全
	hub.Unsubscribe(sub)
}

// TestPublish_IdenticalSnapshots 相同快照的连续事件原样投递，不做去重
func TestPublish_IdenticalSnapshots(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	payload := []map[string]any{{"id": float64(1), "name": "news"}}
	hub.Publish(TypeCategoriesUpdated, payload)
	hub.Publish(TypeCategoriesUpdated, payload)

	for i := 0; i < 2; i++ {
		evt := decodeFrame(t, recvFrame(t, sub))
		if evt.Type != TypeCategoriesUpdated {
			t.Fatalf("第 %d 帧类型 = %q, want %q", i+1, evt.Type, TypeCategoriesUpdated)
		}
	}
}

// TestEventFrame SSE 帧的线格式
func TestEventFrame(t *testing.T) {
	evt := Event{Type: TypeHeartbeat, Timestamp: 1700000000000}
	frame := string(evt.Frame())

	if !strings.HasPrefix(frame, "data: {") {
		t.Errorf("帧应以 data: 开头: %q", frame)
	}
	if !strings.HasSuffix(frame, "\n\n") {
		t.Errorf("帧应以空行结尾: %q", frame)
	}
	if !strings.Contains(frame, `"type":"heartbeat"`) {
		t.Errorf("帧缺少类型字段: %q", frame)
	}
	if strings.Contains(frame, `"data"`) {
		t.Errorf("无数据的事件不应输出 data 字段: %q", frame)
	}
}
