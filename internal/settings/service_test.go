package settings

import (
	"encoding/json"
	"testing"
	"time"

	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/testutils"
)

func newTestService(t *testing.T) (*SettingsService, *events.Hub) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	hub := events.NewHub()
	return NewSettingsService(NewSettingsRepository(db), NewCache(0), hub), hub
}

func recvFrame(t *testing.T, sub *events.Subscriber) map[string]any {
	t.Helper()
	select {
	case frame := <-sub.Frames():
		payload := frame[len("data: ") : len(frame)-2]
		var event map[string]any
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("decode frame failed: %v", err)
		}
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// TestGetSettings_DefaultsWithoutRows 空表返回默认值
func TestGetSettings_DefaultsWithoutRows(t *testing.T) {
	svc, _ := newTestService(t)

	got := svc.GetSettings()
	if got["siteName"] != "IPTV Hub" {
		t.Errorf("siteName = %v, want IPTV Hub", got["siteName"])
	}
	if got["articlesPerPage"] != float64(12) {
		t.Errorf("articlesPerPage = %v, want 12", got["articlesPerPage"])
	}
	if got["enableComments"] != false {
		t.Errorf("enableComments = %v, want false", got["enableComments"])
	}
}

// TestUpdateSettings_TypeRoundTrip 写入后各类型原样读回
func TestUpdateSettings_TypeRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.UpdateSettings(map[string]any{
		"siteName":        "My Blog",
		"articlesPerPage": float64(24),
		"enableComments":  true,
		"socialLinks":     map[string]any{"twitter": "https://x.com/me"},
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got := svc.GetSettings()
	if got["siteName"] != "My Blog" {
		t.Errorf("siteName = %v", got["siteName"])
	}
	if got["articlesPerPage"] != float64(24) {
		t.Errorf("articlesPerPage = %v", got["articlesPerPage"])
	}
	if got["enableComments"] != true {
		t.Errorf("enableComments = %v", got["enableComments"])
	}
	links, ok := got["socialLinks"].(map[string]any)
	if !ok || links["twitter"] != "https://x.com/me" {
		t.Errorf("socialLinks = %v", got["socialLinks"])
	}
}

// TestUpdateSettings_Upsert 重复写同一键只保留最新值
func TestUpdateSettings_Upsert(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.UpdateSettings(map[string]any{"siteName": "First"}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if err := svc.UpdateSettings(map[string]any{"siteName": "Second"}); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	if got := svc.GetSettings()["siteName"]; got != "Second" {
		t.Errorf("siteName = %v, want Second", got)
	}
}

// TestUpdateSettings_PublishesEvents 变更广播 settings_updated，站点名单独再广播一次
func TestUpdateSettings_PublishesEvents(t *testing.T) {
	svc, hub := newTestService(t)

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	if err := svc.UpdateSettings(map[string]any{"siteName": "Renamed Site"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	first := recvFrame(t, sub)
	if first["type"] != events.TypeSettingsUpdated {
		t.Errorf("first event type = %v, want %s", first["type"], events.TypeSettingsUpdated)
	}

	second := recvFrame(t, sub)
	if second["type"] != events.TypeSiteNameUpdated {
		t.Errorf("second event type = %v, want %s", second["type"], events.TypeSiteNameUpdated)
	}
	data, _ := second["data"].(map[string]any)
	if data["siteName"] != "Renamed Site" {
		t.Errorf("site_name_updated payload = %v", second["data"])
	}
}

// TestUpdateSettings_NoSiteNameNoExtraEvent 不含 siteName 时只广播一次
func TestUpdateSettings_NoSiteNameNoExtraEvent(t *testing.T) {
	svc, hub := newTestService(t)

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	if err := svc.UpdateSettings(map[string]any{"enableComments": true}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	first := recvFrame(t, sub)
	if first["type"] != events.TypeSettingsUpdated {
		t.Errorf("event type = %v", first["type"])
	}

	select {
	case frame := <-sub.Frames():
		t.Errorf("unexpected extra event: %s", frame)
	case <-time.After(100 * time.Millisecond):
	}
}
