package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/internal/testutils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)

	settingsService := settings.NewSettingsService(
		settings.NewSettingsRepository(db),
		settings.NewCache(0),
		events.NewHub(),
	)

	r := gin.New()
	handler := NewUploadHandler(db, settingsService)
	r.POST("/upload", handler.Upload)
	return r
}

// multipartBody 构造带指定 Content-Type 的上传请求体
func multipartBody(t *testing.T, fieldName, fileName, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part failed: %v", err)
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}

// TestUpload_RejectsNonImage 非图片类型被拒绝
func TestUpload_RejectsNonImage(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBody(t, "file", "evil.exe", "application/octet-stream", []byte("MZ"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// TestUpload_MissingFile 无文件字段返回参数错误
func TestUpload_MissingFile(t *testing.T) {
	r := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// TestUpload_UnconfiguredCDN 未配置 CDN 时返回服务错误
func TestUpload_UnconfiguredCDN(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBody(t, "file", "pic.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
