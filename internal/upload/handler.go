package upload

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/middleware"
	"iptv-hub/blog-backend/internal/model/media"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/pkg/response"
)

// 上传大小上限 10MB
const maxUploadSize = 10 << 20

// 允许的图片类型
var allowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

type UploadHandler struct {
	db       *gorm.DB
	settings *settings.SettingsService
}

func NewUploadHandler(db *gorm.DB, settingsService *settings.SettingsService) *UploadHandler {
	return &UploadHandler{db: db, settings: settingsService}
}

// Upload 上传图片
// @Summary 上传图片到 CDN 并记录资源
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片文件"
// @Success 201 {object} response.Response
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("缺少上传文件"),
		))
		return
	}

	// 1. 大小与类型校验
	if fileHeader.Size > maxUploadSize {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("文件大小不能超过 10MB"),
		))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedMimeTypes[mimeType] {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("仅支持图片文件 (jpeg/png/gif/webp/svg)"),
		))
		return
	}

	// 2. CDN 必须已配置
	privateKey := h.settings.GetString("imagekitPrivateKey")
	client := NewImageKitClient(privateKey)
	if !client.Configured() {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("图片服务未配置"),
		))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("读取上传文件失败"),
		))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("读取上传文件失败"),
		))
		return
	}

	// 3. 生成唯一文件名，避免 CDN 侧覆盖
	ext := filepath.Ext(fileHeader.Filename)
	baseName := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
	fileName := fmt.Sprintf("%s_%s%s", baseName, uuid.New().String()[:8], ext)

	result, err := client.Upload(c.Request.Context(), data, fileName, "/blog")
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("CDN 上传失败")
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("上传失败，请稍后重试"),
		))
		return
	}

	// 4. 记录资源，入库失败不影响已完成的上传
	record := &media.Media{
		FileName:     result.Name,
		URL:          result.URL,
		FileID:       result.FileID,
		Size:         result.Size,
		MimeType:     mimeType,
		ThumbnailURL: result.ThumbnailURL,
		UploadedBy:   middleware.CurrentUserID(c),
		CreatedAt:    time.Now(),
	}
	if err := h.db.Create(record).Error; err != nil {
		log.Error().Err(err).Str("file_id", result.FileID).Msg("上传记录入库失败")
	}

	dto.CreatedResponse(c, gin.H{
		"url":           result.URL,
		"file_id":       result.FileID,
		"file_name":     result.Name,
		"thumbnail_url": result.ThumbnailURL,
		"size":          result.Size,
	}, "上传成功")
}

// SetupUploadRoutes 设置上传路由
func SetupUploadRoutes(admin *gin.RouterGroup, db *gorm.DB, settingsService *settings.SettingsService) {
	handler := NewUploadHandler(db, settingsService)
	admin.POST("/upload", handler.Upload)
}
