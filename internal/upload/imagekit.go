package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ImageKit 上传接口地址
const imagekitUploadURL = "https://upload.imagekit.io/api/v1/files/upload"

// ImageKitClient ImageKit REST 上传客户端
// 私钥通过 HTTP Basic Auth 传递，密码留空
type ImageKitClient struct {
	privateKey string
	httpClient *http.Client
}

func NewImageKitClient(privateKey string) *ImageKitClient {
	return &ImageKitClient{
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured 是否已配置私钥
func (c *ImageKitClient) Configured() bool {
	return c.privateKey != ""
}

// UploadResult CDN 返回的上传结果
type UploadResult struct {
	FileID       string `json:"fileId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Size         int64  `json:"size"`
}

// Upload 上传文件到 ImageKit，folder 为目标目录（如 /blog）
func (c *ImageKitClient) Upload(ctx context.Context, data []byte, fileName, folder string) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("构造上传表单失败: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("写入文件内容失败: %w", err)
	}

	_ = writer.WriteField("fileName", fileName)
	_ = writer.WriteField("folder", folder)
	_ = writer.WriteField("useUniqueFileName", "false")
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, imagekitUploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("上传请求失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CDN 返回错误状态 %d: %s", resp.StatusCode, string(respBody))
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("解析上传响应失败: %w", err)
	}
	return &result, nil
}
