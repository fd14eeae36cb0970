package page

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/pkg/response"
)

type PageHandler struct {
	pageService *PageService
}

func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{
		pageService: NewPageService(NewPageRepository(db)),
	}
}

func respondError(c *gin.Context, err error, fallback string) {
	var bizErr *response.BusinessError
	if errors.As(err, &bizErr) {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(fallback),
	))
}

// GetPageBySlug 公开获取页面
// @Summary 根据 slug 获取启用中的页面
// @Tags Page
// @Accept json
// @Produce json
// @Param slug path string true "页面 slug"
// @Success 200 {object} response.Response
// @Router /pages/{slug} [get]
func (h *PageHandler) GetPageBySlug(c *gin.Context) {
	p, err := h.pageService.GetPageBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "获取页面失败")
		return
	}

	dto.SuccessResponse(c, p)
}

// ListPages 后台页面列表
// @Summary 后台页面列表
// @Tags Page
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/pages [get]
func (h *PageHandler) ListPages(c *gin.Context) {
	pages, err := h.pageService.ListPages()
	if err != nil {
		respondError(c, err, "获取页面列表失败")
		return
	}

	dto.SuccessResponse(c, pages)
}

// GetPage 后台页面详情
// @Summary 后台页面详情
// @Tags Page
// @Accept json
// @Produce json
// @Param id path int true "页面ID"
// @Success 200 {object} response.Response
// @Router /admin/pages/{id} [get]
func (h *PageHandler) GetPage(c *gin.Context) {
	pageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的页面ID"),
		))
		return
	}

	p, err := h.pageService.GetPage(uint(pageID))
	if err != nil {
		respondError(c, err, "获取页面失败")
		return
	}

	dto.SuccessResponse(c, p)
}

// CreatePage 创建页面
// @Summary 创建页面
// @Tags Page
// @Accept json
// @Produce json
// @Param request body dto.CreatePageRequest true "创建页面请求"
// @Success 201 {object} response.Response
// @Router /admin/pages [post]
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req dto.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	p, err := h.pageService.CreatePage(req)
	if err != nil {
		respondError(c, err, "创建页面失败")
		return
	}

	dto.CreatedResponse(c, p, "页面创建成功")
}

// UpdatePage 更新页面
// @Summary 更新页面
// @Tags Page
// @Accept json
// @Produce json
// @Param id path int true "页面ID"
// @Param request body dto.UpdatePageRequest true "更新页面请求"
// @Success 200 {object} response.Response
// @Router /admin/pages/{id} [put]
func (h *PageHandler) UpdatePage(c *gin.Context) {
	pageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的页面ID"),
		))
		return
	}

	var req dto.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	p, err := h.pageService.UpdatePage(uint(pageID), req)
	if err != nil {
		respondError(c, err, "更新页面失败")
		return
	}

	dto.SuccessResponse(c, p)
}

// DeletePage 删除页面
// @Summary 删除页面
// @Tags Page
// @Accept json
// @Produce json
// @Param id path int true "页面ID"
// @Success 200 {object} response.Response
// @Router /admin/pages/{id} [delete]
func (h *PageHandler) DeletePage(c *gin.Context) {
	pageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的页面ID"),
		))
		return
	}

	if err := h.pageService.DeletePage(uint(pageID)); err != nil {
		respondError(c, err, "删除页面失败")
		return
	}

	dto.MessageResponse(c, "页面删除成功")
}
