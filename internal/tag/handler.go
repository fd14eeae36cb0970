package tag

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/pkg/response"
)

type TagHandler struct {
	tagService *TagService
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{
		tagService: NewTagService(NewTagRepository(db)),
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

// ListTags 获取标签列表
// @Summary 获取全部标签及文章数
// @Tags Tag
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.TagWithCount}
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		respondError(c, err, "获取标签列表失败")
		return
	}

	dto.SuccessResponse(c, tags)
}

// CreateTag 创建标签
// @Summary 创建标签
// @Tags Tag
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "创建标签请求"
// @Success 201 {object} response.Response
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	t, err := h.tagService.CreateTag(req)
	if err != nil {
		respondError(c, err, "创建标签失败")
		return
	}

	dto.CreatedResponse(c, t, "标签创建成功")
}

// UpdateTag 更新标签
// @Summary 更新标签
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path int true "标签ID"
// @Param request body dto.UpdateTagRequest true "更新标签请求"
// @Success 200 {object} response.Response
// @Router /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的标签ID"),
		))
		return
	}

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	t, err := h.tagService.UpdateTag(uint(tagID), req)
	if err != nil {
		respondError(c, err, "更新标签失败")
		return
	}

	dto.SuccessResponse(c, t)
}

// DeleteTag 删除标签
// @Summary 删除标签（解除文章关联）
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的标签ID"),
		))
		return
	}

	if err := h.tagService.DeleteTag(uint(tagID)); err != nil {
		respondError(c, err, "删除标签失败")
		return
	}

	dto.MessageResponse(c, "标签删除成功")
}
