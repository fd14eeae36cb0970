package category

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/pkg/response"
)

type CategoryHandler struct {
	categoryService *CategoryService
}

func NewCategoryHandler(db *gorm.DB, hub *events.Hub) *CategoryHandler {
	repo := NewCategoryRepository(db)
	return &CategoryHandler{
		categoryService: NewCategoryService(repo, hub),
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

// ListCategories 获取分类列表
// @Summary 获取全部分类及已发布文章数
// @Tags Category
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.CategoryWithCount}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondError(c, err, "获取分类列表失败")
		return
	}

	dto.SuccessResponse(c, categories)
}

// GetCategory 获取分类详情
// @Summary 获取分类详情
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的分类ID"),
		))
		return
	}

	cat, err := h.categoryService.GetCategory(uint(categoryID))
	if err != nil {
		respondError(c, err, "获取分类失败")
		return
	}

	dto.SuccessResponse(c, cat)
}

// CreateCategory 创建分类
// @Summary 创建分类
// @Tags Category
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "创建分类请求"
// @Success 201 {object} response.Response
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cat, err := h.categoryService.CreateCategory(req)
	if err != nil {
		respondError(c, err, "创建分类失败")
		return
	}

	dto.CreatedResponse(c, cat, "分类创建成功")
}

// UpdateCategory 更新分类
// @Summary 更新分类
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Param request body dto.UpdateCategoryRequest true "更新分类请求"
// @Success 200 {object} response.Response
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的分类ID"),
		))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cat, err := h.categoryService.UpdateCategory(uint(categoryID), req)
	if err != nil {
		respondError(c, err, "更新分类失败")
		return
	}

	dto.SuccessResponse(c, cat)
}

// DeleteCategory 删除分类
// @Summary 删除分类（仍有文章时返回冲突）
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的分类ID"),
		))
		return
	}

	if err := h.categoryService.DeleteCategory(uint(categoryID)); err != nil {
		respondError(c, err, "删除分类失败")
		return
	}

	dto.MessageResponse(c, "分类删除成功")
}
