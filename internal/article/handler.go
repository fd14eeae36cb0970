package article

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/middleware"
	"iptv-hub/blog-backend/pkg/response"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	repo := NewArticleRepository(db)
	return &ArticleHandler{
		articleService: NewArticleService(repo),
	}
}

// respondError 业务错误透传，其他错误返回通用失败
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

// ListArticles 获取文章列表
// @Summary 获取文章列表（分页）
// @Tags Article
// @Accept json
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param category query string false "分类 slug"
// @Param tag query string false "标签 slug"
// @Param search query string false "搜索关键词"
// @Param status query string false "状态过滤，空=仅已发布，all=全部"
// @Success 200 {object} response.Response{data=dto.ArticleListResponse}
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var query dto.ArticleListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.articleService.ListArticles(query)
	if err != nil {
		respondError(c, err, "获取文章列表失败")
		return
	}

	dto.SuccessResponse(c, result)
}

// GetArticle 获取文章详情
// @Summary 获取文章详情（含作者/分类/标签）
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	art, err := h.articleService.GetArticle(uint(articleID))
	if err != nil {
		respondError(c, err, "获取文章失败")
		return
	}

	dto.SuccessResponse(c, art)
}

// GetArticleBySlug 根据 slug 获取已发布文章
// @Summary 根据 slug 获取已发布文章（阅读量 +1）
// @Tags Article
// @Accept json
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} response.Response
// @Router /articles/slug/{slug} [get]
func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	art, err := h.articleService.GetArticleBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "获取文章失败")
		return
	}

	dto.SuccessResponse(c, art)
}

// CreateArticle 创建文章
// @Summary 创建文章
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 201 {object} response.Response
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	authorID := middleware.CurrentUserID(c)
	if authorID == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未认证"),
		))
		return
	}

	art, err := h.articleService.CreateArticle(req, authorID)
	if err != nil {
		respondError(c, err, "创建文章失败")
		return
	}

	dto.CreatedResponse(c, art, "文章创建成功")
}

// UpdateArticle 更新文章
// @Summary 更新文章
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.UpdateArticleRequest true "更新文章请求"
// @Success 200 {object} response.Response
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, err := h.articleService.UpdateArticle(uint(articleID), req)
	if err != nil {
		respondError(c, err, "更新文章失败")
		return
	}

	dto.SuccessResponse(c, art)
}

// DeleteArticle 删除文章
// @Summary 删除文章
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	if err := h.articleService.DeleteArticle(uint(articleID)); err != nil {
		respondError(c, err, "删除文章失败")
		return
	}

	dto.MessageResponse(c, "文章删除成功")
}
