package comment

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/pkg/response"
)

type CommentHandler struct {
	commentService *CommentService
}

func NewCommentHandler(db *gorm.DB, settingsService *settings.SettingsService) *CommentHandler {
	return &CommentHandler{
		commentService: NewCommentService(NewCommentRepository(db), settingsService),
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

// ListComments 获取文章的已通过评论
// @Summary 获取文章的已通过评论（最新在前）
// @Tags Comment
// @Accept json
// @Produce json
// @Param articleId query int true "文章ID"
// @Success 200 {object} response.Response
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	var query dto.CommentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	comments, err := h.commentService.ListComments(query.ArticleID)
	if err != nil {
		respondError(c, err, "获取评论列表失败")
		return
	}

	dto.SuccessResponse(c, comments)
}

// CreateComment 发表评论
// @Summary 发表游客评论（受站点设置开关控制）
// @Tags Comment
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "发表评论请求"
// @Success 201 {object} response.Response
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cmt, err := h.commentService.CreateComment(req)
	if err != nil {
		respondError(c, err, "发表评论失败")
		return
	}

	message := "评论发表成功"
	if !cmt.IsApproved {
		message = "评论已提交，等待审核"
	}
	dto.CreatedResponse(c, cmt, message)
}

// ListAdminComments 后台评论列表
// @Summary 后台评论列表（可按审核状态过滤）
// @Tags Comment
// @Accept json
// @Produce json
// @Param status query string false "approved 或 pending，空为全部"
// @Success 200 {object} response.Response
// @Router /admin/comments [get]
func (h *CommentHandler) ListAdminComments(c *gin.Context) {
	var query dto.AdminCommentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	comments, err := h.commentService.ListAdminComments(query.Status)
	if err != nil {
		respondError(c, err, "获取评论列表失败")
		return
	}

	dto.SuccessResponse(c, comments)
}

// ModerateComment 审核评论
// @Summary 审核评论（通过或撤回）
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "评论ID"
// @Param request body dto.ModerateCommentRequest true "审核请求"
// @Success 200 {object} response.Response
// @Router /admin/comments/{id} [put]
func (h *CommentHandler) ModerateComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的评论ID"),
		))
		return
	}

	var req dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cmt, err := h.commentService.ModerateComment(uint(commentID), *req.IsApproved)
	if err != nil {
		respondError(c, err, "审核评论失败")
		return
	}

	dto.SuccessResponse(c, cmt)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response
// @Router /admin/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的评论ID"),
		))
		return
	}

	if err := h.commentService.DeleteComment(uint(commentID)); err != nil {
		respondError(c, err, "删除评论失败")
		return
	}

	dto.MessageResponse(c, "评论删除成功")
}
