package comment

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/comment"
	"iptv-hub/blog-backend/internal/settings"
	"iptv-hub/blog-backend/pkg/email"
	"iptv-hub/blog-backend/pkg/response"
)

type CommentService struct {
	repo     *CommentRepository
	settings *settings.SettingsService
}

func NewCommentService(repo *CommentRepository, settingsService *settings.SettingsService) *CommentService {
	return &CommentService{repo: repo, settings: settingsService}
}

// ListComments 获取文章的已通过评论
func (s *CommentService) ListComments(articleID uint) ([]comment.Comment, error) {
	return s.repo.ListApprovedByArticle(articleID)
}

// CreateComment 发表游客评论
// 开关 enableComments 关闭时拒绝；审核开关决定初始状态
func (s *CommentService) CreateComment(req dto.CreateCommentRequest) (*comment.Comment, error) {
	if !s.settings.GetBool("enableComments") {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("评论功能未开启"),
		)
	}

	art, err := s.repo.GetArticle(req.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return nil, err
	}

	moderate := s.settings.GetBool("moderateComments")
	cmt := &comment.Comment{
		ArticleID:   req.ArticleID,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		AuthorURL:   req.AuthorURL,
		IsApproved:  !moderate,
		IsGuest:     true,
	}

	if err := s.repo.Create(cmt); err != nil {
		return nil, err
	}

	// 进入待审核时通知站长，通知失败不影响评论创建
	if moderate {
		go s.sendModerationNotice(art.Title, cmt)
	}

	return cmt, nil
}

// sendModerationNotice 发送评论待审核邮件
func (s *CommentService) sendModerationNotice(articleTitle string, cmt *comment.Comment) {
	host := s.settings.GetString("smtpHost")
	fromEmail := s.settings.GetString("fromEmail")
	if host == "" || fromEmail == "" {
		return
	}

	client := email.NewClient(&email.Config{
		Host:     host,
		Port:     s.settings.GetInt("smtpPort"),
		Username: s.settings.GetString("smtpUser"),
		Password: s.settings.GetString("smtpPassword"),
	})
	if !client.Configured() {
		return
	}

	tmpl, err := email.NewTemplate(email.CommentModerationTemplate)
	if err != nil {
		log.Error().Err(err).Msg("评论通知模板解析失败")
		return
	}

	siteName := s.settings.GetString("siteName")
	body, err := tmpl.Render(map[string]string{
		"SiteName":     siteName,
		"ArticleTitle": articleTitle,
		"AuthorName":   cmt.AuthorName,
		"Content":      cmt.Content,
	})
	if err != nil {
		log.Error().Err(err).Msg("评论通知模板渲染失败")
		return
	}

	subject := siteName + " - 新评论待审核"
	if err := client.SendHTML(fromEmail, fromEmail, subject, body); err != nil {
		log.Error().Err(err).Uint("comment_id", cmt.ID).Msg("评论通知邮件发送失败")
	}
}

// ListAdminComments 后台评论列表
func (s *CommentService) ListAdminComments(status string) ([]comment.Comment, error) {
	var approved *bool
	switch status {
	case "approved":
		v := true
		approved = &v
	case "pending":
		v := false
		approved = &v
	}
	return s.repo.ListAll(approved)
}

// ModerateComment 审核评论（通过或撤回）
func (s *CommentService) ModerateComment(id uint, isApproved bool) (*comment.Comment, error) {
	cmt, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("评论不存在"),
			)
		}
		return nil, err
	}

	cmt.IsApproved = isApproved
	if err := s.repo.Update(cmt); err != nil {
		return nil, err
	}
	return cmt, nil
}

// DeleteComment 删除评论
func (s *CommentService) DeleteComment(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("评论不存在"),
			)
		}
		return err
	}
	return s.repo.Delete(id)
}
