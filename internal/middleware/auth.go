package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-hub/blog-backend/internal/dto"
	"iptv-hub/blog-backend/internal/model/user"
	"iptv-hub/blog-backend/internal/pkg"
	"iptv-hub/blog-backend/pkg/response"
)

// CookieName 后台令牌的 Cookie 名称
const CookieName = "admin_token"

// extractToken 从 cookie 或 Authorization header 中解析 token
func extractToken(c *gin.Context) (string, error) {
	// 优先从 cookie 中获取
	tokenString, err := c.Cookie(CookieName)
	if err == nil && tokenString != "" {
		return tokenString, nil
	}

	// 如果 cookie 中没有，尝试从 Authorization header 获取（兼容 API 调用）
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("未提供认证令牌")
	}

	// 验证格式: Bearer <token>
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:], nil
	}
	return "", fmt.Errorf("认证格式错误")
}

// AdminAuth 后台认证中间件
// 校验签名后重新查询用户行，保证被删除或变更角色的用户立即失效
func AdminAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		claims, err := pkg.ParseAdminToken(tokenString)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("无效的认证令牌"),
			))
			c.Abort()
			return
		}

		var adminUser user.AdminUser
		if err := db.First(&adminUser, claims.UserID).Error; err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("用户不存在或已被删除"),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文（角色以数据库为准，而非令牌）
		c.Set("user_id", adminUser.ID)
		c.Set("user_email", adminUser.Email)
		c.Set("user_name", adminUser.Name)
		c.Set("user_role", adminUser.Role)
		c.Next()
	}
}

// CurrentUserID 从上下文取当前用户ID
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
