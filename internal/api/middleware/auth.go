package middleware

import (
	"Socialboard/internal/pkg/logger"
	"Socialboard/internal/pkg/response"
	"Socialboard/internal/pkg/security"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

type userIDKey struct{}

const unauthorizedMessage = "You must be logged in to access this resource"

// ExtractToken 依次读取 Authorization: Bearer 与会话 cookie
func ExtractToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil {
			return token
		}
	}
	return ""
}

// AuthMiddleware 校验 token，失败时直接返回 401 且不再进入后续 handler
func AuthMiddleware(auth security.Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c, cookieName)

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			// 吊销存储等内部故障同样按未登录处理
			if !isAuthFailure(err) {
				log.ErrorContext(c.Request.Context(), "auth verification error", "err", err)
			}
			response.FailWithMessage(c, response.Unauthorized, "Unauthorized", unauthorizedMessage)
			c.Abort()
			return
		}

		c.Set(logger.UserIDKey, claims.UserID)
		c.Set("token", token)

		newCtx := context.WithValue(c.Request.Context(), userIDKey{}, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// UserID 从 ctx 读取已鉴权用户
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func isAuthFailure(err error) bool {
	return errors.Is(err, security.ErrTokenMissing) ||
		errors.Is(err, security.ErrTokenInvalid) ||
		errors.Is(err, security.ErrTokenRevoked)
}
