package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger-platform/cmd/api/auth"
	"blogger-platform/cmd/api/dto"
	"blogger-platform/internal/logger"
)

// TokenParser 는 access token 에서 (userID, role) 을 꺼낸다.
type TokenParser interface {
	Parse(token string) (string, string, error)
}

// UserAuthMiddleware 는 유효한 Bearer 토큰을 요구하고 user_id 를 컨텍스트에 저장한다.
func UserAuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := authenticate(c, tokens)
		if !ok {
			return
		}
		c.Set(auth.ContextUserID, userID)
		c.Set(auth.ContextRole, role)
		c.Next()
	}
}

// AdminAuthMiddleware 는 요청 헤더의 JWT를 검증하고, role이 'admin'인지 확인합니다.
func AdminAuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := authenticate(c, tokens)
		if !ok {
			return
		}
		if role != auth.RoleAdmin {
			logger.WarnWithFields("access denied", logger.Fields{"user_id": userID, "role": role})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: "forbidden_insufficient_permissions"})
			return
		}
		c.Set(auth.ContextUserID, userID)
		c.Set(auth.ContextRole, role)
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenParser) (string, string, bool) {
	token, err := auth.ExtractBearerToken(c)
	if err != nil {
		auth.AbortWithUnauthorized(c, err)
		return "", "", false
	}
	userID, role, err := tokens.Parse(token)
	if err != nil {
		logger.DebugWithFields("token parse error", logger.Fields{"error": err.Error()})
		auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
		return "", "", false
	}
	return userID, role, true
}
