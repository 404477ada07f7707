package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogger-platform/cmd/api/dto"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
	ErrInvalidToken  = errors.New("invalid_token")
)

// gin 컨텍스트 키
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// OptionalBearerToken 은 헤더가 없거나 형식이 틀려도 에러 없이 "" 를 돌려준다.
func OptionalBearerToken(c *gin.Context) string {
	token, err := ExtractBearerToken(c)
	if err != nil {
		return ""
	}
	return token
}

// UserID 는 인증 미들웨어가 저장한 사용자 id 를 꺼낸다.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
}
