package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const defaultIssuer = "blogger-platform"

// JWTManager 는 HS256 단일 시크릿으로 access token 을 발급/검증한다.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	if issuer == "" {
		issuer = defaultIssuer
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// NewJWTManagerFromEnv 는 환경변수에서 시크릿/issuer 를 읽는다.
//
// - JWT_SECRET: 필수
// - JWT_ISSUER: 선택, 기본값 "blogger-platform"
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return NewJWTManager(secret, os.Getenv("JWT_ISSUER"), 0), nil
}

// Sign 은 userID 를 sub 클레임으로 담은 토큰을 만든다.
func (m *JWTManager) Sign(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iss":  m.issuer,
		"exp":  time.Now().Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse 는 서명과 만료를 검증하고 (userID, role) 을 돌려준다.
func (m *JWTManager) Parse(tokenString string) (string, string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return "", "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", "", fmt.Errorf("token missing sub claim")
	}
	role, _ := claims["role"].(string)
	return sub, role, nil
}

// UserIDFromToken 은 익명 허용 엔드포인트용이다. 토큰이 비었거나 유효하지 않으면 "" 를 돌려준다.
func (m *JWTManager) UserIDFromToken(token string) string {
	if token == "" {
		return ""
	}
	userID, _, err := m.Parse(token)
	if err != nil {
		return ""
	}
	return userID
}
