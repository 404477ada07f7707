package trace

import (
	"context"

	"github.com/google/uuid"
)

// 컨텍스트 키는 외부에서 직접 쓰지 못하게 unexported 로 둔다.
type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID 는 요청 단위 고유 ID 를 만든다.
func GenerateID() string {
	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext 는 미들웨어 바깥이면 "" 를 돌려준다.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
