package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogger-platform/cmd/api/trace"
	"blogger-platform/internal/logger"
)

const headerRequestID = "X-Request-Id"

// RequestTrace 는 모든 요청에 Request ID 를 보장하고 컨텍스트/응답 헤더에 심은 뒤
// 처리 결과를 한 줄로 로깅한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		c.Request = c.Request.WithContext(trace.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		fields := logger.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"query":       c.Request.URL.RawQuery,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestID,
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}
