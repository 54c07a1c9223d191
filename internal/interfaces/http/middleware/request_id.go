package middleware

import (
	"github.com/bossbot/backend/internal/infrastructure/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID 請求 ID 標頭名
const HeaderXRequestID = "X-Request-ID"

// RequestID 為每個請求配置追蹤 ID
// 呼叫端有帶就沿用，沒帶就產生新的 UUID，並寫回回應標頭
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}

		ctx := log.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderXRequestID, rid)

		c.Next()
	}
}
