package log

import (
	"context"
	"log/slog"
)

// requestIDKey 上下文鍵型別
type requestIDKey struct{}

// WithRequestID 在上下文中加入請求 ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext 從上下文取出請求 ID，不存在時回傳空字串
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// AttrsFromContext 從上下文提取日誌欄位
func AttrsFromContext(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	return attrs
}
