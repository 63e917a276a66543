package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/babystore/pkg/response"
)

// RequestIDKey gin.Context中保存请求ID的key
const RequestIDKey = "request_id"

// slowRequestThreshold 超过该耗时记录慢请求警告
const slowRequestThreshold = 3 * time.Second

// Logger 请求日志中间件
//
// 记录方法、路径、状态码、耗时、客户端IP和请求ID。
// 请求ID优先沿用客户端传入的X-Request-ID，没有时生成uuid。
// 带request_id的Logger保存到gin.Context，供response.Error记录内部错误。
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		response.SetLogger(c, log.With("request_id", requestID))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.ErrorContext(ctx, "HTTP请求", attrs...)
		case status >= 400:
			log.WarnContext(ctx, "HTTP请求", attrs...)
		default:
			log.InfoContext(ctx, "HTTP请求", attrs...)
		}

		if latency > slowRequestThreshold {
			log.WarnContext(ctx, "慢请求", "method", c.Request.Method, "path", c.Request.URL.Path, "latency", latency)
		}
	}
}
