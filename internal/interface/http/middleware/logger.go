package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/response"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// slowRequestThreshold 超过该耗时记录慢请求警告
const slowRequestThreshold = 3 * time.Second

// Logger 请求日志中间件
// 1. 透传或生成请求ID（X-Request-ID）
// 2. 请求结束后记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体和Authorization头
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.L().Error("request", fields...)
		case latency > slowRequestThreshold:
			logger.L().Warn("slow request", fields...)
		default:
			logger.L().Info("request", fields...)
		}
	}
}

// Recovery panic恢复，返回500并记录堆栈
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		response.AbortWithError(c, apperrors.ErrInternal)
	})
}
