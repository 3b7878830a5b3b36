package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/image-watermark/internal/metrics"
	"go.uber.org/zap"
)

// Logger logs every request and records it in m.
func Logger(logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		latency := time.Since(start)

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := ctx.Writer.Status()
		m.ObserveRequest(ctx.Request.Method, path, status, latency)

		logger.Info("HTTP Request",
			zap.String("request_id", ctx.GetString(RequestIDKey)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", ctx.ClientIP()),
			zap.String("user_agent", ctx.Request.UserAgent()),
		)
	}
}
