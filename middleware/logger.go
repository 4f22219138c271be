package middleware

import (
	"time"

	"tuiter/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap logs every request through the zap singleton.
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.L.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("cost", time.Since(start)),
		)
	}
}
