package delivery

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger emits one structured log line per request with the resolved
// user id when the request was authenticated.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond),
		}
		if user := UserFromContext(c); user != nil {
			attrs = append(attrs, "user_id", user.ID)
		}

		if c.Writer.Status() >= 500 {
			slog.Error("request completed", attrs...)
		} else {
			slog.Info("request completed", attrs...)
		}
	}
}
