package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request with request_id, route and caller.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		var userID int64
		if p := PrincipalFrom(c); p != nil {
			userID = p.UserID()
		}

		log.Printf("[HTTP] request_id=%s method=%s path=%s route=%s status=%d user_id=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.FullPath(),
			c.Writer.Status(),
			userID,
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
