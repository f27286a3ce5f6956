package middleware

import (
	"log"
	"time"

	"fraud-detection-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestLogger stamps each request with an id (kept if the client sent one)
// and logs method, path, status and duration once the handler returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()

		log.Printf("[API] %s %s %s - %d (%v)",
			id,
			c.Request.Method,
			utils.MaskString(c.Request.URL.Path),
			c.Writer.Status(),
			time.Since(start).Truncate(time.Microsecond))
	}
}

// RequestID returns the id assigned by RequestLogger, or "-".
func RequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return "-"
}
