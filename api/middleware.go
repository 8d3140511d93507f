package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// CORS mirrors the permissive policy the frontend relies on: any origin may
// call the API. Preflight requests are answered here with 204.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestID tags every request with an id, echoed back in X-Request-ID so a
// failing call can be matched to its log lines. An id supplied by the caller
// is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLog returns a logger carrying the request id when the middleware
// ran, and the bare logger otherwise.
func requestLog(c *gin.Context) *log.Entry {
	if id := c.GetString(requestIDKey); id != "" {
		return log.WithField(requestIDKey, id)
	}
	return log.NewEntry(log.StandardLogger())
}
