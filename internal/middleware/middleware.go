package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"recommendation_service/internal/domain"
)

const actorContextKey = "actor"

// RequestID assigns every request a v4 uuid and echoes it on X-Request-ID so
// log lines can be correlated across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// Identity turns the gateway-injected identification headers into a tagged
// Actor. X-User-ID wins over X-Admin-ID when both are present. Requests with
// no usable header simply carry no actor; individual handlers decide whether
// that is acceptable.
func Identity(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := parseIDHeader(c, "X-User-ID"); ok {
			c.Set(actorContextKey, domain.Actor{Kind: domain.ActorUser, ID: userID})
		} else if adminID, ok := parseIDHeader(c, "X-Admin-ID"); ok {
			c.Set(actorContextKey, domain.Actor{Kind: domain.ActorAdmin, ID: adminID})
		} else if c.GetHeader("X-User-ID") != "" || c.GetHeader("X-Admin-ID") != "" {
			log.Warnf("Middleware: Malformed identification header on %s %s", c.Request.Method, c.Request.URL.Path)
		}
		c.Next()
	}
}

func parseIDHeader(c *gin.Context, header string) (int, bool) {
	raw := c.GetHeader(header)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ActorFromContext retrieves the caller identity set by Identity.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := value.(domain.Actor)
	return actor, ok
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		entry := logger.WithFields(logrus.Fields{
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"remote_ip":   c.ClientIP(),
			"latency_ms":  latency.Milliseconds(),
		})
		if reqID := c.Writer.Header().Get("X-Request-ID"); reqID != "" {
			entry = entry.WithField("request_id", reqID)
		}

		if statusCode >= 500 {
			entry.Error("Request completed with server error")
		} else if statusCode >= 400 {
			entry.Warn("Request completed with client error")
		} else {
			entry.Info("Request completed successfully")
		}
	}
}
