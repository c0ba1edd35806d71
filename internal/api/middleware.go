package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joblane/joblane/internal/auth"
	"github.com/joblane/joblane/internal/models"
)

const (
	identityKey  = "currentUser"
	requestIDKey = "requestID"

	bearerPrefix = "Bearer "
)

// RequireAuth rejects requests without a valid bearer token. On success the
// authenticated user (sans password hash) is attached to the gin context.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			// expired, malformed and vanished-user all look the same to the client
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "request is not authorized"})
			return
		}

		c.Set(identityKey, user.Sanitize())
		c.Next()
	}
}

// CurrentUser returns the identity attached by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// RequestID tags every request with an id, echoed in the X-Request-ID
// response header and carried into the request log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger writes one structured log line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			logger.Error("request", fields...)
			return
		}

		logger.Info("request", fields...)
	}
}
