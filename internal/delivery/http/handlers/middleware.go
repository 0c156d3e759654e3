package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"go.uber.org/zap"
)

const sessionContextKey = "gatewaySession"

// RequestLogger tags every request with an id and logs it on completion.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Auth resolves the bearer token into a session. Resolving counts as user
// activity, so any authenticated request keeps the idle clock running.
func Auth(sessions domain.SessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "missing bearer token",
				"redirect": "/login",
			})
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func sessionFromContext(c *gin.Context) *domain.Session {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*domain.Session)
	return sess
}
