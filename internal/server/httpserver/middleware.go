package httpserver

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ctxKey string

const identityKey ctxKey = "identity"

// gin context keys
const (
	ginIdentityKey  = "identity"
	ginRequestIDKey = "request_id"
)

const (
	msgTokenRequired = "Access token required"
	msgTokenInvalid  = "Invalid or expired token"
)

// IdentityFromContext returns the identity stored by the auth gate.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

func identityFromGin(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(ginIdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// authMiddleware requires "Authorization: Bearer <token>". A missing or
// malformed header is 401; a token that fails verification is 403.
func (s *HTTPServer) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || scheme != common.BearerScheme || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: msgTokenRequired})
			return
		}

		identity, err := s.verifier.Verify(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "token rejected", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: msgTokenInvalid})
			return
		}

		c.Set(ginIdentityKey, identity)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), identityKey, identity))
		c.Next()
	}
}

// requestID propagates or generates X-Request-ID.
func (s *HTTPServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ginRequestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func (s *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"request_id", c.GetString(ginRequestIDKey),
		}
		if id, ok := identityFromGin(c); ok {
			args = append(args, "user_id", id.AccountID)
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			s.logger.Error(c.Request.Context(), "request", args...)
		default:
			s.logger.Info(c.Request.Context(), "request", args...)
		}
	}
}

func (s *HTTPServer) recover(c *gin.Context, recovered any) {
	s.logger.Error(c.Request.Context(), "panic recovered",
		"panic", recovered, "request_id", c.GetString(ginRequestIDKey))
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: msgInternal})
}

func (s *HTTPServer) cors() gin.HandlerFunc {
	anyOrigin := len(s.allowedOrigins) == 0 || slices.Contains(s.allowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case anyOrigin:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.allowedOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", common.RequestIDHeaderName)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
