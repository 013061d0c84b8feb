package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Claims is the token payload issued by the identity provider: the subject is
// the principal id and role carries the marketplace role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired verifies the Bearer token and stores the caller's principal id
// and role on the request context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose token role does not match. Handlers still
// re-check ownership where it matters; this is the request-level precondition.
func RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != string(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// callerIdentity reads the principal set by AuthRequired.
func callerIdentity(c *gin.Context) (string, model.UserRole) {
	return c.GetString(ContextUserID), model.UserRole(c.GetString(ContextRole))
}

// RequestLogger logs one structured entry per request
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.Info("HTTP Request",
			zap.String("client_ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("user_id", c.GetString(ContextUserID)),
		)
	}
}
