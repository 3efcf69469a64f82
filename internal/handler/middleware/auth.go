package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"doctors-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	users          usecase.UserUseCase
}

const ctxUserEmailKey = "user_email"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, users usecase.UserUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
	}
}

// RequireAuth authenticates the bearer token and attaches the caller's email
// to the request context. A missing credential is 401; a credential that
// fails verification (bad signature, expired, malformed) is 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized access",
			})
			c.Abort()
			return
		}

		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Forbidden access",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserEmailKey, email)
		c.Next()
	}
}

// RequireAdmin consults the user registry for the authenticated caller and
// rejects anyone without the admin role. A caller with no user record at all
// fails closed with 403. Must run after RequireAuth().
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		isAdmin, err := m.users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			slog.Error("Admin lookup failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	email, ok := value.(string)
	return email, ok
}
