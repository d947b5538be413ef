package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// ContextUsernameKey is where AuthMiddleware stores the authenticated
// username for downstream handlers.
const ContextUsernameKey = "username"

// AuthMiddleware creates a Gin middleware for JWT authentication. The token
// subject is resolved against the user store so that disabled accounts are
// rejected even while their tokens are still fresh.
func AuthMiddleware(jwtSecret string, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Could not validate credentials")
			}
			return
		}
		if !token.Valid || claims.Subject == "" {
			abortWithError(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserDisabled):
				abortWithError(c, http.StatusForbidden, "Inactive user")
			case errors.Is(err, service.ErrUserNotFound):
				abortWithError(c, http.StatusUnauthorized, "Could not validate credentials")
			default:
				abortWithError(c, http.StatusInternalServerError, "Failed to authenticate request")
			}
			return
		}

		c.Set(ContextUsernameKey, user.Username)
		c.Next()
	}
}

// Helper to return JSON error response and abort request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func getUsernameFromContext(c *gin.Context) (string, error) {
	raw, exists := c.Get(ContextUsernameKey)
	if !exists {
		return "", errors.New("username not found in context")
	}
	username, ok := raw.(string)
	if !ok {
		return "", errors.New("invalid username type in context")
	}
	return username, nil
}
