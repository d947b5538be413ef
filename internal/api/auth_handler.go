package api

import (
	"errors"
	"fmt"
	"net/http"

	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service dependency.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- DTOs ---

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
}

// TokenResponse follows the OAuth2 password flow shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Handler Methods ---

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("User '%s' already exists", req.Username))
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Token exchanges form-encoded credentials for a bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user's account.
func (h *AuthHandler) Me(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserDisabled):
			abortWithError(c, http.StatusForbidden, "Inactive user")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusUnauthorized, "Could not validate credentials")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
