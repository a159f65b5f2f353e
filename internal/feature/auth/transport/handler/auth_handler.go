// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction_backend/internal/api"
	"auction_backend/internal/feature/auth/transport/http/dto"
	"auction_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase operations for authentication.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and logs it in.
	Register(ctx context.Context, username, email, password, confirmation string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	// Login authenticates a user and returns a token pair on success.
	Login(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the session behind the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// clientInfo collects the request metadata stored with a session.
func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// Register handles the account registration endpoint.
// Mismatched confirmation and taken usernames are business rejections with
// stable codes; no user row exists after either.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tokens, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Confirmation, clientInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: api.CodePasswordsMismatch})
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error(), Code: api.CodeUsernameTaken})
		default:
			slog.Warn("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signup failed"})
		}
		return
	}

	slog.Info("user signup successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.TokenResponse{Token: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

// Login handles the login endpoint. Any failure surfaces the same generic
// invalid-credentials notice to prevent user enumeration.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tokens, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, clientInfo(c))
	if err != nil {
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

// Refresh handles the access-token refresh endpoint.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Logout revokes the caller's session. Logging out without an existing
// session yields a not-found error.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "session not found", Code: api.CodeNotFound})
			return
		}
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}
