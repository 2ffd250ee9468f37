package handlers

import (
	"errors"
	"net/http"

	"mediahub/internal/common"
	"mediahub/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService, logger zerolog.Logger) *AuthHandlers {
	return &AuthHandlers{authService: authService, logger: logger}
}

// CredentialsRequest is the register and login payload
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles account creation
func (h *AuthHandlers) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendFailure(c, http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return common.SendSuccess(c, "Registration successful", result)
}

// Login handles user login with email and password
func (h *AuthHandlers) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendFailure(c, http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return common.SendSuccess(c, "Login successful", result)
}

// fail renders service errors in the auth envelope
func (h *AuthHandlers) fail(c echo.Context, err error) error {
	var appErr *common.AppError
	if errors.As(err, &appErr) && appErr.Kind != common.KindInternal {
		return common.SendFailure(c, appErr.StatusCode(), appErr.Message)
	}

	h.logger.Error().Err(err).Str("path", c.Path()).Msg("auth request failed")
	return common.SendFailure(c, http.StatusInternalServerError, "Internal server error")
}
