package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"access-service/app/port"
	"access-service/app/rest/middleware"
)

// ErrorResponse is the generic error payload returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthHandler handles identity HTTP requests
type AuthHandler struct {
	accessUsecase port.AccessUsecase
	logger        *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accessUsecase port.AccessUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accessUsecase: accessUsecase,
		logger:        logger,
	}
}

// Whoami returns the authenticated caller's resolved identity and program
// grants. The heavy lifting already happened in RequireAuth; this just
// renders what the middleware resolved.
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} domain.ResolvedUser
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/whoami [get]
func (h *AuthHandler) Whoami(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	return c.JSON(http.StatusOK, user)
}

// Logout terminates the caller's session for this client origin only.
// The same identity presenting from another workstation stays logged in.
// @Summary Logout current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	if err := h.accessUsecase.Logout(user.Subject, c.RealIP()); err != nil {
		h.logger.Error("logout failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}

	h.logger.Info("user logged out", "user_name", user.UserName, "remote_ip", c.RealIP())
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
