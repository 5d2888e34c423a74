package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"access-service/app/domain"
	"access-service/app/port"
	"access-service/app/rest/middleware"
	"access-service/app/utils/validator"
)

// AdminHandler handles session administration HTTP requests. Every route
// here sits behind RequireSystemAdmin.
type AdminHandler struct {
	accessUsecase port.AccessUsecase
	validator     *validator.Validator
	logger        *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accessUsecase port.AccessUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		accessUsecase: accessUsecase,
		validator:     validator.New(),
		logger:        logger,
	}
}

// ForceLogoutRequest is the payload for forced logout and cache
// invalidation requests.
type ForceLogoutRequest struct {
	Subject string `json:"subject" validate:"required"`
}

// ListSessions returns every active session in this instance.
// @Summary List active sessions
// @Tags admin
// @Produce json
// @Success 200 {object} SessionListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/admin/sessions [get]
func (h *AdminHandler) ListSessions(c echo.Context) error {
	sessions := h.accessUsecase.ListSessions()
	return c.JSON(http.StatusOK, SessionListResponse{
		Sessions: sessions,
		Count:    len(sessions),
	})
}

// ForceLogout terminates every session of the given subject across all
// client origins and drops its cached resolution.
// @Summary Force logout a subject
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ForceLogoutRequest true "Target subject"
// @Success 200 {object} map[string]int
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/admin/sessions/force-logout [post]
func (h *AdminHandler) ForceLogout(c echo.Context) error {
	var req ForceLogoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	count := h.accessUsecase.ForceLogout(req.Subject)

	if admin, ok := middleware.UserFromContext(c); ok {
		h.logger.Info("forced logout",
			"initiator", admin.UserName,
			"sessions_terminated", count)
	}

	return c.JSON(http.StatusOK, map[string]int{"sessions_terminated": count})
}

// InvalidateCache drops the cached resolution for the given subject so
// a grant change takes effect on the subject's next request.
// @Summary Invalidate cached resolution
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ForceLogoutRequest true "Target subject"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/admin/cache/invalidate [post]
func (h *AdminHandler) InvalidateCache(c echo.Context) error {
	var req ForceLogoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	h.accessUsecase.InvalidateUser(req.Subject)
	return c.JSON(http.StatusOK, map[string]string{"message": "cache invalidated"})
}

// SessionListResponse is the payload for session listings.
type SessionListResponse struct {
	Sessions []domain.SessionRecord `json:"sessions"`
	Count    int                    `json:"count"`
}
