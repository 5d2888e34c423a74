package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"access-service/app/domain"
	"access-service/app/port"
	"access-service/app/rest/middleware"
)

// ProgramHandler handles program HTTP requests
type ProgramHandler struct {
	programs port.ProgramRepository
	logger   *slog.Logger
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(programs port.ProgramRepository, logger *slog.Logger) *ProgramHandler {
	return &ProgramHandler{
		programs: programs,
		logger:   logger,
	}
}

// ListPrograms returns the active programs visible to the caller. The
// listing is scoped after the fetch: regular users only see programs
// they hold a grant for, system admins see everything.
// @Summary List accessible programs
// @Tags programs
// @Produce json
// @Success 200 {object} ProgramListResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/programs [get]
func (h *ProgramHandler) ListPrograms(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	all, err := h.programs.ListPrograms(c.Request().Context())
	if err != nil {
		h.logger.Error("program listing failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}

	visible := domain.ScopeToPrograms(all, func(p domain.Program) domain.ProgramID { return p.ID }, user)

	return c.JSON(http.StatusOK, ProgramListResponse{
		Programs: visible,
		Count:    len(visible),
	})
}

// GetProgramSummary returns the summary for one program. Program access
// at read level was already enforced by the route middleware, which also
// bound the program id into the context.
// @Summary Program summary
// @Tags programs
// @Produce json
// @Param programId path int true "Program ID"
// @Success 200 {object} domain.ProgramSummary
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/programs/{programId}/summary [get]
func (h *ProgramHandler) GetProgramSummary(c echo.Context) error {
	programID, ok := middleware.ProgramIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "program id required"})
	}

	summary, err := h.programs.GetProgramSummary(c.Request().Context(), programID)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			// same payload as a denied grant so nonexistent program
			// ids are indistinguishable from forbidden ones
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not found or not authorized"})
		}
		h.logger.Error("program summary failed", "error", err, "program_id", programID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, summary)
}

// ProgramListResponse is the payload for program listings.
type ProgramListResponse struct {
	Programs []domain.Program `json:"programs"`
	Count    int              `json:"count"`
}
