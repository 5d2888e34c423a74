package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"access-service/app/domain"
	"access-service/app/port"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextKeyUser      = "auth_user"
	ContextKeyProgramID = "auth_program_id"
)

// DefaultCertHeader is the header the fronting proxy uses to forward the
// validated client certificate. The proxy terminates TLS and verifies the
// chain; this service only trusts the header value it forwards.
const DefaultCertHeader = "X-Client-Cert"

// AuthMiddleware authenticates requests from the proxy-forwarded client
// certificate and enforces per-program access levels.
type AuthMiddleware struct {
	accessUsecase port.AccessUsecase
	certHeader    string
	logger        *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware. An empty certHeader
// falls back to DefaultCertHeader.
func NewAuthMiddleware(accessUsecase port.AccessUsecase, certHeader string, logger *slog.Logger) *AuthMiddleware {
	if certHeader == "" {
		certHeader = DefaultCertHeader
	}
	return &AuthMiddleware{
		accessUsecase: accessUsecase,
		certHeader:    certHeader,
		logger:        logger,
	}
}

// RequireAuth authenticates the request and stores the resolved user in
// the echo context. Every failure mode maps to a response that does not
// reveal whether the identity exists.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			rawCredential := c.Request().Header.Get(m.certHeader)
			user, err := m.accessUsecase.Authenticate(ctx, rawCredential, c.RealIP(), c.Request().UserAgent())
			if err != nil {
				m.logger.Warn("authentication failed",
					"error", err,
					"remote_ip", c.RealIP(),
					"path", c.Request().URL.Path)
				return httpErrorFor(err)
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireProgramAccess enforces the required access level for the program
// the request targets. The program id is taken from the path parameter
// first, then the query string, then a JSON body field; the first source
// present wins. Runs after RequireAuth.
func (m *AuthMiddleware) RequireProgramAccess(required domain.AccessLevel) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return httpErrorFor(domain.ErrUnauthenticated)
			}

			programID, err := extractProgramID(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "program id required")
			}

			bound, err := m.accessUsecase.Authorize(user, programID, required)
			if err != nil {
				m.logger.Warn("authorization failed",
					"error", err,
					"program_id", programID,
					"required_level", required.String())
				return httpErrorFor(err)
			}

			c.Set(ContextKeyProgramID, bound)
			return next(c)
		}
	}
}

// RequireSystemAdmin restricts the route to system administrators.
// Runs after RequireAuth.
func (m *AuthMiddleware) RequireSystemAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return httpErrorFor(domain.ErrUnauthenticated)
			}
			if !user.IsSystemAdmin {
				m.logger.Warn("admin route denied", "path", c.Request().URL.Path)
				return httpErrorFor(domain.ErrAccessDenied)
			}
			return next(c)
		}
	}
}

// UserFromContext returns the resolved user RequireAuth stored for this
// request.
func UserFromContext(c echo.Context) (*domain.ResolvedUser, bool) {
	user, ok := c.Get(ContextKeyUser).(*domain.ResolvedUser)
	return user, ok
}

// ProgramIDFromContext returns the program id RequireProgramAccess bound
// for this request.
func ProgramIDFromContext(c echo.Context) (domain.ProgramID, bool) {
	id, ok := c.Get(ContextKeyProgramID).(domain.ProgramID)
	return id, ok
}

// extractProgramID resolves the target program id with fixed precedence:
// path param, query param, then JSON body. The body is restored after
// reading so handlers can bind it again.
func extractProgramID(c echo.Context) (domain.ProgramID, error) {
	if raw := c.Param("programId"); raw != "" {
		return parseProgramID(raw)
	}

	if raw := c.QueryParam("program_id"); raw != "" {
		return parseProgramID(raw)
	}

	req := c.Request()
	if req.Body != nil && strings.Contains(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return 0, domain.ErrInvalidInput
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		var payload struct {
			ProgramID *int64 `json:"program_id"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.ProgramID != nil {
			return domain.ProgramID(*payload.ProgramID), nil
		}
	}

	return 0, domain.ErrInvalidInput
}

func parseProgramID(raw string) (domain.ProgramID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return domain.ProgramID(id), nil
}

// httpErrorFor maps domain auth failures to HTTP errors. The 401 and 403
// payloads are deliberately generic so callers cannot distinguish an
// unknown identity from a denied one.
func httpErrorFor(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrMalformedCertificate),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionTerminated):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrAccessDenied),
		errors.Is(err, domain.ErrInsufficientAccessLevel):
		return echo.NewHTTPError(http.StatusForbidden, "not found or not authorized")
	case errors.Is(err, domain.ErrResolverUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
