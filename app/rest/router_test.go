package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"access-service/app/cache"
	"access-service/app/domain"
	mock_port "access-service/app/mocks"
	"access-service/app/rest/middleware"
	"access-service/app/session"
	"access-service/app/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	e2eSubject   = "CN=DOE.JANE.1234567890,OU=ENGINEERING,O=EXAMPLE"
	adminSubject = "CN=ADAMS.RICHARD.5555555555,OU=OPERATIONS,O=EXAMPLE"
)

type stubHealthChecker struct{}

func (stubHealthChecker) HealthCheck(ctx context.Context) error { return nil }

// e2eEnv wires the real cache, registry and usecase behind the router,
// with only the user store mocked out.
type e2eEnv struct {
	router   http.Handler
	resolver *mock_port.MockUserResolver
	registry *session.Registry
}

func newE2EEnv(t *testing.T) *e2eEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := mock_port.NewMockUserResolver(ctrl)
	resolutionCache := cache.NewResolutionCache(5*time.Minute, 64, logger)
	registry := session.NewRegistry(8*time.Hour, 8*time.Hour, time.Minute, logger)
	t.Cleanup(registry.Close)

	uc := usecase.NewAccessUsecase(resolver, resolutionCache, registry, logger)

	router := NewRouter(RouterConfig{
		Logger:            logger,
		AccessUsecase:     uc,
		ProgramRepository: mock_port.NewMockProgramRepository(ctrl),
		HealthChecker:     stubHealthChecker{},
		EnableMetrics:     false,
	})

	return &e2eEnv{router: router, resolver: resolver, registry: registry}
}

func (env *e2eEnv) doAs(subject, method, target, remoteAddr, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(middleware.DefaultCertHeader, subject)
	req.RemoteAddr = remoteAddr
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *e2eEnv) do(method, target, remoteAddr, body string) *httptest.ResponseRecorder {
	return env.doAs(e2eSubject, method, target, remoteAddr, body)
}

func e2eUser() *domain.ResolvedUser {
	return &domain.ResolvedUser{
		UserID:      uuid.New(),
		Subject:     e2eSubject,
		UserName:    "DOE.JANE.1234567890",
		DisplayName: "Jane Doe",
		IsActive:    true,
		Programs: []domain.ProgramAccess{
			{ProgramID: 7, AccessLevel: domain.AccessLevelWrite, ProgramCode: "FALCON"},
		},
		ResolvedAt: time.Now(),
	}
}

func e2eAdmin() *domain.ResolvedUser {
	return &domain.ResolvedUser{
		UserID:        uuid.New(),
		Subject:       adminSubject,
		UserName:      "ADAMS.RICHARD.5555555555",
		DisplayName:   "Richard Adams",
		IsSystemAdmin: true,
		IsActive:      true,
		ResolvedAt:    time.Now(),
	}
}

func TestRouter_CachedResolutionServesRepeatRequests(t *testing.T) {
	env := newE2EEnv(t)

	// exactly one store read for any number of requests inside the TTL
	env.resolver.EXPECT().
		GetUserBySubject(gomock.Any(), e2eSubject).
		Return(e2eUser(), nil).
		Times(1)

	for i := 0; i < 5; i++ {
		rec := env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRouter_LogoutBeatsValidCache(t *testing.T) {
	env := newE2EEnv(t)

	env.resolver.EXPECT().
		GetUserBySubject(gomock.Any(), e2eSubject).
		Return(e2eUser(), nil).
		Times(1)

	rec := env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/v1/auth/logout", "10.0.0.1:5000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// the cached resolution is still warm, but the blacklist wins
	rec = env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LogoutIsPerClientOrigin(t *testing.T) {
	env := newE2EEnv(t)

	env.resolver.EXPECT().
		GetUserBySubject(gomock.Any(), e2eSubject).
		Return(e2eUser(), nil).
		Times(1)

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "").Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.2:5000", "").Code)

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/v1/auth/logout", "10.0.0.1:5000", "").Code)

	// the origin that logged out is terminated, the other stays live
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "").Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.2:5000", "").Code)
}

func TestRouter_ForceLogoutTerminatesAllOriginsAndCache(t *testing.T) {
	env := newE2EEnv(t)

	// the target identity resolves twice: once before the forced logout
	// and once after, because the forced logout dropped its cached entry
	gomock.InOrder(
		env.resolver.EXPECT().
			GetUserBySubject(gomock.Any(), e2eSubject).
			Return(e2eUser(), nil).
			Times(1),
		env.resolver.EXPECT().
			GetUserBySubject(gomock.Any(), e2eSubject).
			Return(e2eUser(), nil).
			Times(1),
	)
	env.resolver.EXPECT().
		GetUserBySubject(gomock.Any(), adminSubject).
		Return(e2eAdmin(), nil).
		Times(1)

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "").Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.2:5000", "").Code)
	assert.Len(t, env.registry.List(), 2)

	rec := env.doAs(adminSubject, http.MethodPost, "/v1/admin/sessions/force-logout", "10.0.0.9:5000",
		`{"subject": "`+e2eSubject+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessions_terminated":2`)

	// both existing origins are terminated
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.1:5000", "").Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.2:5000", "").Code)

	// a fresh origin authenticates again, hitting the store not the cache
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/auth/whoami", "10.0.0.3:5000", "").Code)
}

func TestRouter_AdminRoutesRejectRegularUsers(t *testing.T) {
	env := newE2EEnv(t)

	env.resolver.EXPECT().
		GetUserBySubject(gomock.Any(), e2eSubject).
		Return(e2eUser(), nil).
		Times(1)

	rec := env.do(http.MethodGet, "/v1/admin/sessions", "10.0.0.1:5000", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_MissingCredentialRejected(t *testing.T) {
	env := newE2EEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/whoami", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_HealthEndpointsNeedNoAuth(t *testing.T) {
	env := newE2EEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/ready", nil)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
