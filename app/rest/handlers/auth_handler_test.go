package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"access-service/app/domain"
	mock_port "access-service/app/mocks"
	"access-service/app/rest/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser() *domain.ResolvedUser {
	return &domain.ResolvedUser{
		UserID:      uuid.New(),
		Subject:     "CN=DOE.JANE.1234567890,OU=ENGINEERING",
		UserName:    "DOE.JANE.1234567890",
		DisplayName: "Jane Doe",
		IsActive:    true,
		Programs: []domain.ProgramAccess{
			{ProgramID: 7, AccessLevel: domain.AccessLevelWrite, ProgramCode: "FALCON"},
			{ProgramID: 9, AccessLevel: domain.AccessLevelRead, ProgramCode: "RAPTOR"},
		},
	}
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Whoami(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mock_port.NewMockAccessUsecase(ctrl), testLogger())

	t.Run("returns resolved identity", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/v1/auth/whoami", "")
		c.Set(middleware.ContextKeyUser, testUser())

		require.NoError(t, h.Whoami(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.ResolvedUser
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Jane Doe", got.DisplayName)
		assert.Len(t, got.Programs, 2)
		// the certificate subject never leaves the service
		assert.NotContains(t, rec.Body.String(), "CN=DOE.JANE")
	})

	t.Run("no user in context", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/v1/auth/whoami", "")
		require.NoError(t, h.Whoami(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()
	uc := mock_port.NewMockAccessUsecase(ctrl)
	uc.EXPECT().Logout(user.Subject, gomock.Any()).Return(nil)

	h := NewAuthHandler(uc, testLogger())
	c, rec := newContext(http.MethodPost, "/v1/auth/logout", "")
	c.Set(middleware.ContextKeyUser, user)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}
