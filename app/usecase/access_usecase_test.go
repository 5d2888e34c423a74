package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"access-service/app/domain"
	mock_port "access-service/app/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSubject = "CN=SMITH.JOHN.A.1234567890,OU=CONTRACTOR,O=EXAMPLE"
	testAddress = "10.20.30.40"
	testAgent   = "production-tracker/2.1"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testResolvedUser() *domain.ResolvedUser {
	return &domain.ResolvedUser{
		UserID:      uuid.New(),
		Subject:     testSubject,
		UserName:    "SMITH.JOHN.A.1234567890",
		DisplayName: "John Smith",
		IsActive:    true,
		Programs: []domain.ProgramAccess{
			{ProgramID: 101, AccessLevel: domain.AccessLevelWrite, ProgramCode: "FALCON"},
			{ProgramID: 102, AccessLevel: domain.AccessLevelRead, ProgramCode: "RAPTOR"},
		},
		ResolvedAt: time.Now(),
	}
}

func TestAccessUsecase_Authenticate(t *testing.T) {
	sessionKey := domain.SessionKeyFor(testSubject, testAddress)

	tests := []struct {
		name       string
		credential string
		setupMocks func(*mock_port.MockUserResolver, *mock_port.MockResolutionCache, *mock_port.MockSessionRegistry)
		wantErr    error
		wantUser   bool
	}{
		{
			name:       "missing credential",
			credential: "",
			setupMocks: func(resolver *mock_port.MockUserResolver, cache *mock_port.MockResolutionCache, sessions *mock_port.MockSessionRegistry) {
			},
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:       "malformed credential",
			credential: "not-a-subject-and-not-base64!!",
			setupMocks: func(resolver *mock_port.MockUserResolver, cache *mock_port.MockResolutionCache, sessions *mock_port.MockSessionRegistry) {
			},
			wantErr: domain.ErrMalformedCertificate,
		},
		{
			name:       "blacklisted session short-circuits before cache",
			credential: testSubject,
			setupMocks: func(resolver *mock_port.MockUserResolver, cache *mock_port.MockResolutionCache, sessions *mock_port.MockSessionRegistry) {
				sessions.EXPECT().IsBlacklisted(sessionKey).Return(true)
				// no cache or resolver expectations: any call fails the test
			},
			wantErr: domain.ErrSessionTerminated,
		},
		{
			name:       "successful resolution touches the session",
			credential: testSubject,
			setupMocks: func(resolver *mock_port.MockUserResolver, cache *mock_port.MockResolutionCache, sessions *mock_port.MockSessionRegistry) {
				sessions.EXPECT().IsBlacklisted(sessionKey).Return(false)
				cache.EXPECT().
					GetOrResolve(gomock.Any(), testSubject, gomock.Any()).
					DoAndReturn(func(ctx context.Context, subject string, resolve func(context.Context) (*domain.ResolvedUser, error)) (*domain.ResolvedUser, error) {
						return resolve(ctx)
					})
				resolver.EXPECT().
					GetUserBySubject(gomock.Any(), testSubject).
					Return(testResolvedUser(), nil)
				sessions.EXPECT().Touch(sessionKey, gomock.Any(), testAddress, testAgent)
			},
			wantUser: true,
		},
		{
			name:       "unknown subject",
			credential: testSubject,
			setupMocks: func(resolver *mock_port.MockUserResolver, cache *mock_port.MockResolutionCache, sessions *mock_port.MockSessionRegistry) {
				sessions.EXPECT().IsBlacklisted(sessionKey).Return(false)
				cache.EXPECT().
					GetOrResolve(gomock.Any(), testSubject, gomock.Any()).
					Return(nil, domain.ErrUserNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:       "resolver outage",
			credential: testSubject,
			setupMocks: func(resolver *mock_port.MockUserResolver, cache *mock_port.MockResolutionCache, sessions *mock_port.MockSessionRegistry) {
				sessions.EXPECT().IsBlacklisted(sessionKey).Return(false)
				cache.EXPECT().
					GetOrResolve(gomock.Any(), testSubject, gomock.Any()).
					Return(nil, domain.ErrResolverUnavailable)
			},
			wantErr: domain.ErrResolverUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := mock_port.NewMockUserResolver(ctrl)
			cache := mock_port.NewMockResolutionCache(ctrl)
			sessions := mock_port.NewMockSessionRegistry(ctrl)
			tt.setupMocks(resolver, cache, sessions)

			uc := NewAccessUsecase(resolver, cache, sessions, testLogger())
			user, err := uc.Authenticate(context.Background(), tt.credential, testAddress, testAgent)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, testSubject, user.Subject)
				assert.True(t, user.IsActive)
			}
		})
	}
}

func TestAccessUsecase_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAccessUsecase(
		mock_port.NewMockUserResolver(ctrl),
		mock_port.NewMockResolutionCache(ctrl),
		mock_port.NewMockSessionRegistry(ctrl),
		testLogger(),
	)
	user := testResolvedUser()

	t.Run("grant at required level", func(t *testing.T) {
		bound, err := uc.Authorize(user, 101, domain.AccessLevelWrite)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgramID(101), bound)
	})

	t.Run("grant below required level", func(t *testing.T) {
		_, err := uc.Authorize(user, 102, domain.AccessLevelWrite)
		assert.ErrorIs(t, err, domain.ErrInsufficientAccessLevel)
	})

	t.Run("no grant at all", func(t *testing.T) {
		_, err := uc.Authorize(user, 999, domain.AccessLevelRead)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("system admin bypasses grants", func(t *testing.T) {
		admin := testResolvedUser()
		admin.IsSystemAdmin = true
		bound, err := uc.Authorize(admin, 999, domain.AccessLevelAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgramID(999), bound)
	})
}

func TestAccessUsecase_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock_port.NewMockSessionRegistry(ctrl)
	sessions.EXPECT().Blacklist(domain.SessionKeyFor(testSubject, testAddress))

	uc := NewAccessUsecase(
		mock_port.NewMockUserResolver(ctrl),
		mock_port.NewMockResolutionCache(ctrl),
		sessions,
		testLogger(),
	)
	require.NoError(t, uc.Logout(testSubject, testAddress))
}

func TestAccessUsecase_ForceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock_port.NewMockSessionRegistry(ctrl)
	cache := mock_port.NewMockResolutionCache(ctrl)
	gomock.InOrder(
		sessions.EXPECT().ForceLogout(testSubject).Return(3),
		cache.EXPECT().Invalidate(testSubject),
	)

	uc := NewAccessUsecase(mock_port.NewMockUserResolver(ctrl), cache, sessions, testLogger())
	assert.Equal(t, 3, uc.ForceLogout(testSubject))
}

func TestAccessUsecase_InvalidateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mock_port.NewMockResolutionCache(ctrl)
	cache.EXPECT().Invalidate(testSubject)

	uc := NewAccessUsecase(
		mock_port.NewMockUserResolver(ctrl),
		cache,
		mock_port.NewMockSessionRegistry(ctrl),
		testLogger(),
	)
	uc.InvalidateUser(testSubject)
}

func TestAccessUsecase_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []domain.SessionRecord{
		{Key: "k1", Subject: testSubject, ClientAddress: testAddress},
	}
	sessions := mock_port.NewMockSessionRegistry(ctrl)
	sessions.EXPECT().List().Return(records)

	uc := NewAccessUsecase(
		mock_port.NewMockUserResolver(ctrl),
		mock_port.NewMockResolutionCache(ctrl),
		sessions,
		testLogger(),
	)
	assert.Equal(t, records, uc.ListSessions())
}
