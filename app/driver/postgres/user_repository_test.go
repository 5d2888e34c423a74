package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"access-service/app/domain"
	"access-service/app/utils/logger"
)

const testSubject = "CN=DOE.JANE.1,OU=ORG"

// Helper function to create a test user repository with mocked database
func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)

	return repo, mockDB
}

func TestUserRepository_GetUserBySubject(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  error
		validate func(*testing.T, *domain.ResolvedUser)
	}{
		{
			name: "user with aggregated grants",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				grants := []byte(`[
					{"program_id": 7, "access_level": 2, "program_name": "Line 7 Assembly", "program_code": "L7A"},
					{"program_id": 9, "access_level": 1, "program_name": "Line 9 Paint", "program_code": "L9P"}
				]`)
				mockDB.ExpectQuery("SELECT(.|\n)+FROM users u").
					WithArgs(testSubject).
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "user_name", "display_name", "is_system_admin", "is_active", "grants",
					}).AddRow(userID, "jdoe", "Jane Doe", false, true, grants))
			},
			validate: func(t *testing.T, user *domain.ResolvedUser) {
				assert.Equal(t, userID, user.UserID)
				assert.Equal(t, "jdoe", user.UserName)
				assert.Equal(t, "Jane Doe", user.DisplayName)
				assert.Equal(t, testSubject, user.Subject)
				assert.False(t, user.IsSystemAdmin)
				assert.True(t, user.IsActive)
				require.Len(t, user.Programs, 2)
				assert.Equal(t, domain.ProgramAccess{
					ProgramID:   7,
					AccessLevel: domain.AccessLevelWrite,
					ProgramName: "Line 7 Assembly",
					ProgramCode: "L7A",
				}, user.Programs[0])
				assert.False(t, user.ResolvedAt.IsZero())
			},
		},
		{
			name: "user without grants gets empty set",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.|\n)+FROM users u").
					WithArgs(testSubject).
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "user_name", "display_name", "is_system_admin", "is_active", "grants",
					}).AddRow(userID, "jdoe", "Jane Doe", false, true, []byte(`[]`)))
			},
			validate: func(t *testing.T, user *domain.ResolvedUser) {
				assert.NotNil(t, user.Programs)
				assert.Empty(t, user.Programs)
			},
		},
		{
			name: "system admin flag round-trips",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.|\n)+FROM users u").
					WithArgs(testSubject).
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "user_name", "display_name", "is_system_admin", "is_active", "grants",
					}).AddRow(userID, "admin", "Site Admin", true, true, []byte(`[]`)))
			},
			validate: func(t *testing.T, user *domain.ResolvedUser) {
				assert.True(t, user.IsSystemAdmin)
			},
		},
		{
			name: "grant with out-of-range level is skipped",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				grants := []byte(`[
					{"program_id": 7, "access_level": 9, "program_name": "Line 7 Assembly", "program_code": "L7A"},
					{"program_id": 9, "access_level": 3, "program_name": "Line 9 Paint", "program_code": "L9P"}
				]`)
				mockDB.ExpectQuery("SELECT(.|\n)+FROM users u").
					WithArgs(testSubject).
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "user_name", "display_name", "is_system_admin", "is_active", "grants",
					}).AddRow(userID, "jdoe", "Jane Doe", false, true, grants))
			},
			validate: func(t *testing.T, user *domain.ResolvedUser) {
				require.Len(t, user.Programs, 1)
				assert.Equal(t, domain.ProgramID(9), user.Programs[0].ProgramID)
				assert.Equal(t, domain.AccessLevelAdmin, user.Programs[0].AccessLevel)
			},
		},
		{
			name: "no matching active user",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.|\n)+FROM users u").
					WithArgs(testSubject).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "store failure is a resolver outage",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.|\n)+FROM users u").
					WithArgs(testSubject).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: domain.ErrResolverUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()
			tt.setupDB(mockDB)

			user, err := repo.GetUserBySubject(context.Background(), testSubject)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				tt.validate(t, user)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
