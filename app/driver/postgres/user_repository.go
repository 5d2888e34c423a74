package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"access-service/app/domain"
	"access-service/app/port"
)

// UserRepository implements port.UserResolver for PostgreSQL.
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserResolver {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

// getUserBySubjectQuery resolves a subject in one round trip: the user
// row plus its program grants aggregated into a JSON array. Inactive
// users are filtered in SQL so they are indistinguishable from missing
// ones.
const getUserBySubjectQuery = `
	SELECT
		u.id, u.user_name, u.display_name, u.is_system_admin, u.is_active,
		COALESCE(
			json_agg(
				json_build_object(
					'program_id', pa.program_id,
					'access_level', pa.access_level,
					'program_name', p.name,
					'program_code', p.code
				)
			) FILTER (WHERE pa.program_id IS NOT NULL),
			'[]'
		) AS grants
	FROM users u
	LEFT JOIN program_access pa ON pa.user_id = u.id
	LEFT JOIN programs p ON p.id = pa.program_id AND p.is_active
	WHERE u.cert_subject = $1 AND u.is_active
	GROUP BY u.id`

// programGrantRow is the JSON shape produced by getUserBySubjectQuery.
type programGrantRow struct {
	ProgramID   int64  `json:"program_id"`
	AccessLevel int    `json:"access_level"`
	ProgramName string `json:"program_name"`
	ProgramCode string `json:"program_code"`
}

// GetUserBySubject resolves a certificate subject to its user and grant
// set. Returns domain.ErrUserNotFound when no active user matches;
// infrastructure failures wrap domain.ErrResolverUnavailable so callers
// can distinguish "retry later" from "not authorized".
func (r *UserRepository) GetUserBySubject(ctx context.Context, subject string) (*domain.ResolvedUser, error) {
	user := &domain.ResolvedUser{Subject: subject}
	var grantsJSON []byte

	err := r.db.QueryRow(ctx, getUserBySubjectQuery, subject).Scan(
		&user.UserID,
		&user.UserName,
		&user.DisplayName,
		&user.IsSystemAdmin,
		&user.IsActive,
		&grantsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("user resolution query failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}

	var rows []programGrantRow
	if err := json.Unmarshal(grantsJSON, &rows); err != nil {
		r.logger.Error("grant aggregation unmarshal failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}

	user.Programs = make([]domain.ProgramAccess, 0, len(rows))
	for _, row := range rows {
		level := domain.AccessLevel(row.AccessLevel)
		if !level.Valid() {
			r.logger.Warn("skipping grant with invalid access level",
				"program_id", row.ProgramID, "access_level", row.AccessLevel)
			continue
		}
		user.Programs = append(user.Programs, domain.ProgramAccess{
			ProgramID:   domain.ProgramID(row.ProgramID),
			AccessLevel: level,
			ProgramName: row.ProgramName,
			ProgramCode: row.ProgramCode,
		})
	}
	user.ResolvedAt = time.Now()

	return user, nil
}
