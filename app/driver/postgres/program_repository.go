package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"access-service/app/domain"
	"access-service/app/port"
)

// ProgramRepository implements port.ProgramRepository for PostgreSQL.
// Listings here are deliberately broad; handlers narrow them to the
// caller's accessible programs with the scoping filter.
type ProgramRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProgramRepository creates a new PostgreSQL program repository
func NewProgramRepository(db DatabaseIface, logger *slog.Logger) port.ProgramRepository {
	return &ProgramRepository{
		db:     db,
		logger: logger.With("component", "program_repository"),
	}
}

// ListPrograms returns every active program.
func (r *ProgramRepository) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	query := `
		SELECT id, code, name, is_active, created_at
		FROM programs
		WHERE is_active
		ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("program listing query failed", "error", err)
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var programs []domain.Program
	for rows.Next() {
		var program domain.Program
		if err := rows.Scan(&program.ID, &program.Code, &program.Name, &program.IsActive, &program.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan program row: %w", err)
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// GetProgramSummary returns one program together with the number of
// active users holding grants on it.
func (r *ProgramRepository) GetProgramSummary(ctx context.Context, programID domain.ProgramID) (*domain.ProgramSummary, error) {
	query := `
		SELECT p.id, p.code, p.name, p.is_active, p.created_at,
			COUNT(pa.user_id) FILTER (WHERE u.is_active) AS granted_users
		FROM programs p
		LEFT JOIN program_access pa ON pa.program_id = p.id
		LEFT JOIN users u ON u.id = pa.user_id
		WHERE p.id = $1 AND p.is_active
		GROUP BY p.id`

	summary := &domain.ProgramSummary{}
	err := r.db.QueryRow(ctx, query, programID).Scan(
		&summary.ID,
		&summary.Code,
		&summary.Name,
		&summary.IsActive,
		&summary.CreatedAt,
		&summary.GrantedUserCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		r.logger.Error("program summary query failed", "program_id", programID, "error", err)
		return nil, fmt.Errorf("failed to get program summary: %w", err)
	}

	return summary, nil
}
