package port

//go:generate mockgen -source=access_port.go -destination=../mocks/mock_access_port.go

import (
	"context"

	"access-service/app/domain"
)

// AccessUsecase defines the request-time identity and authorization pipeline.
// Per request the sequence is strictly: blacklist check, cache get-or-resolve,
// session touch, authorize, scope.
type AccessUsecase interface {
	// Authenticate turns the trusted certificate header into a resolved
	// user, consulting the session blacklist first and the resolution
	// cache before the user store.
	Authenticate(ctx context.Context, rawCredential, clientAddress, clientAgent string) (*domain.ResolvedUser, error)

	// Authorize admits or rejects the user for the target program at the
	// required level and returns the bound program id.
	Authorize(user *domain.ResolvedUser, programID domain.ProgramID, required domain.AccessLevel) (domain.ProgramID, error)

	// Logout blacklists only the caller's own (subject, client) session.
	Logout(subject, clientAddress string) error

	// ForceLogout blacklists every session of the subject across all
	// client origins and invalidates its cached resolution. Returns the
	// number of sessions terminated. Admin-initiated.
	ForceLogout(subject string) int

	// InvalidateUser drops the subject's cached resolution. Called by
	// whichever component grants or revokes program access so privilege
	// changes take effect on the next request, not after the TTL.
	InvalidateUser(subject string)

	// ListSessions returns the active session records. Admin-only surface.
	ListSessions() []domain.SessionRecord
}

// UserResolver defines the single-read user store contract. One round
// trip returns the user's core fields and its aggregated program grants.
type UserResolver interface {
	GetUserBySubject(ctx context.Context, subject string) (*domain.ResolvedUser, error)
}

// ProgramRepository defines program data access for broad listings that
// handlers scope to the caller's accessible programs.
type ProgramRepository interface {
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	GetProgramSummary(ctx context.Context, programID domain.ProgramID) (*domain.ProgramSummary, error)
}

// ResolutionCache defines the identity-to-user cache contract. Entries
// expire absolutely from write; Invalidate is synchronous so grant
// mutations take immediate effect.
type ResolutionCache interface {
	GetOrResolve(ctx context.Context, subject string, resolve func(context.Context) (*domain.ResolvedUser, error)) (*domain.ResolvedUser, error)
	Invalidate(subject string)
	Len() int
}

// SessionRegistry tracks active (identity, client) sessions with their
// own TTL, independent of the resolution cache, to support logout and
// forced-logout semantics a certificate itself cannot provide.
type SessionRegistry interface {
	Touch(key string, user *domain.ResolvedUser, clientAddress, clientAgent string)
	IsBlacklisted(key string) bool
	Blacklist(key string)
	List() []domain.SessionRecord
	ForceLogout(subject string) int
	Close()
}
