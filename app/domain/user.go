package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProgramID identifies a program (tenant) in the multi-tenant system.
type ProgramID int64

// AccessLevel is an ordered per-program grant. Higher levels include the
// capabilities of lower ones.
type AccessLevel int

const (
	AccessLevelRead  AccessLevel = 1
	AccessLevelWrite AccessLevel = 2
	AccessLevelAdmin AccessLevel = 3
)

// String returns the canonical name of an access level.
func (l AccessLevel) String() string {
	switch l {
	case AccessLevelRead:
		return "read"
	case AccessLevelWrite:
		return "write"
	case AccessLevelAdmin:
		return "admin"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// Valid reports whether the level is one of the defined grants.
func (l AccessLevel) Valid() bool {
	return l >= AccessLevelRead && l <= AccessLevelAdmin
}

// ParseAccessLevel converts a stored level name to an AccessLevel.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch s {
	case "read":
		return AccessLevelRead, nil
	case "write":
		return AccessLevelWrite, nil
	case "admin":
		return AccessLevelAdmin, nil
	default:
		return 0, fmt.Errorf("invalid access level: %q", s)
	}
}

// ProgramAccess is one (user, program) grant. A user holds at most one
// grant per program; the store enforces that with a composite key.
type ProgramAccess struct {
	ProgramID   ProgramID   `json:"program_id"`
	AccessLevel AccessLevel `json:"access_level"`
	ProgramName string      `json:"program_name"`
	ProgramCode string      `json:"program_code"`
}

// ResolvedUser is an authenticated principal together with its program
// grants. It is produced by a single user-store read and cached by
// subject; the struct is treated as read-only once resolved so cached
// instances can be shared across concurrent requests.
type ResolvedUser struct {
	UserID        uuid.UUID       `json:"user_id"`
	Subject       string          `json:"-"`
	UserName      string          `json:"user_name"`
	DisplayName   string          `json:"display_name"`
	IsSystemAdmin bool            `json:"is_system_admin"`
	IsActive      bool            `json:"is_active"`
	Programs      []ProgramAccess `json:"programs"`
	ResolvedAt    time.Time       `json:"resolved_at"`
}

// GrantFor returns the user's grant for a program, if any.
func (u *ResolvedUser) GrantFor(programID ProgramID) (ProgramAccess, bool) {
	for _, grant := range u.Programs {
		if grant.ProgramID == programID {
			return grant, true
		}
	}
	return ProgramAccess{}, false
}

// ProgramIDs returns the set of program ids the user holds grants for.
func (u *ResolvedUser) ProgramIDs() map[ProgramID]struct{} {
	ids := make(map[ProgramID]struct{}, len(u.Programs))
	for _, grant := range u.Programs {
		ids[grant.ProgramID] = struct{}{}
	}
	return ids
}
