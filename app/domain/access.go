package domain

// Authorize decides whether the user may act on the target program at the
// required level. It is a pure function of the resolved user: session
// state never grants or denies by itself, so revoking a grant revokes
// authorization even while a session remains active.
//
// A system admin is admitted unconditionally and the stated target
// program id is bound as-is; there is no implicit broadening to other
// programs. Otherwise the user's grant for the target program is compared
// against the required level using the total order Read < Write < Admin.
func (u *ResolvedUser) Authorize(programID ProgramID, required AccessLevel) (ProgramID, error) {
	if u.IsSystemAdmin {
		return programID, nil
	}

	grant, ok := u.GrantFor(programID)
	if !ok {
		return 0, ErrAccessDenied
	}
	if grant.AccessLevel < required {
		return 0, ErrInsufficientAccessLevel
	}
	return programID, nil
}

// CanAccess reports whether Authorize would admit the user.
func (u *ResolvedUser) CanAccess(programID ProgramID, required AccessLevel) bool {
	_, err := u.Authorize(programID, required)
	return err == nil
}
