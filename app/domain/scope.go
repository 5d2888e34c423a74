package domain

// ScopeToPrograms narrows a program-tagged record collection to the
// programs the user may access. It is pure and idempotent: system admins
// get the input back unchanged, everyone else keeps only records whose
// program id appears in their grant set.
//
// Every handler that returns program-tagged collections from a broad
// query applies this before responding. It is the last line of defense
// against over-fetching, independent of whatever filtering the query
// itself attempted.
func ScopeToPrograms[T any](records []T, programID func(T) ProgramID, user *ResolvedUser) []T {
	if user.IsSystemAdmin {
		return records
	}

	accessible := user.ProgramIDs()
	scoped := make([]T, 0, len(records))
	for _, record := range records {
		if _, ok := accessible[programID(record)]; ok {
			scoped = append(scoped, record)
		}
	}
	return scoped
}
