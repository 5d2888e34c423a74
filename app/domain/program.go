package domain

import "time"

// Program is a tenant: an isolated organizational unit that access is
// granted against.
type Program struct {
	ID        ProgramID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgramSummary is the access-layer view of one program: the program
// row plus how many active users hold grants on it.
type ProgramSummary struct {
	Program
	GrantedUserCount int `json:"granted_user_count"`
}
