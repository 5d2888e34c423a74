package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// SessionKeyFor derives the registry key for an (identity, client) pair.
// The same subject connecting from a different network origin is tracked
// as a distinct session, so the key hashes both.
func SessionKeyFor(subject, clientAddress string) string {
	sum := sha256.Sum256([]byte(subject + "|" + clientAddress))
	return hex.EncodeToString(sum[:])
}

// SessionRecord tracks one active (identity, client) session. Sessions
// are advisory and operational (audit, logout UX): a record existing
// implies the identity previously passed resolution, but it does not
// itself grant access; the authorization gate always re-checks current
// grants.
type SessionRecord struct {
	Key            string    `json:"key"`
	Subject        string    `json:"subject"`
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	ClientAddress  string    `json:"client_address"`
	ClientAgent    string    `json:"client_agent"`
	LoginTime      time.Time `json:"login_time"`
	LastActivity   time.Time `json:"last_activity"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its TTL.
func (s *SessionRecord) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Refresh updates activity and extends the expiry window. Called on
// every request that successfully authenticates.
func (s *SessionRecord) Refresh(ttl time.Duration) {
	now := time.Now()
	s.LastActivity = now
	s.ExpiresAt = now.Add(ttl)
}
