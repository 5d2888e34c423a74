package session

import (
	"log/slog"
	"sync"
	"time"

	"access-service/app/domain"
	"access-service/app/metrics"
)

// Default lifetimes; overridable through the constructor.
const (
	DefaultSessionTTL    = 8 * time.Hour
	DefaultBlacklistTTL  = 8 * time.Hour
	DefaultSweepInterval = time.Minute
)

// Registry tracks active (identity, client) sessions and their blacklist.
// Certificates cannot be revoked client-side, so logout and forced logout
// are layered on top: a blacklisted key fails closed on every lookup
// until the blacklist entry itself expires.
//
// Session state is advisory and operational. Its absence or expiry never
// grants or denies access by itself; the authorization gate always
// re-checks current grants.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*domain.SessionRecord
	blacklist map[string]time.Time

	sessionTTL   time.Duration
	blacklistTTL time.Duration

	logger *slog.Logger
	stop   chan struct{}
	once   sync.Once
}

// NewRegistry creates a session registry and starts its janitor. Expiry
// is time-driven, not request-driven: the janitor sweeps expired
// sessions and blacklist entries on every interval regardless of
// traffic, bounding memory growth under idle load.
func NewRegistry(sessionTTL, blacklistTTL, sweepInterval time.Duration, logger *slog.Logger) *Registry {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	if blacklistTTL <= 0 {
		blacklistTTL = DefaultBlacklistTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	r := &Registry{
		sessions:     make(map[string]*domain.SessionRecord),
		blacklist:    make(map[string]time.Time),
		sessionTTL:   sessionTTL,
		blacklistTTL: blacklistTTL,
		logger:       logger.With("component", "session_registry"),
		stop:         make(chan struct{}),
	}

	go r.sweep(sweepInterval)
	return r
}

// Touch creates or refreshes the session for the key. Called on every
// request that successfully authenticates, before authorization is
// evaluated.
func (r *Registry) Touch(key string, user *domain.ResolvedUser, clientAddress, clientAgent string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record, ok := r.sessions[key]; ok {
		record.Refresh(r.sessionTTL)
		return
	}

	now := time.Now()
	r.sessions[key] = &domain.SessionRecord{
		Key:           key,
		Subject:       user.Subject,
		UserID:        user.UserID,
		UserName:      user.UserName,
		ClientAddress: clientAddress,
		ClientAgent:   clientAgent,
		LoginTime:     now,
		LastActivity:  now,
		ExpiresAt:     now.Add(r.sessionTTL),
	}
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	r.logger.Info("session started", "user_id", user.UserID)
}

// IsBlacklisted reports whether the key has been terminated. Checked
// before any cache or resolver work so terminated sessions short-circuit.
func (r *Registry) IsBlacklisted(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expiry, ok := r.blacklist[key]
	return ok && time.Now().Before(expiry)
}

// Blacklist terminates the session for the key. All future lookups for
// the key fail closed regardless of remaining session TTL, until the
// blacklist entry itself expires.
func (r *Registry) Blacklist(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blacklistLocked(key)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
}

func (r *Registry) blacklistLocked(key string) {
	r.blacklist[key] = time.Now().Add(r.blacklistTTL)
	delete(r.sessions, key)
}

// List returns a snapshot of the active session records.
func (r *Registry) List() []domain.SessionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.SessionRecord, 0, len(r.sessions))
	for _, record := range r.sessions {
		records = append(records, *record)
	}
	return records
}

// ForceLogout blacklists every session of the subject across all client
// origins and returns the number terminated.
func (r *Registry) ForceLogout(subject string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var keys []string
	for key, record := range r.sessions {
		if record.Subject == subject {
			keys = append(keys, key)
		}
	}
	for _, key := range keys {
		r.blacklistLocked(key)
	}

	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	if len(keys) > 0 {
		r.logger.Info("sessions force-terminated", "count", len(keys))
	}
	return len(keys)
}

// Close stops the janitor. Safe to call more than once.
func (r *Registry) Close() {
	r.once.Do(func() { close(r.stop) })
}

func (r *Registry) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.reap()
		}
	}
}

func (r *Registry) reap() {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	var expired int
	for key, record := range r.sessions {
		if now.After(record.ExpiresAt) {
			delete(r.sessions, key)
			expired++
		}
	}
	for key, expiry := range r.blacklist {
		if now.After(expiry) {
			delete(r.blacklist, key)
		}
	}

	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	if expired > 0 {
		r.logger.Debug("expired sessions reaped", "count", expired)
	}
}
