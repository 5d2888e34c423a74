package usecase

import (
	"context"
	"log/slog"

	"access-service/app/domain"
	"access-service/app/metrics"
	"access-service/app/port"
)

// AccessUsecase implements the request-time identity pipeline. Within a
// request the steps run strictly in order (blacklist check, cache
// get-or-resolve, session touch, then authorization) because each
// depends on the prior step's result. Across requests there is no
// ordering: every decision is a pure function of current state.
type AccessUsecase struct {
	resolver port.UserResolver
	cache    port.ResolutionCache
	sessions port.SessionRegistry
	logger   *slog.Logger
}

// NewAccessUsecase creates a new access usecase
func NewAccessUsecase(
	resolver port.UserResolver,
	cache port.ResolutionCache,
	sessions port.SessionRegistry,
	logger *slog.Logger,
) *AccessUsecase {
	return &AccessUsecase{
		resolver: resolver,
		cache:    cache,
		sessions: sessions,
		logger:   logger.With("component", "access_usecase"),
	}
}

// Authenticate turns the trusted certificate header value into a
// resolved user. The blacklist is consulted before any cache or resolver
// work so terminated sessions short-circuit; a successful resolution
// touches the session registry before authorization is evaluated.
func (u *AccessUsecase) Authenticate(ctx context.Context, rawCredential, clientAddress, clientAgent string) (*domain.ResolvedUser, error) {
	if rawCredential == "" {
		metrics.AuthFailures.WithLabelValues(domain.ErrCodeUnauthenticated).Inc()
		return nil, domain.ErrUnauthenticated
	}

	identity, err := domain.ParseIdentity(rawCredential)
	if err != nil {
		metrics.AuthFailures.WithLabelValues(domain.ErrCodeMalformedCertificate).Inc()
		return nil, err
	}

	sessionKey := domain.SessionKeyFor(identity.Subject, clientAddress)
	if u.sessions.IsBlacklisted(sessionKey) {
		metrics.AuthFailures.WithLabelValues(domain.ErrCodeSessionTerminated).Inc()
		return nil, domain.ErrSessionTerminated
	}

	user, err := u.cache.GetOrResolve(ctx, identity.Subject, func(ctx context.Context) (*domain.ResolvedUser, error) {
		return u.resolver.GetUserBySubject(ctx, identity.Subject)
	})
	if err != nil {
		u.recordResolveFailure(err)
		return nil, err
	}

	u.sessions.Touch(sessionKey, user, clientAddress, clientAgent)
	return user, nil
}

// Authorize admits or rejects the user for the target program at the
// required level. Thin wrapper over the domain gate so transport code
// depends on the port, not the entity.
func (u *AccessUsecase) Authorize(user *domain.ResolvedUser, programID domain.ProgramID, required domain.AccessLevel) (domain.ProgramID, error) {
	bound, err := user.Authorize(programID, required)
	if err != nil {
		code := domain.ErrCodeAccessDenied
		if err == domain.ErrInsufficientAccessLevel {
			code = domain.ErrCodeInsufficientLevel
		}
		metrics.AuthFailures.WithLabelValues(code).Inc()
		return 0, err
	}
	return bound, nil
}

// Logout blacklists only the caller's own (subject, client) session key.
// Other origins of the same identity stay live; contrast ForceLogout.
func (u *AccessUsecase) Logout(subject, clientAddress string) error {
	u.sessions.Blacklist(domain.SessionKeyFor(subject, clientAddress))
	metrics.SessionsTerminated.WithLabelValues("logout").Inc()
	u.logger.Info("session logged out")
	return nil
}

// ForceLogout blacklists every session of the subject across all client
// origins and invalidates its cached resolution: an operator forcing a
// logout wants immediate effect, not a TTL-bounded one.
func (u *AccessUsecase) ForceLogout(subject string) int {
	count := u.sessions.ForceLogout(subject)
	u.cache.Invalidate(subject)
	metrics.SessionsTerminated.WithLabelValues("force_logout").Add(float64(count))
	u.logger.Info("subject force-logged out", "sessions_terminated", count)
	return count
}

// InvalidateUser drops the subject's cached resolution. The mandatory
// hook for whichever component grants or revokes program access.
func (u *AccessUsecase) InvalidateUser(subject string) {
	u.cache.Invalidate(subject)
}

// ListSessions returns the active session records for the admin surface.
func (u *AccessUsecase) ListSessions() []domain.SessionRecord {
	return u.sessions.List()
}

func (u *AccessUsecase) recordResolveFailure(err error) {
	switch {
	case err == nil:
		return
	case domain.IsAuthFailure(err):
		metrics.AuthFailures.WithLabelValues(domain.ErrCodeUserNotFound).Inc()
	default:
		metrics.ResolverErrors.Inc()
		u.logger.Error("user resolution failed", "error", err)
	}
}
