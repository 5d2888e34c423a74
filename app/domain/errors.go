package domain

import "errors"

// Authentication and authorization errors
var (
	// Credential errors
	ErrUnauthenticated      = errors.New("no credential presented")
	ErrMalformedCertificate = errors.New("malformed certificate")
	ErrUserNotFound         = errors.New("user not found")

	// Session errors
	ErrSessionTerminated = errors.New("session terminated")
	ErrSessionNotFound   = errors.New("session not found")

	// Authorization errors
	ErrAccessDenied            = errors.New("access denied")
	ErrInsufficientAccessLevel = errors.New("insufficient access level")

	// Infrastructure errors
	ErrResolverUnavailable = errors.New("user store unavailable")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// IsAuthFailure reports whether err is one of the request-local,
// user-facing authentication/authorization failures. Infrastructure
// errors (ErrResolverUnavailable) are excluded: those may be retried
// by the caller and must be reported distinctly from "not authorized".
func IsAuthFailure(err error) bool {
	switch {
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrMalformedCertificate),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrSessionTerminated),
		errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrInsufficientAccessLevel):
		return true
	}
	return false
}

// AuthError carries an auth failure with a machine-readable code for
// logging and metrics. The caller-facing message stays generic so error
// payloads never disclose whether a subject exists but is inactive, nor
// other tenants' program names.
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common auth error codes
const (
	ErrCodeUnauthenticated      = "UNAUTHENTICATED"
	ErrCodeMalformedCertificate = "MALFORMED_CERTIFICATE"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeSessionTerminated    = "SESSION_TERMINATED"
	ErrCodeAccessDenied         = "ACCESS_DENIED"
	ErrCodeInsufficientLevel    = "INSUFFICIENT_ACCESS_LEVEL"
	ErrCodeResolverUnavailable  = "RESOLVER_UNAVAILABLE"
)
