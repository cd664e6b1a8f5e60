package auth

import "errors"

// Failure taxonomy for the authentication pipeline. The first three are
// surfaced to callers identically (unauthenticated) so that a caller can
// not probe which stage rejected the credential.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrPrincipalInactive  = errors.New("principal inactive")
	ErrRegionAccessDenied = errors.New("region access denied")
)
