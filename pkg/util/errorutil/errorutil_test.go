package errorutil

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	err := NewForbidden("region access denied")

	domainErr := ToDomainError(err)
	require.Equal(t, "FORBIDDEN", domainErr.Code)
	require.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	require.Equal(t, "region access denied", domainErr.Message)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	require.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	require.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	// The internal message never leaks the cause.
	require.Equal(t, "internal server error", domainErr.Message)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	domainErr := ToDomainError(sql.ErrNoRows)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &DomainError{Code: "INTERNAL_ERROR", Message: "internal server error", HTTPStatus: 500, Err: cause}
	require.ErrorIs(t, err, cause)
}

func TestNewNotFoundMessage(t *testing.T) {
	domainErr := ToDomainError(NewNotFound("candidate", nil))
	require.Equal(t, "candidate not found", domainErr.Message)
}
