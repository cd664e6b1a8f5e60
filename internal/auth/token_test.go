package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

func TestIssueStaffRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	staff := &domain.Staff{ID: "staff-1", Role: domain.StaffRoleAdmin, Region: "Dubai"}
	token, exp, err := tm.IssueStaff(staff)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "staff-1", claims.StaffID)
	require.Empty(t, claims.SubjectID)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "Dubai", claims.Region)
}

func TestIssueCandidateRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, _, err := tm.IssueCandidate("cand-1")
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "cand-1", claims.SubjectID)
	require.Empty(t, claims.StaffID)
	require.Equal(t, "candidate", claims.Role)
}

func TestIssueCompanyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, _, err := tm.IssueCompany("comp-1")
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "comp-1", claims.SubjectID)
	require.Equal(t, "employer", claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		StaffID: "staff-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	tokenStr, err := expired.SignedString(tm.secret)
	require.NoError(t, err)

	_, err = tm.Verify(tokenStr)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.IssueCandidate("cand-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(tokenStr)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRejectsNonHS256(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	other := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		StaffID: "staff-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := other.SignedString(tm.secret)
	require.NoError(t, err)

	_, err = tm.Verify(tokenStr)
	require.ErrorIs(t, err, ErrInvalidToken)
}
