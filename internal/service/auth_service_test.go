package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/config"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/events"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   60,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              bcrypt.MinCost,
			LoginMaxAttempts:        5,
			LoginLockoutMinutes:     15,
		},
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func newTestAuthService(t *testing.T, deps AuthDependencies) *AuthService {
	t.Helper()
	if deps.Dispatcher == nil {
		deps.Dispatcher = &recordingDispatcher{}
	}
	deps.Logger = zap.NewNop()
	return NewAuthService(testConfig(), deps)
}

func TestLoginStaffSuccess(t *testing.T) {
	staffRepo := newFakeStaffRepo(&domain.Staff{
		ID:           "staff-1",
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Role:         domain.StaffRoleAdmin,
		Region:       "Dubai",
		Active:       true,
	})
	svc := newTestAuthService(t, AuthDependencies{StaffRepo: staffRepo})

	staff, token, _, err := svc.LoginStaff(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "staff-1", staff.ID)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, "staff-1", claims.StaffID)
	require.Equal(t, "admin", claims.Role)
}

func TestLoginStaffWrongPassword(t *testing.T) {
	staffRepo := newFakeStaffRepo(&domain.Staff{
		ID:           "staff-1",
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Active:       true,
	})
	svc := newTestAuthService(t, AuthDependencies{StaffRepo: staffRepo})

	_, _, _, err := svc.LoginStaff(context.Background(), "admin@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStaffInactive(t *testing.T) {
	staffRepo := newFakeStaffRepo(&domain.Staff{
		ID:           "staff-1",
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Active:       false,
	})
	svc := newTestAuthService(t, AuthDependencies{StaffRepo: staffRepo})

	_, _, _, err := svc.LoginStaff(context.Background(), "admin@example.com", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStaffUnknownEmailSameError(t *testing.T) {
	svc := newTestAuthService(t, AuthDependencies{StaffRepo: newFakeStaffRepo()})

	// Unknown email and bad password are indistinguishable to the caller.
	_, _, _, err := svc.LoginStaff(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStaffStoreFailurePassesThrough(t *testing.T) {
	staffRepo := newFakeStaffRepo()
	staffRepo.lookupErr = errors.New("connection refused")
	svc := newTestAuthService(t, AuthDependencies{StaffRepo: staffRepo})

	// An unreachable store is not a credential failure and must not be
	// masked as one.
	_, _, _, err := svc.LoginStaff(context.Background(), "admin@example.com", "s3cret")
	require.ErrorIs(t, err, staffRepo.lookupErr)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginCompanyRequiresActiveStatus(t *testing.T) {
	companyRepo := newFakeCompanyRepo(&domain.Company{
		ID:           "comp-1",
		Email:        "acme@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Status:       domain.CompanyStatusPending,
	})
	svc := newTestAuthService(t, AuthDependencies{CompanyRepo: companyRepo})

	_, _, _, err := svc.LoginCompany(context.Background(), "acme@example.com", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginCandidateIssuesPortalToken(t *testing.T) {
	candidateRepo := newFakeCandidateRepo(&domain.Candidate{
		ID:           "cand-1",
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Location:     "London",
		Active:       true,
	})
	svc := newTestAuthService(t, AuthDependencies{CandidateRepo: candidateRepo})

	_, token, _, err := svc.LoginCandidate(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, "cand-1", claims.SubjectID)
	require.Equal(t, "candidate", claims.Role)
	require.Empty(t, claims.StaffID)
}

func TestRegisterCandidate(t *testing.T) {
	candidateRepo := newFakeCandidateRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestAuthService(t, AuthDependencies{CandidateRepo: candidateRepo, Dispatcher: dispatcher})

	candidate := &domain.Candidate{Email: "jane@example.com", Location: "London"}
	token, _, err := svc.RegisterCandidate(context.Background(), candidate, "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, candidate.Active)
	require.NotEmpty(t, candidate.PasswordHash)

	published := dispatcher.published()
	require.Len(t, published, 1)
	require.Equal(t, events.EventCandidateRegistered, published[0].Type)

	// Registered candidates can log in immediately.
	_, _, _, err = svc.LoginCandidate(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)
}

func TestRegisterCandidateDuplicateEmail(t *testing.T) {
	candidateRepo := newFakeCandidateRepo(&domain.Candidate{ID: "cand-1", Email: "jane@example.com"})
	svc := newTestAuthService(t, AuthDependencies{CandidateRepo: candidateRepo})

	_, _, err := svc.RegisterCandidate(context.Background(), &domain.Candidate{Email: "jane@example.com"}, "s3cret")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegisterCompanyStartsPending(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	svc := newTestAuthService(t, AuthDependencies{CompanyRepo: companyRepo})

	company := &domain.Company{Name: "Acme", Email: "acme@example.com"}
	require.NoError(t, svc.RegisterCompany(context.Background(), company, "s3cret"))
	require.Equal(t, domain.CompanyStatusPending, company.Status)

	// Pending companies cannot authenticate yet.
	_, _, _, err := svc.LoginCompany(context.Background(), "acme@example.com", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	candidateRepo := newFakeCandidateRepo(&domain.Candidate{
		ID:           "cand-1",
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "old-pass"),
		Active:       true,
	})
	dispatcher := &recordingDispatcher{}
	svc := newTestAuthService(t, AuthDependencies{
		StaffRepo:         newFakeStaffRepo(),
		CandidateRepo:     candidateRepo,
		CompanyRepo:       newFakeCompanyRepo(),
		PasswordResetRepo: newFakeResetRepo(),
		Dispatcher:        dispatcher,
	})

	token, err := svc.RequestPasswordReset(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, string(domain.PrincipalKindCandidate), token.SubjectType)
	require.Equal(t, "cand-1", token.SubjectID)

	// The token travels to the owner through the notification path.
	published := dispatcher.published()
	require.Len(t, published, 1)
	require.Equal(t, events.EventPasswordResetRequested, published[0].Type)
	payload, ok := published[0].Payload.(events.PasswordResetRequestedPayload)
	require.True(t, ok)
	require.Equal(t, token.Token, payload.Token)
	require.Equal(t, "jane@example.com", payload.Email)

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), token.Token, "new-pass"))

	_, _, _, err = svc.LoginCandidate(context.Background(), "jane@example.com", "new-pass")
	require.NoError(t, err)

	// A token is single use, and unknown tokens share the same error.
	require.ErrorIs(t, svc.ConfirmPasswordReset(context.Background(), token.Token, "another"), ErrResetTokenInvalid)
	require.ErrorIs(t, svc.ConfirmPasswordReset(context.Background(), "no-such-token", "another"), ErrResetTokenInvalid)
}

func TestChangePassword(t *testing.T) {
	staffRepo := newFakeStaffRepo(&domain.Staff{
		ID:           "staff-1",
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "old-pass"),
		Active:       true,
	})
	svc := newTestAuthService(t, AuthDependencies{StaffRepo: staffRepo})

	err := svc.ChangePassword(context.Background(), domain.PrincipalKindStaff, "staff-1", "wrong", "new-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(context.Background(), domain.PrincipalKindStaff, "staff-1", "old-pass", "new-pass"))

	_, _, _, err = svc.LoginStaff(context.Background(), "admin@example.com", "new-pass")
	require.NoError(t, err)
}
