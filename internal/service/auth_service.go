package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/config"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/events"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// ErrInvalidCredentials covers every credential rejection on the login
// surface: unknown email, wrong password, inactive account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrResetTokenInvalid covers unknown, expired and already-used reset
// tokens.
var ErrResetTokenInvalid = errors.New("reset token invalid or expired")

// AuthService coordinates login, registration and credential flows for
// the three principal kinds.
type AuthService struct {
	staff      repository.StaffRepository
	candidates repository.CandidateRepository
	companies  repository.CompanyRepository
	resets     repository.PasswordResetRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	redis      *redis.Client
	logger     *zap.Logger

	bcryptCost   int
	resetTTL     time.Duration
	maxAttempts  int
	lockoutTTL   time.Duration
	touchTimeout time.Duration
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	StaffRepo         repository.StaffRepository
	CandidateRepo     repository.CandidateRepository
	CompanyRepo       repository.CompanyRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
	Redis             *redis.Client
	Logger            *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		staff:        deps.StaffRepo,
		candidates:   deps.CandidateRepo,
		companies:    deps.CompanyRepo,
		resets:       deps.PasswordResetRepo,
		tokenMgr:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher:   deps.Dispatcher,
		redis:        deps.Redis,
		logger:       deps.Logger,
		bcryptCost:   cfg.Auth.BcryptCost,
		resetTTL:     time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
		maxAttempts:  cfg.Auth.LoginMaxAttempts,
		lockoutTTL:   time.Duration(cfg.Auth.LoginLockoutMinutes) * time.Minute,
		touchTimeout: 3 * time.Second,
	}
}

// LoginStaff authenticates an internal staff account and issues a
// role-bearing token.
func (s *AuthService) LoginStaff(ctx context.Context, email, password string) (*domain.Staff, string, time.Time, error) {
	if err := s.checkThrottle(ctx, email); err != nil {
		return nil, "", time.Time{}, err
	}

	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, s.failLogin(ctx, email, err)
	}
	if !staff.Active {
		return nil, "", time.Time{}, s.failLogin(ctx, email, ErrInvalidCredentials)
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, s.failLogin(ctx, email, ErrInvalidCredentials)
	}

	token, exp, err := s.tokenMgr.IssueStaff(staff)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.clearThrottle(ctx, email)
	s.touchLastLogin(staff.ID, s.staff.TouchLastLogin)
	return staff, token, exp, nil
}

// LoginCandidate authenticates a candidate account.
func (s *AuthService) LoginCandidate(ctx context.Context, email, password string) (*domain.Candidate, string, time.Time, error) {
	if err := s.checkThrottle(ctx, email); err != nil {
		return nil, "", time.Time{}, err
	}

	candidate, err := s.candidates.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, s.failLogin(ctx, email, err)
	}
	if !candidate.Active {
		return nil, "", time.Time{}, s.failLogin(ctx, email, ErrInvalidCredentials)
	}
	if err := auth.ComparePassword(candidate.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, s.failLogin(ctx, email, ErrInvalidCredentials)
	}

	token, exp, err := s.tokenMgr.IssueCandidate(candidate.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.clearThrottle(ctx, email)
	s.touchLastLogin(candidate.ID, s.candidates.TouchLastLogin)
	return candidate, token, exp, nil
}

// LoginCompany authenticates an employer account. Only status "active"
// may log in.
func (s *AuthService) LoginCompany(ctx context.Context, email, password string) (*domain.Company, string, time.Time, error) {
	if err := s.checkThrottle(ctx, email); err != nil {
		return nil, "", time.Time{}, err
	}

	company, err := s.companies.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, s.failLogin(ctx, email, err)
	}
	if company.Status != domain.CompanyStatusActive {
		return nil, "", time.Time{}, s.failLogin(ctx, email, ErrInvalidCredentials)
	}
	if err := auth.ComparePassword(company.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, s.failLogin(ctx, email, ErrInvalidCredentials)
	}

	token, exp, err := s.tokenMgr.IssueCompany(company.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.clearThrottle(ctx, email)
	s.touchLastLogin(company.ID, s.companies.TouchLastLogin)
	return company, token, exp, nil
}

// RegisterCandidate creates a candidate account and issues a token.
func (s *AuthService) RegisterCandidate(ctx context.Context, candidate *domain.Candidate, password string) (string, time.Time, error) {
	if _, err := s.candidates.GetByEmail(ctx, candidate.Email); err == nil {
		return "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, err
	}
	candidate.PasswordHash = hash
	candidate.Active = true

	if err := s.candidates.Create(ctx, candidate); err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.EventCandidateRegistered, candidate.ID,
		events.Actor{Kind: domain.PrincipalKindCandidate, PrincipalID: candidate.ID},
		events.PrincipalRegisteredPayload{Email: candidate.Email, Location: candidate.Location})

	return s.tokenMgr.IssueCandidate(candidate.ID)
}

// RegisterCompany creates an employer account pending review and issues
// a token once the account is active. New companies start as pending
// and cannot authenticate until activated by staff.
func (s *AuthService) RegisterCompany(ctx context.Context, company *domain.Company, password string) error {
	if _, err := s.companies.GetByEmail(ctx, company.Email); err == nil {
		return apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	company.PasswordHash = hash
	if company.Status == "" {
		company.Status = domain.CompanyStatusPending
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return err
	}

	s.publish(ctx, events.EventCompanyRegistered, company.ID,
		events.Actor{Kind: domain.PrincipalKindCompany, PrincipalID: company.ID},
		events.PrincipalRegisteredPayload{Email: company.Email, Location: company.Location})
	return nil
}

// RequestPasswordReset persists a reset token for any principal email.
// Stores are probed staff first, then candidate, then company.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	kind, id, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token := &repository.PasswordResetToken{
		SubjectType: string(kind),
		SubjectID:   id,
		Token:       uuid.NewString(),
		ExpiresAt:   time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPasswordResetRequested, id,
		events.Actor{Kind: kind, PrincipalID: id},
		events.PasswordResetRequestedPayload{Email: email, Token: token.Token, ExpiresAt: token.ExpiresAt})
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the
// password on whichever store owns the subject.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.setPassword(ctx, domain.PrincipalKind(token.SubjectType), token.SubjectID, hash); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// ChangePassword verifies the current password before updating.
func (s *AuthService) ChangePassword(ctx context.Context, kind domain.PrincipalKind, id, currentPassword, newPassword string) error {
	currentHash, err := s.passwordHash(ctx, kind, id)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(currentHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.setPassword(ctx, kind, id, hash)
}

// TokenManager exposes the underlying token manager for middleware use.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (domain.PrincipalKind, string, error) {
	if staff, err := s.staff.GetByEmail(ctx, email); err == nil {
		return domain.PrincipalKindStaff, staff.ID, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", "", err
	}
	if candidate, err := s.candidates.GetByEmail(ctx, email); err == nil {
		return domain.PrincipalKindCandidate, candidate.ID, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", "", err
	}
	company, err := s.companies.GetByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	return domain.PrincipalKindCompany, company.ID, nil
}

func (s *AuthService) passwordHash(ctx context.Context, kind domain.PrincipalKind, id string) (string, error) {
	switch kind {
	case domain.PrincipalKindStaff:
		staff, err := s.staff.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return staff.PasswordHash, nil
	case domain.PrincipalKindCandidate:
		candidate, err := s.candidates.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return candidate.PasswordHash, nil
	case domain.PrincipalKindCompany:
		company, err := s.companies.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return company.PasswordHash, nil
	default:
		return "", errors.New("unknown principal kind")
	}
}

func (s *AuthService) setPassword(ctx context.Context, kind domain.PrincipalKind, id, hash string) error {
	switch kind {
	case domain.PrincipalKindStaff:
		staff, err := s.staff.GetByID(ctx, id)
		if err != nil {
			return err
		}
		staff.PasswordHash = hash
		return s.staff.Update(ctx, staff)
	case domain.PrincipalKindCandidate:
		candidate, err := s.candidates.GetByID(ctx, id)
		if err != nil {
			return err
		}
		candidate.PasswordHash = hash
		return s.candidates.Update(ctx, candidate)
	case domain.PrincipalKindCompany:
		company, err := s.companies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		company.PasswordHash = hash
		return s.companies.Update(ctx, company)
	default:
		return errors.New("unknown principal kind")
	}
}

// touchLastLogin records the login timestamp best-effort, detached from
// the request so a slow write never delays the response.
func (s *AuthService) touchLastLogin(id string, touch func(context.Context, string) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.touchTimeout)
		defer cancel()
		if err := touch(ctx, id); err != nil && s.logger != nil {
			s.logger.Warn("last-login touch failed", zap.String("id", id), zap.Error(err))
		}
	}()
}

func throttleKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// checkThrottle rejects logins for an email that has exceeded the
// attempt budget within the lockout window. With no Redis configured
// throttling is disabled.
func (s *AuthService) checkThrottle(ctx context.Context, email string) error {
	if s.redis == nil || s.maxAttempts <= 0 {
		return nil
	}
	count, err := s.redis.Get(ctx, throttleKey(email)).Int()
	if err != nil && err != redis.Nil {
		return nil
	}
	if count >= s.maxAttempts {
		return apperrors.NewDomainError("TOO_MANY_ATTEMPTS", "too many login attempts", 429, nil)
	}
	return nil
}

// failLogin counts a failed attempt and normalizes credential errors.
// Infrastructure failures (a store lookup error other than no-rows) are
// returned as-is and do not consume attempts.
func (s *AuthService) failLogin(ctx context.Context, email string, err error) error {
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, ErrInvalidCredentials) {
		return err
	}
	if s.redis != nil && s.maxAttempts > 0 {
		key := throttleKey(email)
		if count, incErr := s.redis.Incr(ctx, key).Result(); incErr == nil && count == 1 {
			s.redis.Expire(ctx, key, s.lockoutTTL)
		}
	}
	return ErrInvalidCredentials
}

func (s *AuthService) clearThrottle(ctx context.Context, email string) {
	if s.redis != nil {
		s.redis.Del(ctx, throttleKey(email))
	}
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID string, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
