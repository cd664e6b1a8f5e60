package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/service"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// AuthHandler exposes login, registration and credential endpoints for
// all three principal kinds.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// LoginStaff handles POST /auth/staff/login.
func (h *AuthHandler) LoginStaff(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	staff, token, exp, err := h.auth.LoginStaff(c.Context(), req.Email, req.Password)
	if err != nil {
		return loginError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"staff": staffResponse(staff),
			"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// LoginCandidate handles POST /auth/candidates/login.
func (h *AuthHandler) LoginCandidate(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	candidate, token, exp, err := h.auth.LoginCandidate(c.Context(), req.Email, req.Password)
	if err != nil {
		return loginError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"candidate": candidateResponse(candidate),
			"auth":      dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// LoginCompany handles POST /auth/companies/login.
func (h *AuthHandler) LoginCompany(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	company, token, exp, err := h.auth.LoginCompany(c.Context(), req.Email, req.Password)
	if err != nil {
		return loginError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"company": companyResponse(company),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// RegisterCandidate handles POST /auth/candidates/register.
func (h *AuthHandler) RegisterCandidate(c *fiber.Ctx) error {
	var req dto.CandidateRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return fiber.NewError(http.StatusBadRequest, "first_name, last_name, email, password required")
	}

	candidate := &domain.Candidate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Skills:      req.Skills,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	}
	token, exp, err := h.auth.RegisterCandidate(c.Context(), candidate, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"candidate": candidateResponse(candidate),
			"auth":      dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// RegisterCompany handles POST /auth/companies/register. New companies
// start pending; no token is issued until staff activates the account.
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var req dto.CompanyRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	company := &domain.Company{
		Name:     req.Name,
		Email:    req.Email,
		Industry: req.Industry,
		Location: req.Location,
		Website:  req.Website,
	}
	if err := h.auth.RegisterCompany(c.Context(), company, req.Password); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"company": companyResponse(company)},
	})
}

// RequestPasswordReset handles POST /auth/password/reset/request.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	// Unknown emails get the same accepted response so the endpoint
	// does not confirm which accounts exist. The token travels through
	// the notification path, never the response body.
	if _, err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": fiber.Map{"status": "accepted"},
	})
}

// ConfirmPasswordReset handles POST /auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Token == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "token and new password required")
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrResetTokenInvalid) {
			return fiber.NewError(http.StatusBadRequest, "invalid or expired token")
		}
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password_reset"}})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthenticated")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "current and new password required")
	}

	if err := h.auth.ChangePassword(c.Context(), authCtx.Kind, authCtx.PrincipalID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusBadRequest, "current password incorrect")
		}
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password_changed"}})
}

func parseLogin(c *fiber.Ctx) (*dto.LoginRequest, error) {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return nil, fiber.NewError(http.StatusBadRequest, "email and password required")
	}
	return &req, nil
}

// loginError keeps all credential failures on one surface. Throttle
// rejections carry their own status and pass through unchanged;
// anything else is an infrastructure failure and keeps its 500 path.
func loginError(err error) error {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	}
	return err
}
