package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// CandidatesHandler exposes CRUD over candidates. Every query is
// narrowed by the caller's scope.
type CandidatesHandler struct {
	candidates repository.CandidateRepository
}

// NewCandidatesHandler constructs handler.
func NewCandidatesHandler(candidates repository.CandidateRepository) *CandidatesHandler {
	return &CandidatesHandler{candidates: candidates}
}

// List handles GET /candidates.
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	filter := repository.CandidateFilter{
		Region: repository.ScopeRegion(authCtx.Scope),
		Search: parseStringQuery(c, "search"),
		Active: parseBoolQuery(c, "active"),
		Skill:  parseStringQuery(c, "skill"),
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.candidates.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.CandidateResponse, 0, len(list))
	for i := range list {
		resp = append(resp, candidateResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /candidates/:id.
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	candidate, err := h.loadScoped(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": candidateResponse(candidate)})
}

// Create handles POST /candidates (staff-created profile, no portal
// credentials attached).
func (h *CandidatesHandler) Create(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.CandidateRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "first_name, last_name, email required")
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
		Active:      true,
	}
	if candidate.Location == "" && authCtx.Scope.Restricted() {
		candidate.Location = authCtx.Scope.Region
	}
	if !scopeCovers(authCtx.Scope, candidate.Location) {
		return apperrors.NewForbidden("region access denied")
	}
	if err := h.candidates.Create(c.Context(), candidate); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": candidateResponse(candidate)})
}

// Update handles PUT /candidates/:id.
func (h *CandidatesHandler) Update(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	candidate, err := h.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.CandidateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FirstName != nil {
		candidate.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		candidate.LastName = *req.LastName
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.Location != nil {
		if !scopeCovers(authCtx.Scope, *req.Location) {
			return apperrors.NewForbidden("region access denied")
		}
		candidate.Location = *req.Location
	}
	if req.Skills != nil {
		candidate.Skills = req.Skills
	}
	if req.ResumeURL != nil {
		candidate.ResumeURL = *req.ResumeURL
	}
	if req.CoverLetter != nil {
		candidate.CoverLetter = *req.CoverLetter
	}
	if req.Active != nil {
		candidate.Active = *req.Active
	}

	if err := h.candidates.Update(c.Context(), candidate); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": candidateResponse(candidate)})
}

// Delete handles DELETE /candidates/:id.
func (h *CandidatesHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.loadScoped(c); err != nil {
		return err
	}
	if err := h.candidates.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// loadScoped fetches the candidate and verifies the caller's scope
// covers its location. Out-of-region records surface as not found so
// their existence is not confirmed across regions.
func (h *CandidatesHandler) loadScoped(c *fiber.Ctx) (*domain.Candidate, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}

	candidate, err := h.candidates.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("candidate", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !scopeCovers(authCtx.Scope, candidate.Location) {
		return nil, apperrors.NewNotFound("candidate", nil)
	}
	return candidate, nil
}
