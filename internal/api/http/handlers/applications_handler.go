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
	"github.com/talentdesk/recruitment-service/internal/service"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// ApplicationsHandler exposes the application pipeline.
type ApplicationsHandler struct {
	applications repository.ApplicationRepository
	pipeline     *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applications repository.ApplicationRepository, pipeline *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applications, pipeline: pipeline}
}

// List handles GET /applications.
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	filter := repository.ApplicationFilter{
		Region:      repository.ScopeRegion(authCtx.Scope),
		JobID:       parseStringQuery(c, "job_id"),
		CandidateID: parseStringQuery(c, "candidate_id"),
	}
	if status := c.Query("status"); status != "" {
		appStatus := domain.ApplicationStatus(status)
		filter.Status = &appStatus
	}
	// Candidates only ever see their own applications.
	if authCtx.Kind == domain.PrincipalKindCandidate {
		filter.CandidateID = &authCtx.PrincipalID
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.applications.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.ApplicationResponse, 0, len(list))
	for i := range list {
		resp = append(resp, applicationResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /applications/:id.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	application, err := h.loadScoped(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

// Submit handles POST /applications. A candidate may only apply as
// themselves; staff may file on a candidate's behalf.
func (h *ApplicationsHandler) Submit(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.ApplicationSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.JobID == "" {
		return fiber.NewError(http.StatusBadRequest, "job_id required")
	}

	candidateID := req.CandidateID
	if authCtx.Kind == domain.PrincipalKindCandidate {
		candidateID = authCtx.PrincipalID
	}
	if candidateID == "" {
		return fiber.NewError(http.StatusBadRequest, "candidate_id required")
	}

	application, err := h.pipeline.Submit(c.Context(), authCtx, req.JobID, candidateID, req.Notes)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": applicationResponse(application)})
}

// ChangeStatus handles PUT /applications/:id/status (staff only via
// route configuration).
func (h *ApplicationsHandler) ChangeStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	if _, err := h.loadScoped(c); err != nil {
		return err
	}

	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	application, err := h.pipeline.ChangeStatus(c.Context(), authCtx, c.Params("id"), req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

// Delete handles DELETE /applications/:id.
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.loadScoped(c); err != nil {
		return err
	}
	if err := h.applications.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func (h *ApplicationsHandler) loadScoped(c *fiber.Ctx) (*domain.Application, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}

	application, err := h.applications.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if authCtx.Kind == domain.PrincipalKindCandidate && application.CandidateID != authCtx.PrincipalID {
		return nil, apperrors.NewNotFound("application", nil)
	}
	if !scopeCovers(authCtx.Scope, application.Location) {
		return nil, apperrors.NewNotFound("application", nil)
	}
	return application, nil
}
