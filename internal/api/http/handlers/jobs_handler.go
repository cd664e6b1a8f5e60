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

// JobsHandler exposes CRUD and search over job postings.
type JobsHandler struct {
	jobs repository.JobRepository
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs repository.JobRepository) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List handles GET /jobs, including the search query param.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	filter := repository.JobFilter{
		Region:    repository.ScopeRegion(authCtx.Scope),
		Search:    parseStringQuery(c, "search"),
		CompanyID: parseStringQuery(c, "company_id"),
	}
	if status := c.Query("status"); status != "" {
		jobStatus := domain.JobStatus(status)
		filter.Status = &jobStatus
	}
	if jobType := c.Query("type"); jobType != "" {
		jt := domain.JobType(jobType)
		filter.Type = &jt
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.jobs.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.JobResponse, 0, len(list))
	for i := range list {
		resp = append(resp, jobResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.loadScoped(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobResponse(job)})
}

// Create handles POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.CompanyID == "" || req.Location == "" || req.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "title, company_id, location, description required")
	}
	if !scopeCovers(authCtx.Scope, req.Location) {
		return apperrors.NewForbidden("region access denied")
	}

	job := &domain.Job{
		Title:        req.Title,
		CompanyID:    req.CompanyID,
		CompanyName:  req.CompanyName,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Status:       req.Status,
		Remote:       req.Remote,
	}
	if job.Type == "" {
		job.Type = domain.JobTypeFullTime
	}
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}

	if err := h.jobs.Create(c.Context(), job); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": jobResponse(job)})
}

// Update handles PUT /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	job, err := h.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title != "" {
		job.Title = req.Title
	}
	if req.CompanyName != "" {
		job.CompanyName = req.CompanyName
	}
	if req.Location != "" {
		if !scopeCovers(authCtx.Scope, req.Location) {
			return apperrors.NewForbidden("region access denied")
		}
		job.Location = req.Location
	}
	if req.Type != "" {
		job.Type = req.Type
	}
	if req.Salary != "" {
		job.Salary = req.Salary
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Requirements != "" {
		job.Requirements = req.Requirements
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.Status != "" {
		job.Status = req.Status
	}
	job.Remote = req.Remote

	if err := h.jobs.Update(c.Context(), job); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": jobResponse(job)})
}

// Delete handles DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.loadScoped(c); err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func (h *JobsHandler) loadScoped(c *fiber.Ctx) (*domain.Job, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}

	job, err := h.jobs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !scopeCovers(authCtx.Scope, job.Location) {
		return nil, apperrors.NewNotFound("job", nil)
	}
	return job, nil
}
