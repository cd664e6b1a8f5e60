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

// ProjectsHandler exposes recruitment project CRUD for staff.
type ProjectsHandler struct {
	projects repository.ProjectRepository
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projects repository.ProjectRepository) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// List handles GET /projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	filter := repository.ProjectFilter{
		Region:    repository.ScopeRegion(authCtx.Scope),
		CompanyID: parseStringQuery(c, "company_id"),
	}
	if status := c.Query("status"); status != "" {
		projectStatus := domain.ProjectStatus(status)
		filter.Status = &projectStatus
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.projects.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.ProjectResponse, 0, len(list))
	for i := range list {
		resp = append(resp, projectResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /projects/:id.
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	project, err := h.loadScoped(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectResponse(project)})
}

// Create handles POST /projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Status:      req.Status,
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusOpen
	}
	if project.Location == "" && authCtx.Scope.Restricted() {
		project.Location = authCtx.Scope.Region
	}
	if !scopeCovers(authCtx.Scope, project.Location) {
		return apperrors.NewForbidden("region access denied")
	}
	if err := h.projects.Create(c.Context(), project); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": projectResponse(project)})
}

// Update handles PUT /projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	project, err := h.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.CompanyID != nil {
		project.CompanyID = req.CompanyID
	}
	if req.Location != "" {
		if !scopeCovers(authCtx.Scope, req.Location) {
			return apperrors.NewForbidden("region access denied")
		}
		project.Location = req.Location
	}
	if req.Status != "" {
		project.Status = req.Status
	}
	if err := h.projects.Update(c.Context(), project); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": projectResponse(project)})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.loadScoped(c); err != nil {
		return err
	}
	if err := h.projects.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func (h *ProjectsHandler) loadScoped(c *fiber.Ctx) (*domain.Project, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}

	project, err := h.projects.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("project", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !scopeCovers(authCtx.Scope, project.Location) {
		return nil, apperrors.NewNotFound("project", nil)
	}
	return project, nil
}
