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

// CompaniesHandler exposes CRUD over employer accounts.
type CompaniesHandler struct {
	companies repository.CompanyRepository
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companies repository.CompanyRepository) *CompaniesHandler {
	return &CompaniesHandler{companies: companies}
}

// List handles GET /companies.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	filter := repository.CompanyFilter{
		Region:   repository.ScopeRegion(authCtx.Scope),
		Search:   parseStringQuery(c, "search"),
		Industry: parseStringQuery(c, "industry"),
	}
	if status := c.Query("status"); status != "" {
		companyStatus := domain.CompanyStatus(status)
		filter.Status = &companyStatus
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.companies.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.CompanyResponse, 0, len(list))
	for i := range list {
		resp = append(resp, companyResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /companies/:id.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	company, err := h.loadScoped(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": companyResponse(company)})
}

// Update handles PUT /companies/:id.
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	company, err := h.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.CompanyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Status != nil {
		company.Status = *req.Status
	}

	if err := h.companies.Update(c.Context(), company); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": companyResponse(company)})
}

// Delete handles DELETE /companies/:id.
func (h *CompaniesHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.loadScoped(c); err != nil {
		return err
	}
	if err := h.companies.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func (h *CompaniesHandler) loadScoped(c *fiber.Ctx) (*domain.Company, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}

	company, err := h.companies.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !scopeCovers(authCtx.Scope, company.Location) {
		return nil, apperrors.NewNotFound("company", nil)
	}
	return company, nil
}
