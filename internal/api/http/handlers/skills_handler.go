package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// SkillsHandler exposes the shared skill catalog. Skills carry no
// location, so listing is not region filtered.
type SkillsHandler struct {
	skills repository.SkillRepository
}

// NewSkillsHandler constructs handler.
func NewSkillsHandler(skills repository.SkillRepository) *SkillsHandler {
	return &SkillsHandler{skills: skills}
}

// List handles GET /skills.
func (h *SkillsHandler) List(c *fiber.Ctx) error {
	filter := repository.SkillFilter{
		Search:   parseStringQuery(c, "search"),
		Category: parseStringQuery(c, "category"),
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.skills.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.SkillResponse, 0, len(list))
	for i := range list {
		resp = append(resp, skillResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /skills/:id.
func (h *SkillsHandler) Get(c *fiber.Ctx) error {
	skill, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skillResponse(skill)})
}

// Create handles POST /skills.
func (h *SkillsHandler) Create(c *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	skill := &domain.Skill{Name: req.Name, Category: req.Category}
	if err := h.skills.Create(c.Context(), skill); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": skillResponse(skill)})
}

// Update handles PUT /skills/:id.
func (h *SkillsHandler) Update(c *fiber.Ctx) error {
	skill, err := h.load(c)
	if err != nil {
		return err
	}

	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != "" {
		skill.Name = req.Name
	}
	if req.Category != "" {
		skill.Category = req.Category
	}
	if err := h.skills.Update(c.Context(), skill); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": skillResponse(skill)})
}

// Delete handles DELETE /skills/:id.
func (h *SkillsHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.load(c); err != nil {
		return err
	}
	if err := h.skills.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func (h *SkillsHandler) load(c *fiber.Ctx) (*domain.Skill, error) {
	skill, err := h.skills.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("skill", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return skill, nil
}
