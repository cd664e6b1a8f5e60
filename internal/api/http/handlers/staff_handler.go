package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/repository"
	"github.com/talentdesk/recruitment-service/internal/service"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// StaffHandler exposes staff account administration.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

func staffActor(c *fiber.Ctx) (*domain.Staff, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}
	if authCtx.Principal == nil || authCtx.Principal.Kind != domain.PrincipalKindStaff {
		return nil, apperrors.NewForbidden("staff account required")
	}
	return authCtx.Principal.Staff, nil
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	actor, err := staffActor(c)
	if err != nil {
		return err
	}

	filter := repository.StaffFilter{
		Region: parseStringQuery(c, "region"),
		Active: parseBoolQuery(c, "active"),
	}
	if role := c.Query("role"); role != "" {
		staffRole := domain.StaffRole(role)
		filter.Role = &staffRole
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.staff.ListStaff(c.Context(), actor, filter)
	if err != nil {
		return err
	}
	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, staffResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	actor, err := staffActor(c)
	if err != nil {
		return err
	}
	staff, err := h.staff.GetStaff(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	actor, err := staffActor(c)
	if err != nil {
		return err
	}

	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	staff := &domain.Staff{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Role:       req.Role,
		Region:     req.Region,
		Department: req.Department,
		Position:   req.Position,
	}
	created, err := h.staff.CreateStaff(c.Context(), actor, staff, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(created)})
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	actor, err := staffActor(c)
	if err != nil {
		return err
	}

	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.staff.UpdateStaff(c.Context(), actor, c.Params("id"), service.StaffUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Role:       req.Role,
		Region:     req.Region,
		Department: req.Department,
		Position:   req.Position,
		Active:     req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(updated)})
}
