package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/events"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// CalendarTasksHandler exposes calendar task CRUD for staff.
type CalendarTasksHandler struct {
	tasks      repository.CalendarTaskRepository
	dispatcher events.Dispatcher
}

// NewCalendarTasksHandler constructs handler.
func NewCalendarTasksHandler(tasks repository.CalendarTaskRepository, dispatcher events.Dispatcher) *CalendarTasksHandler {
	return &CalendarTasksHandler{tasks: tasks, dispatcher: dispatcher}
}

// List handles GET /calendar-tasks.
func (h *CalendarTasksHandler) List(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	filter := repository.CalendarTaskFilter{
		Region:     repository.ScopeRegion(authCtx.Scope),
		AssigneeID: parseStringQuery(c, "assignee_id"),
	}
	if status := c.Query("status"); status != "" {
		taskStatus := domain.TaskStatus(status)
		filter.Status = &taskStatus
	}
	if before := c.Query("due_before"); before != "" {
		if t, err := time.Parse(time.RFC3339, before); err == nil {
			filter.DueBefore = &t
		}
	}
	if after := c.Query("due_after"); after != "" {
		if t, err := time.Parse(time.RFC3339, after); err == nil {
			filter.DueAfter = &t
		}
	}
	filter.Limit, filter.Offset = parsePagination(c)

	list, err := h.tasks.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	resp := make([]dto.CalendarTaskResponse, 0, len(list))
	for i := range list {
		resp = append(resp, taskResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /calendar-tasks/:id.
func (h *CalendarTasksHandler) Get(c *fiber.Ctx) error {
	task, err := h.loadScoped(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": taskResponse(task)})
}

// Create handles POST /calendar-tasks.
func (h *CalendarTasksHandler) Create(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.CalendarTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "title required")
	}

	task := &domain.CalendarTask{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Location:    req.Location,
		Status:      req.Status,
		DueAt:       req.DueAt,
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	// Region-bound staff create tasks in their own region.
	if task.Location == "" && authCtx.Scope.Restricted() {
		task.Location = authCtx.Scope.Region
	}
	if !scopeCovers(authCtx.Scope, task.Location) {
		return apperrors.NewForbidden("region access denied")
	}
	if err := h.tasks.Create(c.Context(), task); err != nil {
		return apperrors.MapError(err)
	}
	h.publishAssigned(c, authCtx, task)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": taskResponse(task)})
}

// Update handles PUT /calendar-tasks/:id.
func (h *CalendarTasksHandler) Update(c *fiber.Ctx) error {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	task, err := h.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.CalendarTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	previousAssignee := task.AssigneeID
	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.Location != "" {
		if !scopeCovers(authCtx.Scope, req.Location) {
			return apperrors.NewForbidden("region access denied")
		}
		task.Location = req.Location
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if !req.DueAt.IsZero() {
		task.DueAt = req.DueAt
	}
	if err := h.tasks.Update(c.Context(), task); err != nil {
		return apperrors.MapError(err)
	}
	if assigneeChanged(previousAssignee, task.AssigneeID) {
		h.publishAssigned(c, authCtx, task)
	}
	return c.JSON(fiber.Map{"data": taskResponse(task)})
}

// Delete handles DELETE /calendar-tasks/:id.
func (h *CalendarTasksHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.loadScoped(c); err != nil {
		return err
	}
	if err := h.tasks.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func (h *CalendarTasksHandler) loadScoped(c *fiber.Ctx) (*domain.CalendarTask, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthenticated")
	}

	task, err := h.tasks.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("task", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !scopeCovers(authCtx.Scope, task.Location) {
		return nil, apperrors.NewNotFound("task", nil)
	}
	return task, nil
}

func (h *CalendarTasksHandler) publishAssigned(c *fiber.Ctx, authCtx *auth.AuthContext, task *domain.CalendarTask) {
	if h.dispatcher == nil || task.AssigneeID == nil || *task.AssigneeID == "" {
		return
	}
	_ = h.dispatcher.Publish(c.Context(), events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTaskAssigned,
		SubjectID: task.ID,
		Actor:     events.Actor{Kind: authCtx.Kind, PrincipalID: authCtx.PrincipalID},
		Timestamp: time.Now(),
		Payload:   events.TaskAssignedPayload{AssigneeID: *task.AssigneeID, Title: task.Title, DueAt: task.DueAt},
	})
}

func assigneeChanged(before, after *string) bool {
	switch {
	case before == nil && after == nil:
		return false
	case before == nil || after == nil:
		return true
	default:
		return *before != *after
	}
}
