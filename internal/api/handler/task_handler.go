package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	taskService     ports.TaskService
	activityService ports.ActivityService
}

func NewTaskHandler(taskService ports.TaskService, activityService ports.ActivityService) *TaskHandler {
	return &TaskHandler{taskService: taskService, activityService: activityService}
}

// Create handles POST /tasks. The recipient is resolved by email and becomes
// the task owner; the authenticated actor becomes the assigner.
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), ports.CreateTaskInput{
		Actor:          actor,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		Status:         req.Status,
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /tasks.
//
// @Summary      List all tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tasksResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTasksResponse(tasks))
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.taskService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateStatus handles PATCH /tasks/:id/status. Only the task owner or an
// admin may change the status.
//
// @Summary      Update a task's status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Task id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTags handles PATCH /tasks/:id/tags. Same authorization rule as
// UpdateStatus.
//
// @Summary      Update a task's tag
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTagsRequest  true  "New tag"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/tags [patch]
func (h *TaskHandler) UpdateTags(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateTagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTags(c.Request().Context(), actor, c.Param("id"), req.Tags)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// FilterByTag handles GET /tasks/by-tag/:tag. Matching is exact and
// case-sensitive; a tag matching nothing yields an empty list.
//
// @Summary      List tasks by tag
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        tag  path      string  true  "Tag to match"
// @Success      200  {object}  tasksResponse
// @Router       /tasks/by-tag/{tag} [get]
func (h *TaskHandler) FilterByTag(c echo.Context) error {
	tasks, err := h.taskService.FilterByTag(c.Request().Context(), c.Param("tag"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTasksResponse(tasks))
}

// Activity handles GET /tasks/:id/activity — the chronological audit trail.
//
// @Summary      Get a task's activity trail
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  activityResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/activity [get]
func (h *TaskHandler) Activity(c echo.Context) error {
	taskID := c.Param("id")

	// Resolve the task first so unknown ids surface as 404 instead of an
	// empty trail.
	if _, err := h.taskService.Get(c.Request().Context(), taskID); err != nil {
		return err
	}

	entries, err := h.activityService.ListByTask(c.Request().Context(), taskID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityResponse(entries))
}
