package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/service"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) CreateTask(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	var req struct {
		Title          string   `json:"title" validate:"required,max=500"`
		DueDate        string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
		EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
		AssigneeID     *string  `json:"assignee_id" validate:"omitempty,min=1"`
	}

	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	due, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		return h.transportError(e, err)
	}

	task, err := h.task.CreateTask(e.Request().Context(), s.OrganizationID, &model.NewTask{
		Title:          req.Title,
		DueDate:        due,
		EstimatedHours: req.EstimatedHours,
		AssigneeID:     req.AssigneeID,
	})
	if err != nil {
		l.Error("failed to create task", zap.String("title", req.Title), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, task)
}

// ListTasks lists the tasks of assignee_id, or of the caller when omitted.
func (h *Handler) ListTasks(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	assigneeID := e.QueryParam("assignee_id")
	if assigneeID == "" {
		assigneeID = s.PersonID
	}

	tasks, err := h.task.ListAssigneeTasks(e.Request().Context(), s.OrganizationID, assigneeID)
	if err != nil {
		l.Error("failed to list tasks", zap.String("assignee_id", assigneeID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, tasks)
}

func (h *Handler) CompleteTask(e echo.Context) error {
	return h.changeTask(e, h.task.CompleteTask)
}

func (h *Handler) ReopenTask(e echo.Context) error {
	return h.changeTask(e, h.task.ReopenTask)
}

func (h *Handler) changeTask(e echo.Context, change func(ctx context.Context, orgID, taskID string) (*model.Task, *service.Error)) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	taskID := e.Param("taskID")

	task, err := change(e.Request().Context(), s.OrganizationID, taskID)
	if err != nil {
		l.Error("failed to update task", zap.String("task_id", taskID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, task)
}
