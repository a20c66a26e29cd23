package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
	"github.com/yakoovad/workload-planner/internal/workload"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

type TaskService struct {
	tasks   repository.TaskRepository
	persons repository.PersonRepository

	newID func() string
}

func NewTaskService() *TaskService {
	return &TaskService{newID: uuid.NewString}
}

func (t *TaskService) CreateTask(ctx context.Context, orgID string, in *model.NewTask) (*model.Task, *Error) {
	l := logger.FromContext(ctx)

	if in.EstimatedHours != nil && *in.EstimatedHours < 0 {
		return nil, NewError(ErrorCodeInvalidBody, "estimated_hours must be >= 0")
	}

	if in.AssigneeID != nil {
		if serr := t.checkPerson(ctx, orgID, *in.AssigneeID); serr != nil {
			return nil, serr
		}
	}

	task := &repository.Task{
		ID:             t.newID(),
		OrganizationID: orgID,
		Title:          in.Title,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		AssigneeID:     in.AssigneeID,
	}
	if task.DueDate != nil {
		due := workload.Date(*task.DueDate)
		task.DueDate = &due
	}

	if err := t.tasks.Create(ctx, task); err != nil {
		l.Error("failed to create task", zap.String("title", in.Title), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create task")
	}

	l.Debug("task created", zap.String("task_id", task.ID))
	return toModelTask(task), nil
}

func (t *TaskService) CompleteTask(ctx context.Context, orgID, taskID string) (*model.Task, *Error) {
	return t.setCompleted(ctx, orgID, taskID, true)
}

func (t *TaskService) ReopenTask(ctx context.Context, orgID, taskID string) (*model.Task, *Error) {
	return t.setCompleted(ctx, orgID, taskID, false)
}

func (t *TaskService) setCompleted(ctx context.Context, orgID, taskID string, completed bool) (*model.Task, *Error) {
	l := logger.FromContext(ctx)

	task, err := t.tasks.Get(ctx, taskID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && task.OrganizationID != orgID) {
		l.Warn("task not found", zap.String("task_id", taskID))
		return nil, NewError(ErrorCodeNotFound, "task not found")
	}
	if err != nil {
		l.Error("failed to get task", zap.String("task_id", taskID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get task")
	}

	if completed && task.Completed {
		return nil, NewError(ErrorCodeTaskCompleted, "task already completed")
	}
	if !completed && !task.Completed {
		return toModelTask(task), nil
	}

	updated, err := t.tasks.Patch(ctx, &repository.TaskPatch{ID: taskID, Completed: &completed})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "task not found")
	}
	if err != nil {
		l.Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update task")
	}

	return toModelTask(updated), nil
}

func (t *TaskService) ListAssigneeTasks(ctx context.Context, orgID, assigneeID string) ([]*model.Task, *Error) {
	l := logger.FromContext(ctx)

	if serr := t.checkPerson(ctx, orgID, assigneeID); serr != nil {
		return nil, serr
	}

	repoTasks, err := t.tasks.ListByAssignee(ctx, assigneeID)
	if err != nil {
		l.Error("failed to list tasks", zap.String("assignee_id", assigneeID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}

	tasks := make([]*model.Task, 0, len(repoTasks))
	for _, task := range repoTasks {
		tasks = append(tasks, toModelTask(task))
	}
	return tasks, nil
}

func (t *TaskService) checkPerson(ctx context.Context, orgID, personID string) *Error {
	person, err := t.persons.Get(ctx, personID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && person.OrganizationID != orgID) {
		return NewError(ErrorCodeNotFound, "assignee not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get assignee", zap.String("person_id", personID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to get assignee")
	}
	return nil
}

func (t *TaskService) WithTaskRepo(r repository.TaskRepository) *TaskService {
	t.tasks = r
	return t
}

func (t *TaskService) WithPersonRepo(r repository.PersonRepository) *TaskService {
	t.persons = r
	return t
}

func (t *TaskService) WithIDGenerator(newID func() string) *TaskService {
	t.newID = newID
	return t
}
