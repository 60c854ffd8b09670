package service

import (
	"context"
	"errors"
	"fmt"

	"schedule-planner/internal/model"
	"schedule-planner/internal/repository"
)

// ErrInvalidInput marks user-supplied data the services refuse to persist.
// Handlers map it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// TaskInput represents data required to create or update a task.
type TaskInput struct {
	Title     string
	Memo      string
	DueDate   *string
	Priority  model.TaskPriority
	Status    model.TaskStatus
	GroupID   *string
	ProjectID *string
	BucketIDs []string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if err := validateTaskInput(&input); err != nil {
		return nil, err
	}

	task := model.Task{
		Title:     input.Title,
		Memo:      input.Memo,
		DueDate:   input.DueDate,
		Priority:  input.Priority,
		Status:    input.Status,
		GroupID:   input.GroupID,
		ProjectID: input.ProjectID,
		BucketIDs: input.BucketIDs,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces the editable fields of an existing task. The recurrence
// back-reference and deletion flag are not editable through this path.
func (s *TaskService) UpdateTask(ctx context.Context, id string, input TaskInput) (*model.Task, error) {
	if err := validateTaskInput(&input); err != nil {
		return nil, err
	}

	task, err := s.tasks.Get(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}

	task.Title = input.Title
	task.Memo = input.Memo
	task.DueDate = input.DueDate
	task.Priority = input.Priority
	task.Status = input.Status
	task.GroupID = input.GroupID
	task.ProjectID = input.ProjectID
	task.BucketIDs = input.BucketIDs
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.Get(ctx, id)
}

// ToggleDone flips a task between done and todo.
func (s *TaskService) ToggleDone(ctx context.Context, id string) (*model.Task, error) {
	return s.toggle(ctx, id, func(status model.TaskStatus) model.TaskStatus {
		if status == model.StatusDone {
			return model.StatusTodo
		}
		return model.StatusDone
	})
}

// ToggleStatus flips a task between todo and in_progress.
func (s *TaskService) ToggleStatus(ctx context.Context, id string) (*model.Task, error) {
	return s.toggle(ctx, id, func(status model.TaskStatus) model.TaskStatus {
		if status == model.StatusTodo {
			return model.StatusInProgress
		}
		return model.StatusTodo
	})
}

func (s *TaskService) toggle(ctx context.Context, id string, next func(model.TaskStatus) model.TaskStatus) (*model.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}
	task.Status = next(task.Status)
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask soft-deletes a task; the row survives for backups and history.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.SoftDelete(ctx, id)
}

func validateTaskInput(input *TaskInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.DueDate != nil && *input.DueDate != "" {
		if _, err := ParseDate(*input.DueDate); err != nil {
			return fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMed
	}
	switch input.Priority {
	case model.PriorityHigh, model.PriorityMed, model.PriorityLow:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, input.Priority)
	}
	if input.Status == "" {
		input.Status = model.StatusTodo
	}
	switch input.Status {
	case model.StatusTodo, model.StatusInProgress, model.StatusDone:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}
	return nil
}
