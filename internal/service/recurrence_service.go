package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"schedule-planner/internal/model"
)

// TemplateStore is the slice of template persistence the reconciler needs.
type TemplateStore interface {
	ListActive(ctx context.Context) ([]model.RecurrenceTemplate, error)
	UpdateLastGenerated(ctx context.Context, id, date string) error
}

// TaskStore is the slice of task persistence the reconciler needs.
// FindByTemplateAndDate must ignore soft-deleted tasks.
type TaskStore interface {
	FindByTemplateAndDate(ctx context.Context, templateID, date string) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
}

// RecurrenceService materializes at most one pending task instance per active
// template per occurrence. It runs on every data-loading request and on a
// timer, so every step is an idempotent no-op when the instance already
// exists.
type RecurrenceService struct {
	templates TemplateStore
	tasks     TaskStore
}

func NewRecurrenceService(templates TemplateStore, tasks TaskStore) *RecurrenceService {
	return &RecurrenceService{templates: templates, tasks: tasks}
}

// ReconcileAll ensures each active template has its next instance generated.
// Failures are isolated per template: one broken template never blocks the
// rest. The returned error joins all per-template failures and is safe to log
// as a warning.
func (s *RecurrenceService) ReconcileAll(ctx context.Context, today time.Time) error {
	templates, err := s.templates.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active templates: %w", err)
	}

	today = StartOfDay(today)
	var errs []error
	for i := range templates {
		if err := s.reconcileOne(ctx, &templates[i], today); err != nil {
			errs = append(errs, fmt.Errorf("template %s: %w", templates[i].ID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *RecurrenceService) reconcileOne(ctx context.Context, tmpl *model.RecurrenceTemplate, today time.Time) error {
	dueDate, ok := NextOccurrence(*tmpl, today)
	if !ok {
		// Malformed rule or nothing inside the lookahead window: nothing to
		// generate this cycle, and not an error.
		return nil
	}

	existing, err := s.tasks.FindByTemplateAndDate(ctx, tmpl.ID, dueDate)
	if err != nil {
		return fmt.Errorf("check existing instance: %w", err)
	}
	if existing != nil {
		return nil
	}

	// Secondary guard in case the store query misses: never generate twice
	// for the date recorded on the template.
	if tmpl.LastGeneratedDate != nil && *tmpl.LastGeneratedDate == dueDate {
		return nil
	}

	templateID := tmpl.ID
	due := dueDate
	now := time.Now()
	task := &model.Task{
		ID:                   uuid.NewString(),
		Title:                tmpl.Title,
		Memo:                 tmpl.Memo,
		DueDate:              &due,
		Priority:             tmpl.Priority,
		Status:               model.StatusTodo,
		GroupID:              tmpl.GroupID,
		ProjectID:            tmpl.ProjectID,
		BucketIDs:            append([]string(nil), tmpl.BucketIDs...),
		RecurrenceTemplateID: &templateID,
		IsDeleted:            false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	if err := s.templates.UpdateLastGenerated(ctx, tmpl.ID, dueDate); err != nil {
		return fmt.Errorf("update last generated date: %w", err)
	}
	return nil
}
