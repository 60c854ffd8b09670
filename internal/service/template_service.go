package service

import (
	"context"
	"fmt"

	"schedule-planner/internal/model"
	"schedule-planner/internal/repository"
)

// TemplateInput represents data required to create or update a recurrence
// template.
type TemplateInput struct {
	Title             string
	Memo              string
	Priority          model.TaskPriority
	GroupID           *string
	ProjectID         *string
	BucketIDs         []string
	RecurrenceType    model.RecurrenceType
	RecurrenceValue   int
	RecurrenceNthWeek *int
	IsActive          bool
}

// TemplateService manages recurrence template CRUD. Reconciliation itself
// lives in RecurrenceService.
type TemplateService struct {
	templates *repository.TemplateRepository
}

func NewTemplateService(templates *repository.TemplateRepository) *TemplateService {
	return &TemplateService{templates: templates}
}

func (s *TemplateService) CreateTemplate(ctx context.Context, input TemplateInput) (*model.RecurrenceTemplate, error) {
	if err := validateTemplateInput(&input); err != nil {
		return nil, err
	}

	tmpl := model.RecurrenceTemplate{
		Title:             input.Title,
		Memo:              input.Memo,
		Priority:          input.Priority,
		GroupID:           input.GroupID,
		ProjectID:         input.ProjectID,
		BucketIDs:         input.BucketIDs,
		RecurrenceType:    input.RecurrenceType,
		RecurrenceValue:   input.RecurrenceValue,
		RecurrenceNthWeek: input.RecurrenceNthWeek,
		IsActive:          input.IsActive,
	}
	if err := s.templates.Create(ctx, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// UpdateTemplate replaces the editable fields. LastGeneratedDate is owned by
// the reconciler and deliberately untouchable here.
func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, input TemplateInput) (*model.RecurrenceTemplate, error) {
	if err := validateTemplateInput(&input); err != nil {
		return nil, err
	}

	tmpl, err := s.templates.Get(ctx, id)
	if err != nil || tmpl == nil {
		return nil, err
	}

	tmpl.Title = input.Title
	tmpl.Memo = input.Memo
	tmpl.Priority = input.Priority
	tmpl.GroupID = input.GroupID
	tmpl.ProjectID = input.ProjectID
	tmpl.BucketIDs = input.BucketIDs
	tmpl.RecurrenceType = input.RecurrenceType
	tmpl.RecurrenceValue = input.RecurrenceValue
	tmpl.RecurrenceNthWeek = input.RecurrenceNthWeek
	tmpl.IsActive = input.IsActive
	if err := s.templates.Save(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]model.RecurrenceTemplate, error) {
	return s.templates.List(ctx)
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*model.RecurrenceTemplate, error) {
	return s.templates.Get(ctx, id)
}

// DeleteTemplate removes the template. Instances already generated keep
// their back-reference and survive.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	return s.templates.Delete(ctx, id)
}

func validateTemplateInput(input *TemplateInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMed
	}
	switch input.Priority {
	case model.PriorityHigh, model.PriorityMed, model.PriorityLow:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, input.Priority)
	}

	switch input.RecurrenceType {
	case model.RecurrenceWeekly:
		if input.RecurrenceValue < 0 || input.RecurrenceValue > 6 {
			return fmt.Errorf("%w: weekly value must be a weekday 0-6", ErrInvalidInput)
		}
		if input.RecurrenceNthWeek != nil {
			return fmt.Errorf("%w: nth week only applies to monthly_nth", ErrInvalidInput)
		}
	case model.RecurrenceMonthlyDate:
		if input.RecurrenceValue < 1 || input.RecurrenceValue > 31 {
			return fmt.Errorf("%w: monthly_date value must be 1-31", ErrInvalidInput)
		}
		if input.RecurrenceNthWeek != nil {
			return fmt.Errorf("%w: nth week only applies to monthly_nth", ErrInvalidInput)
		}
	case model.RecurrenceMonthlyNth:
		if input.RecurrenceValue < 0 || input.RecurrenceValue > 6 {
			return fmt.Errorf("%w: monthly_nth value must be a weekday 0-6", ErrInvalidInput)
		}
		if input.RecurrenceNthWeek == nil {
			return fmt.Errorf("%w: monthly_nth requires an nth week", ErrInvalidInput)
		}
		if *input.RecurrenceNthWeek < 1 || *input.RecurrenceNthWeek > 5 {
			return fmt.Errorf("%w: nth week must be 1-5", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, input.RecurrenceType)
	}
	return nil
}
