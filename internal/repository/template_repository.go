package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schedule-planner/internal/model"
)

// TemplateRepository manages recurrence templates.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, tmpl *model.RecurrenceTemplate) error {
	if tmpl.ID == "" {
		tmpl.ID = uuid.NewString()
	}
	if tmpl.CreatedAt.IsZero() {
		tmpl.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(tmpl).Error; err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) Save(ctx context.Context, tmpl *model.RecurrenceTemplate) error {
	if err := r.db.WithContext(ctx).Save(tmpl).Error; err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]model.RecurrenceTemplate, error) {
	var templates []model.RecurrenceTemplate
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// ListActive returns only templates the reconciler should process.
func (r *TemplateRepository) ListActive(ctx context.Context) ([]model.RecurrenceTemplate, error) {
	var templates []model.RecurrenceTemplate
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("list active templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) Get(ctx context.Context, id string) (*model.RecurrenceTemplate, error) {
	var tmpl model.RecurrenceTemplate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tmpl).Error
	switch {
	case err == nil:
		return &tmpl, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find template: %w", err)
	}
}

// Delete removes a template. Generated tasks keep their back-reference and
// survive; there is no cascade.
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecurrenceTemplate{})
	if result.Error != nil {
		return fmt.Errorf("delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateLastGenerated records the due date of the instance just materialized.
func (r *TemplateRepository) UpdateLastGenerated(ctx context.Context, id, date string) error {
	if err := r.db.WithContext(ctx).Model(&model.RecurrenceTemplate{}).Where("id = ?", id).
		Update("last_generated_date", date).Error; err != nil {
		return fmt.Errorf("update last generated date: %w", err)
	}
	return nil
}
