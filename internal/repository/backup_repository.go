package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"schedule-planner/internal/model"
)

// BackupRepository exports and restores the whole store.
type BackupRepository struct {
	db *gorm.DB
}

func NewBackupRepository(db *gorm.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// ExportAll snapshots every collection, including soft-deleted tasks.
func (r *BackupRepository) ExportAll(ctx context.Context) (*model.Backup, error) {
	db := r.db.WithContext(ctx)
	backup := &model.Backup{
		SchemaVersion: model.BackupSchemaVersion,
		ExportedAt:    time.Now().Format(time.RFC3339),
	}

	if err := db.Find(&backup.Data.Tasks).Error; err != nil {
		return nil, fmt.Errorf("export tasks: %w", err)
	}
	if err := db.Find(&backup.Data.Groups).Error; err != nil {
		return nil, fmt.Errorf("export groups: %w", err)
	}
	if err := db.Find(&backup.Data.Projects).Error; err != nil {
		return nil, fmt.Errorf("export projects: %w", err)
	}
	if err := db.Find(&backup.Data.Buckets).Error; err != nil {
		return nil, fmt.Errorf("export buckets: %w", err)
	}
	if err := db.Find(&backup.Data.RecurrenceTemplates).Error; err != nil {
		return nil, fmt.Errorf("export templates: %w", err)
	}
	return backup, nil
}

// ImportAll replaces every collection with the backup contents inside one
// transaction. Callers must validate the backup first; a failure mid-import
// rolls the store back untouched.
func (r *BackupRepository) ImportAll(ctx context.Context, backup *model.Backup) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Task{}, &model.Group{}, &model.Project{}, &model.Bucket{}, &model.RecurrenceTemplate{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("clear collection: %w", err)
			}
		}

		if len(backup.Data.Tasks) > 0 {
			if err := tx.CreateInBatches(backup.Data.Tasks, 200).Error; err != nil {
				return fmt.Errorf("restore tasks: %w", err)
			}
		}
		if len(backup.Data.Groups) > 0 {
			if err := tx.CreateInBatches(backup.Data.Groups, 200).Error; err != nil {
				return fmt.Errorf("restore groups: %w", err)
			}
		}
		if len(backup.Data.Projects) > 0 {
			if err := tx.CreateInBatches(backup.Data.Projects, 200).Error; err != nil {
				return fmt.Errorf("restore projects: %w", err)
			}
		}
		if len(backup.Data.Buckets) > 0 {
			if err := tx.CreateInBatches(backup.Data.Buckets, 200).Error; err != nil {
				return fmt.Errorf("restore buckets: %w", err)
			}
		}
		if len(backup.Data.RecurrenceTemplates) > 0 {
			if err := tx.CreateInBatches(backup.Data.RecurrenceTemplates, 200).Error; err != nil {
				return fmt.Errorf("restore templates: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import backup: %w", err)
	}
	return nil
}
