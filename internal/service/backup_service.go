package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"schedule-planner/internal/model"
	"schedule-planner/internal/repository"
)

// ErrInvalidBackup marks a backup payload that failed structural validation.
// Nothing is written to the store when it is returned.
var ErrInvalidBackup = errors.New("invalid backup")

// BackupService handles JSON export and validated wholesale restore.
type BackupService struct {
	backups *repository.BackupRepository
}

func NewBackupService(backups *repository.BackupRepository) *BackupService {
	return &BackupService{backups: backups}
}

// Export snapshots the whole store as the external backup format.
func (s *BackupService) Export(ctx context.Context) (*model.Backup, error) {
	return s.backups.ExportAll(ctx)
}

// Import validates raw JSON fully, then replaces every collection in one
// transaction. Validation failures leave the store untouched.
func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	backup, err := ParseBackup(raw)
	if err != nil {
		return err
	}
	return s.backups.ImportAll(ctx, backup)
}

// ParseBackup checks the structural shape of a backup payload before
// decoding it. Validation is structural, not version-gated: older backups
// without recurrenceTemplates still pass.
func ParseBackup(raw []byte) (*model.Backup, error) {
	var probe map[string]interface{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidBackup)
	}

	if _, ok := probe["schemaVersion"].(float64); !ok {
		return nil, fmt.Errorf("%w: schemaVersion must be a number", ErrInvalidBackup)
	}
	if _, ok := probe["exportedAt"].(string); !ok {
		return nil, fmt.Errorf("%w: exportedAt must be a string", ErrInvalidBackup)
	}
	data, ok := probe["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: data must be an object", ErrInvalidBackup)
	}

	tasks, err := requireArray(data, "tasks")
	if err != nil {
		return nil, err
	}
	if err := checkRecords(tasks, "tasks", "title"); err != nil {
		return nil, err
	}

	for _, field := range []string{"groups", "projects", "buckets"} {
		records, err := requireArray(data, field)
		if err != nil {
			return nil, err
		}
		if err := checkRecords(records, field, "name"); err != nil {
			return nil, err
		}
	}

	// recurrenceTemplates is absent in version 2 backups.
	if rawTemplates, present := data["recurrenceTemplates"]; present && rawTemplates != nil {
		templates, ok := rawTemplates.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: recurrenceTemplates must be an array", ErrInvalidBackup)
		}
		if err := checkRecords(templates, "recurrenceTemplates", "title"); err != nil {
			return nil, err
		}
	}

	var backup model.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return &backup, nil
}

func requireArray(data map[string]interface{}, field string) ([]interface{}, error) {
	arr, ok := data[field].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array", ErrInvalidBackup, field)
	}
	return arr, nil
}

// checkRecords verifies every record is an object with a string id and the
// named string field.
func checkRecords(records []interface{}, collection, nameField string) error {
	for _, r := range records {
		record, ok := r.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: %s entry is not an object", ErrInvalidBackup, collection)
		}
		if _, ok := record["id"].(string); !ok {
			return fmt.Errorf("%w: %s entry missing id", ErrInvalidBackup, collection)
		}
		if _, ok := record[nameField].(string); !ok {
			return fmt.Errorf("%w: %s entry missing %s", ErrInvalidBackup, collection, nameField)
		}
	}
	return nil
}
