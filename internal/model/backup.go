package model

// BackupSchemaVersion is written to every export. Imports are not version-gated;
// validation is structural so older backups still restore.
const BackupSchemaVersion = 3

// Backup is the external JSON shape for export/import.
type Backup struct {
	SchemaVersion int        `json:"schemaVersion"`
	ExportedAt    string     `json:"exportedAt"`
	Data          BackupData `json:"data"`
}

// BackupData carries every collection wholesale. RecurrenceTemplates is
// optional: version 2 backups predate recurring tasks.
type BackupData struct {
	Tasks               []Task               `json:"tasks"`
	Groups              []Group              `json:"groups"`
	Projects            []Project            `json:"projects"`
	Buckets             []Bucket             `json:"buckets"`
	RecurrenceTemplates []RecurrenceTemplate `json:"recurrenceTemplates,omitempty"`
}
