package model

import "time"

// TaskPriority is the user-facing priority level.
type TaskPriority string

const (
	PriorityHigh TaskPriority = "high"
	PriorityMed  TaskPriority = "med"
	PriorityLow  TaskPriority = "low"
)

// TaskStatus tracks where a task sits in its lifecycle.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Task is a single schedule item. DueDate is a local calendar date (YYYY-MM-DD);
// tasks are soft-deleted so backups keep the full history.
type Task struct {
	ID                   string       `gorm:"primaryKey" json:"id"`
	Title                string       `json:"title"`
	Memo                 string       `json:"memo"`
	DueDate              *string      `gorm:"index" json:"dueDate"`
	Priority             TaskPriority `gorm:"default:med" json:"priority"`
	Status               TaskStatus   `gorm:"default:todo;index" json:"status"`
	GroupID              *string      `gorm:"index" json:"groupId"`
	ProjectID            *string      `gorm:"index" json:"projectId"`
	BucketIDs            []string     `gorm:"serializer:json" json:"bucketIds"`
	RecurrenceTemplateID *string      `gorm:"index" json:"recurrenceTemplateId"`
	IsDeleted            bool         `gorm:"default:false;index" json:"isDeleted"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// Open reports whether the task still needs attention.
func (t Task) Open() bool {
	return t.Status == StatusTodo || t.Status == StatusInProgress
}
