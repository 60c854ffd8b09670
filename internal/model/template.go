package model

import "time"

// RecurrenceType selects how RecurrenceValue is interpreted.
type RecurrenceType string

const (
	// RecurrenceWeekly repeats on a weekday; RecurrenceValue is 0-6, Sunday=0.
	RecurrenceWeekly RecurrenceType = "weekly"
	// RecurrenceMonthlyDate repeats on a day of month; RecurrenceValue is 1-31.
	RecurrenceMonthlyDate RecurrenceType = "monthly_date"
	// RecurrenceMonthlyNth repeats on the Nth weekday of the month;
	// RecurrenceValue is the weekday 0-6 and RecurrenceNthWeek the ordinal 1-5.
	RecurrenceMonthlyNth RecurrenceType = "monthly_nth"
)

// RecurrenceTemplate is a rule that materializes one pending Task per cycle.
// RecurrenceNthWeek is set iff RecurrenceType is monthly_nth.
// LastGeneratedDate records the last due date an instance was generated for,
// as a second line of defense against duplicate generation.
type RecurrenceTemplate struct {
	ID                string         `gorm:"primaryKey" json:"id"`
	Title             string         `json:"title"`
	Memo              string         `json:"memo"`
	Priority          TaskPriority   `gorm:"default:med" json:"priority"`
	GroupID           *string        `json:"groupId"`
	ProjectID         *string        `json:"projectId"`
	BucketIDs         []string       `gorm:"serializer:json" json:"bucketIds"`
	RecurrenceType    RecurrenceType `json:"recurrenceType"`
	RecurrenceValue   int            `json:"recurrenceValue"`
	RecurrenceNthWeek *int           `json:"recurrenceNthWeek"`
	IsActive          bool           `gorm:"default:true;index" json:"isActive"`
	LastGeneratedDate *string        `json:"lastGeneratedDate"`
	CreatedAt         time.Time      `json:"createdAt"`
}
