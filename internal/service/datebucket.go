package service

import "time"

// DueBucket classifies a due date relative to today.
type DueBucket string

const (
	BucketOverdue   DueBucket = "overdue"
	BucketToday     DueBucket = "today"
	BucketThisWeek  DueBucket = "thisWeek"
	BucketThisMonth DueBucket = "thisMonth"
)

// ClassifyDue places a due date into one of the four buckets. The second
// return is false when the task has no due date or the date falls beyond the
// end of this month. Branches are checked in order: overdue, today, thisWeek
// (week ends Saturday), thisMonth.
func ClassifyDue(dueDate *string, today time.Time) (DueBucket, bool) {
	if dueDate == nil || *dueDate == "" {
		return "", false
	}
	due, err := ParseDate(*dueDate)
	if err != nil {
		return "", false
	}
	today = StartOfDay(today)

	if due.Before(today) {
		return BucketOverdue, true
	}
	if due.Equal(today) {
		return BucketToday, true
	}

	// time.Weekday is Sunday-based, so Saturday is 6-weekday days away.
	endOfWeek := today.AddDate(0, 0, 6-int(today.Weekday()))
	if !due.After(endOfWeek) {
		return BucketThisWeek, true
	}

	// Day zero of next month is the last day of this one.
	endOfMonth := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location())
	if !due.After(endOfMonth) {
		return BucketThisMonth, true
	}

	return "", false
}
