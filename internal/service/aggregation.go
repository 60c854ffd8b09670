package service

import (
	"math"
	"sort"
	"time"

	"schedule-planner/internal/model"
)

// DueCounts tallies tasks per due-date bucket.
type DueCounts struct {
	Overdue   int `json:"overdue"`
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
}

// StatusCounts tallies tasks per lifecycle status.
type StatusCounts struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

// PriorityCounts tallies tasks per priority.
type PriorityCounts struct {
	High int `json:"high"`
	Med  int `json:"med"`
	Low  int `json:"low"`
}

// TaskAggregation is the basic dashboard breakdown.
type TaskAggregation struct {
	DueCounts      DueCounts      `json:"dueCounts"`
	StatusCounts   StatusCounts   `json:"statusCounts"`
	PriorityCounts PriorityCounts `json:"priorityCounts"`
}

// AggregateCounts computes bucket, status and priority tallies in one pass.
func AggregateCounts(tasks []model.Task, today time.Time) TaskAggregation {
	var agg TaskAggregation

	for _, task := range tasks {
		switch task.Status {
		case model.StatusTodo:
			agg.StatusCounts.Todo++
		case model.StatusInProgress:
			agg.StatusCounts.InProgress++
		case model.StatusDone:
			agg.StatusCounts.Done++
		}

		switch task.Priority {
		case model.PriorityHigh:
			agg.PriorityCounts.High++
		case model.PriorityMed:
			agg.PriorityCounts.Med++
		case model.PriorityLow:
			agg.PriorityCounts.Low++
		}

		if bucket, ok := ClassifyDue(task.DueDate, today); ok {
			switch bucket {
			case BucketOverdue:
				agg.DueCounts.Overdue++
			case BucketToday:
				agg.DueCounts.Today++
			case BucketThisWeek:
				agg.DueCounts.ThisWeek++
			case BucketThisMonth:
				agg.DueCounts.ThisMonth++
			}
		}
	}
	return agg
}

// StrategySummary is the dashboard's top tier: overall and this-week
// completion rates. "This week" means the overdue, today and thisWeek
// buckets combined.
type StrategySummary struct {
	Total          int `json:"total"`
	InProgress     int `json:"inProgress"`
	Done           int `json:"done"`
	CompletionRate int `json:"completionRate"` // 0-100
	ThisWeekTotal  int `json:"thisWeekTotal"`
	ThisWeekDone   int `json:"thisWeekDone"`
	ThisWeekRate   int `json:"thisWeekRate"` // 0-100
}

func ComputeStrategySummary(tasks []model.Task, today time.Time) StrategySummary {
	summary := StrategySummary{Total: len(tasks)}

	for _, task := range tasks {
		switch task.Status {
		case model.StatusInProgress:
			summary.InProgress++
		case model.StatusDone:
			summary.Done++
		}

		bucket, ok := ClassifyDue(task.DueDate, today)
		if ok && (bucket == BucketOverdue || bucket == BucketToday || bucket == BucketThisWeek) {
			summary.ThisWeekTotal++
			if task.Status == model.StatusDone {
				summary.ThisWeekDone++
			}
		}
	}

	summary.CompletionRate = percentage(summary.Done, summary.Total)
	summary.ThisWeekRate = percentage(summary.ThisWeekDone, summary.ThisWeekTotal)
	return summary
}

// DangerCounts is the dashboard's middle tier: open tasks that need
// attention now.
type DangerCounts struct {
	Overdue      int `json:"overdue"`
	Today        int `json:"today"`
	ThisWeekHigh int `json:"thisWeekHigh"`
}

func ComputeDangerCounts(tasks []model.Task, today time.Time) DangerCounts {
	var counts DangerCounts
	for _, task := range tasks {
		if task.Status == model.StatusDone {
			continue
		}
		bucket, ok := ClassifyDue(task.DueDate, today)
		if !ok {
			continue
		}
		switch {
		case bucket == BucketOverdue:
			counts.Overdue++
		case bucket == BucketToday:
			counts.Today++
		case bucket == BucketThisWeek && task.Priority == model.PriorityHigh:
			counts.ThisWeekHigh++
		}
	}
	return counts
}

// GroupProgress is one row of the dashboard's bottom tier. A nil GroupID
// stands for tasks without a group.
type GroupProgress struct {
	GroupID   *string `json:"groupId"`
	GroupName string  `json:"groupName"`
	Total     int     `json:"total"`
	Done      int     `json:"done"`
	Rate      int     `json:"rate"` // 0-100
}

// ComputeGroupProgress returns completion per group, in the given group
// order, with an unassigned row last. Groups without tasks are omitted.
func ComputeGroupProgress(tasks []model.Task, groups []model.Group) []GroupProgress {
	type tally struct{ total, done int }
	acc := make(map[string]*tally)

	key := func(groupID *string) string {
		if groupID == nil {
			return ""
		}
		return *groupID
	}

	for _, task := range tasks {
		entry := acc[key(task.GroupID)]
		if entry == nil {
			entry = &tally{}
			acc[key(task.GroupID)] = entry
		}
		entry.total++
		if task.Status == model.StatusDone {
			entry.done++
		}
	}

	var result []GroupProgress
	for _, group := range groups {
		entry := acc[group.ID]
		if entry == nil {
			continue
		}
		id := group.ID
		result = append(result, GroupProgress{
			GroupID:   &id,
			GroupName: group.Name,
			Total:     entry.total,
			Done:      entry.done,
			Rate:      percentage(entry.done, entry.total),
		})
	}
	if entry := acc[""]; entry != nil {
		result = append(result, GroupProgress{
			GroupName: "Unassigned",
			Total:     entry.total,
			Done:      entry.done,
			Rate:      percentage(entry.done, entry.total),
		})
	}
	return result
}

// FilterByDueBucket keeps tasks whose due date falls in the given bucket.
func FilterByDueBucket(tasks []model.Task, bucket DueBucket, today time.Time) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if b, ok := ClassifyDue(task.DueDate, today); ok && b == bucket {
			out = append(out, task)
		}
	}
	return out
}

// FilterByStatus keeps tasks with the given status.
func FilterByStatus(tasks []model.Task, status model.TaskStatus) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out
}

// FilterByPriority keeps tasks with the given priority.
func FilterByPriority(tasks []model.Task, priority model.TaskPriority) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if task.Priority == priority {
			out = append(out, task)
		}
	}
	return out
}

// QuickList returns up to limit open tasks from a bucket, earliest due date
// first. Tasks without a due date sort last.
func QuickList(tasks []model.Task, bucket DueBucket, limit int, today time.Time) []model.Task {
	var picked []model.Task
	for _, task := range tasks {
		if !task.Open() {
			continue
		}
		if b, ok := ClassifyDue(task.DueDate, today); ok && b == bucket {
			picked = append(picked, task)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		switch {
		case picked[i].DueDate == nil && picked[j].DueDate == nil:
			return false
		case picked[i].DueDate == nil:
			return false
		case picked[j].DueDate == nil:
			return true
		default:
			return *picked[i].DueDate < *picked[j].DueDate
		}
	})

	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
