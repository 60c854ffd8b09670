package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-planner/internal/model"
)

func task(id string, due *string, status model.TaskStatus, priority model.TaskPriority, groupID *string) model.Task {
	return model.Task{
		ID:       id,
		Title:    "task " + id,
		DueDate:  due,
		Status:   status,
		Priority: priority,
		GroupID:  groupID,
	}
}

func TestAggregateCounts(t *testing.T) {
	today := localDate(2024, time.June, 10) // Monday

	tasks := []model.Task{
		task("1", strPtr("2024-06-09"), model.StatusTodo, model.PriorityHigh, nil),
		task("2", strPtr("2024-06-10"), model.StatusInProgress, model.PriorityMed, nil),
		task("3", strPtr("2024-06-14"), model.StatusDone, model.PriorityLow, nil),
		task("4", strPtr("2024-06-20"), model.StatusTodo, model.PriorityMed, nil),
		task("5", nil, model.StatusTodo, model.PriorityLow, nil),
		task("6", strPtr("2024-08-01"), model.StatusTodo, model.PriorityMed, nil),
	}

	agg := AggregateCounts(tasks, today)

	assert.Equal(t, DueCounts{Overdue: 1, Today: 1, ThisWeek: 1, ThisMonth: 1}, agg.DueCounts)
	assert.Equal(t, StatusCounts{Todo: 4, InProgress: 1, Done: 1}, agg.StatusCounts)
	assert.Equal(t, PriorityCounts{High: 1, Med: 3, Low: 2}, agg.PriorityCounts)
}

func TestComputeStrategySummary(t *testing.T) {
	today := localDate(2024, time.June, 10)

	tasks := []model.Task{
		task("1", strPtr("2024-06-09"), model.StatusDone, model.PriorityMed, nil),  // this week (overdue)
		task("2", strPtr("2024-06-10"), model.StatusTodo, model.PriorityMed, nil),  // this week (today)
		task("3", strPtr("2024-06-14"), model.StatusDone, model.PriorityMed, nil),  // this week
		task("4", strPtr("2024-06-25"), model.StatusInProgress, model.PriorityMed, nil),
	}

	summary := ComputeStrategySummary(tasks, today)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.InProgress)
	assert.Equal(t, 2, summary.Done)
	assert.Equal(t, 50, summary.CompletionRate)
	assert.Equal(t, 3, summary.ThisWeekTotal)
	assert.Equal(t, 2, summary.ThisWeekDone)
	assert.Equal(t, 67, summary.ThisWeekRate, "2/3 rounds to 67")
}

func TestComputeStrategySummary_Empty(t *testing.T) {
	summary := ComputeStrategySummary(nil, localDate(2024, time.June, 10))
	assert.Zero(t, summary.CompletionRate)
	assert.Zero(t, summary.ThisWeekRate)
}

func TestComputeDangerCounts(t *testing.T) {
	today := localDate(2024, time.June, 10)

	tasks := []model.Task{
		task("1", strPtr("2024-06-09"), model.StatusTodo, model.PriorityLow, nil),   // overdue
		task("2", strPtr("2024-06-09"), model.StatusDone, model.PriorityHigh, nil),  // done: ignored
		task("3", strPtr("2024-06-10"), model.StatusInProgress, model.PriorityMed, nil),
		task("4", strPtr("2024-06-14"), model.StatusTodo, model.PriorityHigh, nil),  // this week, high
		task("5", strPtr("2024-06-14"), model.StatusTodo, model.PriorityMed, nil),   // this week, not high
	}

	counts := ComputeDangerCounts(tasks, today)
	assert.Equal(t, DangerCounts{Overdue: 1, Today: 1, ThisWeekHigh: 1}, counts)
}

func TestComputeGroupProgress(t *testing.T) {
	groupA := "group-a"
	groups := []model.Group{
		{ID: "group-a", Name: "Work"},
		{ID: "group-empty", Name: "Hobby"},
	}
	tasks := []model.Task{
		task("1", nil, model.StatusDone, model.PriorityMed, &groupA),
		task("2", nil, model.StatusTodo, model.PriorityMed, &groupA),
		task("3", nil, model.StatusDone, model.PriorityMed, nil),
	}

	progress := ComputeGroupProgress(tasks, groups)
	require.Len(t, progress, 2, "empty groups are omitted, unassigned appended")

	assert.Equal(t, "Work", progress[0].GroupName)
	assert.Equal(t, 2, progress[0].Total)
	assert.Equal(t, 1, progress[0].Done)
	assert.Equal(t, 50, progress[0].Rate)

	assert.Equal(t, "Unassigned", progress[1].GroupName)
	assert.Nil(t, progress[1].GroupID)
	assert.Equal(t, 100, progress[1].Rate)
}

func TestQuickList(t *testing.T) {
	today := localDate(2024, time.June, 10)

	tasks := []model.Task{
		task("late", strPtr("2024-06-14"), model.StatusTodo, model.PriorityMed, nil),
		task("done", strPtr("2024-06-12"), model.StatusDone, model.PriorityMed, nil),
		task("early", strPtr("2024-06-11"), model.StatusInProgress, model.PriorityMed, nil),
		task("mid", strPtr("2024-06-12"), model.StatusTodo, model.PriorityMed, nil),
	}

	picked := QuickList(tasks, BucketThisWeek, 2, today)
	require.Len(t, picked, 2, "done tasks excluded, limit applied")
	assert.Equal(t, "early", picked[0].ID)
	assert.Equal(t, "mid", picked[1].ID)
}

func TestFilters(t *testing.T) {
	today := localDate(2024, time.June, 10)
	tasks := []model.Task{
		task("1", strPtr("2024-06-09"), model.StatusTodo, model.PriorityHigh, nil),
		task("2", strPtr("2024-06-10"), model.StatusDone, model.PriorityLow, nil),
	}

	assert.Len(t, FilterByDueBucket(tasks, BucketOverdue, today), 1)
	assert.Len(t, FilterByStatus(tasks, model.StatusDone), 1)
	assert.Len(t, FilterByPriority(tasks, model.PriorityHigh), 1)
	assert.Empty(t, FilterByPriority(tasks, model.PriorityMed))
}
