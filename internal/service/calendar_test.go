package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-planner/internal/model"
)

// TestMonthGrid_Shape: June 2024 starts on a Saturday, so a Monday-start
// grid leads with the last days of May.
func TestMonthGrid_Shape(t *testing.T) {
	today := localDate(2024, time.June, 10)

	cells := MonthGrid(2024, time.June, today)
	require.Len(t, cells, 42)

	assert.Equal(t, "2024-05-27", cells[0].Date, "grid starts the Monday before June 1")
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, "2024-06-01", cells[5].Date)
	assert.True(t, cells[5].InMonth)
	assert.Equal(t, "2024-07-07", cells[41].Date)
	assert.False(t, cells[41].InMonth)

	var todayCount, inMonthCount int
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			assert.Equal(t, "2024-06-10", cell.Date)
		}
		if cell.InMonth {
			inMonthCount++
		}
	}
	assert.Equal(t, 1, todayCount)
	assert.Equal(t, 30, inMonthCount)
}

func TestWeekDays(t *testing.T) {
	today := localDate(2024, time.June, 10)

	cells := WeekDays(localDate(2024, time.June, 12), today)
	require.Len(t, cells, 7)
	assert.Equal(t, "2024-06-10", cells[0].Date, "week starts Monday")
	assert.Equal(t, "2024-06-16", cells[6].Date)
	assert.True(t, cells[0].IsToday)

	// A Sunday reference stays in the same Monday-start week.
	cells = WeekDays(localDate(2024, time.June, 16), today)
	assert.Equal(t, "2024-06-10", cells[0].Date)
}

func TestTasksByDueDate(t *testing.T) {
	due := "2024-06-12"
	tasks := []model.Task{
		{ID: "1", DueDate: &due},
		{ID: "2", DueDate: &due},
		{ID: "3", DueDate: nil},
		{ID: "4", DueDate: &due, IsDeleted: true},
	}

	byDate := TasksByDueDate(tasks)
	require.Len(t, byDate, 1)
	assert.Len(t, byDate["2024-06-12"], 2, "undated and deleted tasks excluded")
}
