package service

import (
	"time"

	"schedule-planner/internal/model"
)

// CalendarCell is one day in a calendar view.
type CalendarCell struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Day     int    `json:"day"`  // 1-31
	InMonth bool   `json:"inMonth"`
	IsToday bool   `json:"isToday"`
}

// MonthGrid builds the 6x7 grid for a month view, Monday start. Always
// returns exactly 42 cells so the view never reflows.
func MonthGrid(year int, month time.Month, today time.Time) []CalendarCell {
	todayStr := FormatDate(StartOfDay(today))
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	// time.Weekday is Sunday-based; shift so Monday is 0.
	startDow := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -startDow)

	cells := make([]CalendarCell, 0, 42)
	for i := 0; i < 42; i++ {
		d := start.AddDate(0, 0, i)
		ds := FormatDate(d)
		cells = append(cells, CalendarCell{
			Date:    ds,
			Day:     d.Day(),
			InMonth: d.Month() == month && d.Year() == year,
			IsToday: ds == todayStr,
		})
	}
	return cells
}

// WeekDays returns the 7 days of the week containing ref, starting Monday.
func WeekDays(ref time.Time, today time.Time) []CalendarCell {
	todayStr := FormatDate(StartOfDay(today))
	ref = StartOfDay(ref)
	dow := (int(ref.Weekday()) + 6) % 7
	monday := ref.AddDate(0, 0, -dow)

	cells := make([]CalendarCell, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		ds := FormatDate(d)
		cells = append(cells, CalendarCell{
			Date:    ds,
			Day:     d.Day(),
			InMonth: true,
			IsToday: ds == todayStr,
		})
	}
	return cells
}

// TasksByDueDate groups non-deleted, dated tasks by their due date.
func TasksByDueDate(tasks []model.Task) map[string][]model.Task {
	byDate := make(map[string][]model.Task)
	for _, task := range tasks {
		if task.IsDeleted || task.DueDate == nil || *task.DueDate == "" {
			continue
		}
		byDate[*task.DueDate] = append(byDate[*task.DueDate], task)
	}
	return byDate
}
