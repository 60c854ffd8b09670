package service

import (
	"time"

	"schedule-planner/internal/model"
)

// monthLookahead caps the occurrence search at this month plus two forward.
// A monthly rule with no hit inside the window yields no occurrence this cycle.
const monthLookahead = 3

// NextOccurrence computes the earliest calendar date on or after today that
// satisfies the template's recurrence rule, as YYYY-MM-DD. Today itself
// qualifies in every branch. The second return is false when the rule is
// malformed or no date exists within the search window.
func NextOccurrence(tmpl model.RecurrenceTemplate, today time.Time) (string, bool) {
	today = StartOfDay(today)
	switch tmpl.RecurrenceType {
	case model.RecurrenceWeekly:
		return nextWeekday(today, tmpl.RecurrenceValue)
	case model.RecurrenceMonthlyDate:
		return nextMonthlyDate(today, tmpl.RecurrenceValue)
	case model.RecurrenceMonthlyNth:
		if tmpl.RecurrenceNthWeek == nil {
			return "", false
		}
		return nextNthWeekday(today, *tmpl.RecurrenceNthWeek, tmpl.RecurrenceValue)
	default:
		return "", false
	}
}

func nextWeekday(today time.Time, weekday int) (string, bool) {
	if weekday < 0 || weekday > 6 {
		return "", false
	}
	diff := (weekday - int(today.Weekday()) + 7) % 7
	return FormatDate(today.AddDate(0, 0, diff)), true
}

func nextMonthlyDate(today time.Time, dayOfMonth int) (string, bool) {
	for offset := 0; offset < monthLookahead; offset++ {
		candidate := time.Date(today.Year(), today.Month()+time.Month(offset), dayOfMonth,
			0, 0, 0, 0, today.Location())
		// A different day number means the date normalized past month end:
		// this month has no such day, so skip it rather than clamp.
		if candidate.Day() != dayOfMonth {
			continue
		}
		if !candidate.Before(today) {
			return FormatDate(candidate), true
		}
	}
	return "", false
}

func nextNthWeekday(today time.Time, nth, weekday int) (string, bool) {
	if nth < 1 || weekday < 0 || weekday > 6 {
		return "", false
	}
	for offset := 0; offset < monthLookahead; offset++ {
		first := time.Date(today.Year(), today.Month()+time.Month(offset), 1,
			0, 0, 0, 0, today.Location())
		day := 1 + ((weekday-int(first.Weekday())+7)%7) + (nth-1)*7
		candidate := first.AddDate(0, 0, day-1)
		// Landing in the following month means the Nth weekday does not exist.
		if candidate.Month() != first.Month() {
			continue
		}
		if !candidate.Before(today) {
			return FormatDate(candidate), true
		}
	}
	return "", false
}
