package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-planner/internal/model"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func intPtr(v int) *int { return &v }

func weeklyTemplate(weekday int) model.RecurrenceTemplate {
	return model.RecurrenceTemplate{
		ID:              "tmpl-weekly",
		Title:           "weekly",
		RecurrenceType:  model.RecurrenceWeekly,
		RecurrenceValue: weekday,
		IsActive:        true,
	}
}

// TestNextOccurrence_WeeklyIncludesToday verifies that a weekly rule
// targeting today's weekday resolves to today, not next week.
func TestNextOccurrence_WeeklyIncludesToday(t *testing.T) {
	wednesday := localDate(2024, time.June, 12)

	date, ok := NextOccurrence(weeklyTemplate(3), wednesday)
	require.True(t, ok)
	assert.Equal(t, "2024-06-12", date)
}

// TestNextOccurrence_WeeklyUpcoming verifies the mod-7 jump to the next
// target weekday.
func TestNextOccurrence_WeeklyUpcoming(t *testing.T) {
	wednesday := localDate(2024, time.June, 12)

	// Monday is weekday 1; the upcoming Monday is June 17.
	date, ok := NextOccurrence(weeklyTemplate(1), wednesday)
	require.True(t, ok)
	assert.Equal(t, "2024-06-17", date)
}

func TestNextOccurrence_WeeklyRejectsBadWeekday(t *testing.T) {
	_, ok := NextOccurrence(weeklyTemplate(7), localDate(2024, time.June, 12))
	assert.False(t, ok)
}

// TestNextOccurrence_MonthlyDate covers the this-month and next-month cases.
func TestNextOccurrence_MonthlyDate(t *testing.T) {
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:  model.RecurrenceMonthlyDate,
		RecurrenceValue: 15,
	}

	date, ok := NextOccurrence(tmpl, localDate(2024, time.June, 15))
	require.True(t, ok)
	assert.Equal(t, "2024-06-15", date, "today qualifies")

	date, ok = NextOccurrence(tmpl, localDate(2024, time.June, 16))
	require.True(t, ok)
	assert.Equal(t, "2024-07-15", date, "past this month's date rolls forward")
}

// TestNextOccurrence_MonthlyDateSkipsShortMonths verifies that day 31 in a
// 30-day month skips to the next month that has a 31st instead of clamping.
func TestNextOccurrence_MonthlyDateSkipsShortMonths(t *testing.T) {
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:  model.RecurrenceMonthlyDate,
		RecurrenceValue: 31,
	}

	date, ok := NextOccurrence(tmpl, localDate(2024, time.June, 10))
	require.True(t, ok)
	assert.Equal(t, "2024-07-31", date)

	// Day 30 in February skips to March 30.
	tmpl.RecurrenceValue = 30
	date, ok = NextOccurrence(tmpl, localDate(2024, time.February, 10))
	require.True(t, ok)
	assert.Equal(t, "2024-03-30", date)
}

func TestNextOccurrence_MonthlyDateRejectsBadDay(t *testing.T) {
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:  model.RecurrenceMonthlyDate,
		RecurrenceValue: 32,
	}
	_, ok := NextOccurrence(tmpl, localDate(2024, time.June, 10))
	assert.False(t, ok)
}

// TestNextOccurrence_MonthlyNth resolves the Nth weekday of the month.
func TestNextOccurrence_MonthlyNth(t *testing.T) {
	// 2nd Monday of June 2024 is June 10.
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:    model.RecurrenceMonthlyNth,
		RecurrenceValue:   1,
		RecurrenceNthWeek: intPtr(2),
	}

	date, ok := NextOccurrence(tmpl, localDate(2024, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, "2024-06-10", date)

	// Reconciled on the 10th itself: today still qualifies.
	date, ok = NextOccurrence(tmpl, localDate(2024, time.June, 10))
	require.True(t, ok)
	assert.Equal(t, "2024-06-10", date)

	// Past it: next month's 2nd Monday, July 8.
	date, ok = NextOccurrence(tmpl, localDate(2024, time.June, 11))
	require.True(t, ok)
	assert.Equal(t, "2024-07-08", date)
}

// TestNextOccurrence_MonthlyNthSkipsMissingOrdinal verifies that "5th Monday"
// in a month with only four Mondays resolves in a later month.
func TestNextOccurrence_MonthlyNthSkipsMissingOrdinal(t *testing.T) {
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:    model.RecurrenceMonthlyNth,
		RecurrenceValue:   1,
		RecurrenceNthWeek: intPtr(5),
	}

	// June 2024 has four Mondays; July's fifth Monday is the 29th.
	date, ok := NextOccurrence(tmpl, localDate(2024, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, "2024-07-29", date)
}

// TestNextOccurrence_MonthlyNthExhaustsLookahead uses a window where no month
// has a fifth Saturday: Dec 2024, Jan 2025 and Feb 2025 all have four.
func TestNextOccurrence_MonthlyNthExhaustsLookahead(t *testing.T) {
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:    model.RecurrenceMonthlyNth,
		RecurrenceValue:   6,
		RecurrenceNthWeek: intPtr(5),
	}

	_, ok := NextOccurrence(tmpl, localDate(2024, time.December, 1))
	assert.False(t, ok)
}

// TestNextOccurrence_MalformedRules verifies malformed templates yield no
// occurrence rather than an error or panic.
func TestNextOccurrence_MalformedRules(t *testing.T) {
	today := localDate(2024, time.June, 10)

	missingNth := model.RecurrenceTemplate{
		RecurrenceType:  model.RecurrenceMonthlyNth,
		RecurrenceValue: 1,
	}
	_, ok := NextOccurrence(missingNth, today)
	assert.False(t, ok, "monthly_nth without nth week")

	unknownType := model.RecurrenceTemplate{
		RecurrenceType:  "yearly",
		RecurrenceValue: 1,
	}
	_, ok = NextOccurrence(unknownType, today)
	assert.False(t, ok, "unknown recurrence type")
}

// TestNextOccurrence_Deterministic runs the same inputs twice.
func TestNextOccurrence_Deterministic(t *testing.T) {
	tmpl := model.RecurrenceTemplate{
		RecurrenceType:    model.RecurrenceMonthlyNth,
		RecurrenceValue:   4,
		RecurrenceNthWeek: intPtr(3),
	}
	today := localDate(2024, time.June, 5)

	first, ok1 := NextOccurrence(tmpl, today)
	second, ok2 := NextOccurrence(tmpl, today)
	require.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}
