package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-planner/internal/model"
)

func TestValidateTemplateInput(t *testing.T) {
	valid := func() TemplateInput {
		return TemplateInput{
			Title:           "water plants",
			RecurrenceType:  model.RecurrenceWeekly,
			RecurrenceValue: 3,
			IsActive:        true,
		}
	}

	t.Run("valid weekly", func(t *testing.T) {
		input := valid()
		require.NoError(t, validateTemplateInput(&input))
		assert.Equal(t, model.PriorityMed, input.Priority, "priority defaults to med")
	})

	t.Run("valid monthly_nth", func(t *testing.T) {
		input := valid()
		input.RecurrenceType = model.RecurrenceMonthlyNth
		input.RecurrenceValue = 1
		input.RecurrenceNthWeek = intPtr(5)
		require.NoError(t, validateTemplateInput(&input))
	})

	cases := []struct {
		name   string
		mutate func(*TemplateInput)
	}{
		{"empty title", func(in *TemplateInput) { in.Title = "" }},
		{"bad priority", func(in *TemplateInput) { in.Priority = "urgent" }},
		{"weekly value out of range", func(in *TemplateInput) { in.RecurrenceValue = 7 }},
		{"weekly with nth week", func(in *TemplateInput) { in.RecurrenceNthWeek = intPtr(2) }},
		{"monthly_date value zero", func(in *TemplateInput) {
			in.RecurrenceType = model.RecurrenceMonthlyDate
			in.RecurrenceValue = 0
		}},
		{"monthly_date value too large", func(in *TemplateInput) {
			in.RecurrenceType = model.RecurrenceMonthlyDate
			in.RecurrenceValue = 32
		}},
		{"monthly_nth without nth week", func(in *TemplateInput) {
			in.RecurrenceType = model.RecurrenceMonthlyNth
			in.RecurrenceValue = 1
		}},
		{"monthly_nth nth week out of range", func(in *TemplateInput) {
			in.RecurrenceType = model.RecurrenceMonthlyNth
			in.RecurrenceValue = 1
			in.RecurrenceNthWeek = intPtr(6)
		}},
		{"unknown type", func(in *TemplateInput) { in.RecurrenceType = "yearly" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid()
			tc.mutate(&input)
			err := validateTemplateInput(&input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateTaskInput(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		input := TaskInput{Title: "call dentist"}
		require.NoError(t, validateTaskInput(&input))
		assert.Equal(t, model.PriorityMed, input.Priority)
		assert.Equal(t, model.StatusTodo, input.Status)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		input := TaskInput{}
		assert.ErrorIs(t, validateTaskInput(&input), ErrInvalidInput)
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		input := TaskInput{Title: "x", DueDate: strPtr("12/06/2024")}
		assert.ErrorIs(t, validateTaskInput(&input), ErrInvalidInput)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		input := TaskInput{Title: "x", Status: "paused"}
		assert.ErrorIs(t, validateTaskInput(&input), ErrInvalidInput)
	})

	t.Run("accepts valid due date", func(t *testing.T) {
		input := TaskInput{Title: "x", DueDate: strPtr("2024-06-12")}
		require.NoError(t, validateTaskInput(&input))
	})
}
