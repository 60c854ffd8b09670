package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-planner/internal/model"
)

func TestBuildDigest(t *testing.T) {
	now := localDate(2024, time.June, 10) // Monday
	groupID := "g1"
	groupNames := map[string]string{"g1": "Work"}

	tasks := []model.Task{
		task("overdue", strPtr("2024-06-08"), model.StatusTodo, model.PriorityHigh, &groupID),
		task("today", strPtr("2024-06-10"), model.StatusInProgress, model.PriorityMed, nil),
		task("week", strPtr("2024-06-14"), model.StatusTodo, model.PriorityMed, nil),
		task("done", strPtr("2024-06-10"), model.StatusDone, model.PriorityMed, nil),
		task("later", strPtr("2024-06-25"), model.StatusTodo, model.PriorityMed, nil),
	}

	digest := BuildDigest(tasks, groupNames, now)

	assert.Contains(t, digest, "Daily schedule report")
	assert.Contains(t, digest, "2024-06-10")
	assert.Contains(t, digest, "task overdue")
	assert.Contains(t, digest, "<i>(Work)</i>")
	assert.Contains(t, digest, "task today")
	assert.Contains(t, digest, "task week")
	assert.NotContains(t, digest, "task done", "completed tasks stay out of the digest")
	assert.NotContains(t, digest, "task later", "beyond this week stays out of the digest")
}

func TestBuildDigest_EscapesHTML(t *testing.T) {
	now := localDate(2024, time.June, 10)
	tasks := []model.Task{
		task("x", strPtr("2024-06-10"), model.StatusTodo, model.PriorityMed, nil),
	}
	tasks[0].Title = "review <script> & co"

	digest := BuildDigest(tasks, nil, now)
	require.NotContains(t, digest, "<script>")
	assert.Contains(t, digest, "&lt;script&gt; &amp; co")
}

func TestBuildDigest_EmptySections(t *testing.T) {
	digest := BuildDigest(nil, nil, localDate(2024, time.June, 10))
	assert.Contains(t, digest, "Overdue")
	assert.Contains(t, digest, "nothing here")
}
