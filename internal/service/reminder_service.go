package service

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"schedule-planner/internal/model"
	"schedule-planner/internal/repository"
)

// ReminderService builds the daily digest pushed through the notifier.
type ReminderService struct {
	tasks  *repository.TaskRepository
	groups *repository.GroupRepository
}

func NewReminderService(tasks *repository.TaskRepository, groups *repository.GroupRepository) *ReminderService {
	return &ReminderService{tasks: tasks, groups: groups}
}

// DailyDigest renders the Telegram HTML summary for now's calendar date.
func (s *ReminderService) DailyDigest(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return "", err
	}
	groups, err := s.groups.List(ctx)
	if err != nil {
		return "", err
	}

	groupNames := make(map[string]string, len(groups))
	for _, group := range groups {
		groupNames[group.ID] = group.Name
	}

	return BuildDigest(tasks, groupNames, now), nil
}

// BuildDigest formats open tasks due soon into a Telegram HTML message.
// Sections: overdue, due today, later this week.
func BuildDigest(tasks []model.Task, groupNames map[string]string, now time.Time) string {
	var overdue, dueToday, thisWeek []model.Task
	for _, task := range tasks {
		if !task.Open() {
			continue
		}
		bucket, ok := ClassifyDue(task.DueDate, now)
		if !ok {
			continue
		}
		switch bucket {
		case BucketOverdue:
			overdue = append(overdue, task)
		case BucketToday:
			dueToday = append(dueToday, task)
		case BucketThisWeek:
			thisWeek = append(thisWeek, task)
		}
	}

	for _, section := range [][]model.Task{overdue, dueToday, thisWeek} {
		sortByDueDate(section)
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Daily schedule report</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n", FormatDate(now)))

	writeSection(&builder, "⚠️ <b>Overdue</b>", overdue, groupNames)
	writeSection(&builder, "🔥 <b>Due today</b>", dueToday, groupNames)
	writeSection(&builder, "⏳ <b>Later this week</b>", thisWeek, groupNames)

	return strings.TrimSpace(builder.String())
}

func writeSection(builder *strings.Builder, header string, tasks []model.Task, groupNames map[string]string) {
	builder.WriteString("\n" + header + "\n")
	if len(tasks) == 0 {
		builder.WriteString("— nothing here\n")
		return
	}
	for _, task := range tasks {
		builder.WriteString(formatDigestLine(task, groupNames))
	}
}

func formatDigestLine(task model.Task, groupNames map[string]string) string {
	var sb strings.Builder

	icon := "🟢"
	if task.Priority == model.PriorityHigh {
		icon = "🔴"
	}
	sb.WriteString(fmt.Sprintf("%s %s", icon, html.EscapeString(strings.TrimSpace(task.Title))))

	if task.GroupID != nil {
		if name := strings.TrimSpace(groupNames[*task.GroupID]); name != "" {
			sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", html.EscapeString(name)))
		}
	}
	if task.DueDate != nil {
		sb.WriteString(fmt.Sprintf(" · %s", *task.DueDate))
	}

	sb.WriteByte('\n')
	return sb.String()
}

func sortByDueDate(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		switch {
		case tasks[i].DueDate == nil:
			return false
		case tasks[j].DueDate == nil:
			return true
		default:
			return *tasks[i].DueDate < *tasks[j].DueDate
		}
	})
}
