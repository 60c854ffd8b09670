package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-planner/internal/service"
)

const quickListLimit = 5

// DashboardHandler serves the aggregated views: dashboard tiers and the
// calendar grids.
type DashboardHandler struct {
	tasks   *service.TaskService
	masters *service.MasterService
}

func NewDashboardHandler(tasks *service.TaskService, masters *service.MasterService) *DashboardHandler {
	return &DashboardHandler{tasks: tasks, masters: masters}
}

// Dashboard returns the three-tier dashboard breakdown.
// GET /api/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	today := time.Now()

	tasks, err := h.tasks.ListTasks(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	groups, err := h.masters.ListGroups(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"aggregation":   service.AggregateCounts(tasks, today),
		"strategy":      service.ComputeStrategySummary(tasks, today),
		"danger":        service.ComputeDangerCounts(tasks, today),
		"groupProgress": service.ComputeGroupProgress(tasks, groups),
		"quickLists": gin.H{
			"overdue":  service.QuickList(tasks, service.BucketOverdue, quickListLimit, today),
			"today":    service.QuickList(tasks, service.BucketToday, quickListLimit, today),
			"thisWeek": service.QuickList(tasks, service.BucketThisWeek, quickListLimit, today),
		},
	})
}

// CalendarMonth returns the 42-cell month grid plus tasks per day.
// GET /api/calendar/month?year=2024&month=6
func (h *DashboardHandler) CalendarMonth(c *gin.Context) {
	today := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(today.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(today.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cells":       service.MonthGrid(year, time.Month(month), today),
		"tasksByDate": service.TasksByDueDate(tasks),
	})
}

// CalendarWeek returns the 7-day strip containing the given date.
// GET /api/calendar/week?date=2024-06-10
func (h *DashboardHandler) CalendarWeek(c *gin.Context) {
	today := time.Now()

	ref := today
	if raw := c.Query("date"); raw != "" {
		parsed, err := service.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cells":       service.WeekDays(ref, today),
		"tasksByDate": service.TasksByDueDate(tasks),
	})
}
