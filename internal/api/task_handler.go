package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schedule-planner/internal/model"
	"schedule-planner/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// TaskRequest is the request body for creating or updating a task.
type TaskRequest struct {
	Title     string   `json:"title" binding:"required"`
	Memo      string   `json:"memo"`
	DueDate   *string  `json:"dueDate"`
	Priority  string   `json:"priority"`
	Status    string   `json:"status"`
	GroupID   *string  `json:"groupId"`
	ProjectID *string  `json:"projectId"`
	BucketIDs []string `json:"bucketIds"`
}

func (r TaskRequest) toInput() service.TaskInput {
	return service.TaskInput{
		Title:     r.Title,
		Memo:      r.Memo,
		DueDate:   r.DueDate,
		Priority:  model.TaskPriority(r.Priority),
		Status:    model.TaskStatus(r.Status),
		GroupID:   r.GroupID,
		ProjectID: r.ProjectID,
		BucketIDs: r.BucketIDs,
	}
}

// List returns all non-deleted tasks.
// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Get returns one task.
// GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create adds a new task.
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update replaces the editable fields of a task.
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleDone flips a task between done and todo.
// POST /api/tasks/:id/toggle-done
func (h *TaskHandler) ToggleDone(c *gin.Context) {
	h.writeToggled(c, h.tasks.ToggleDone)
}

// ToggleStatus flips a task between todo and in_progress.
// POST /api/tasks/:id/toggle-status
func (h *TaskHandler) ToggleStatus(c *gin.Context) {
	h.writeToggled(c, h.tasks.ToggleStatus)
}

// Delete soft-deletes a task.
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.tasks.DeleteTask(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) writeToggled(c *gin.Context, toggle func(ctx context.Context, id string) (*model.Task, error)) {
	task, err := toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// writeServiceError maps service failures onto HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
