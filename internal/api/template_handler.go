package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schedule-planner/internal/model"
	"schedule-planner/internal/service"
)

// TemplateHandler handles recurrence template HTTP requests.
type TemplateHandler struct {
	templates *service.TemplateService
}

func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// TemplateRequest is the request body for creating or updating a template.
type TemplateRequest struct {
	Title             string   `json:"title" binding:"required"`
	Memo              string   `json:"memo"`
	Priority          string   `json:"priority"`
	GroupID           *string  `json:"groupId"`
	ProjectID         *string  `json:"projectId"`
	BucketIDs         []string `json:"bucketIds"`
	RecurrenceType    string   `json:"recurrenceType" binding:"required"`
	RecurrenceValue   int      `json:"recurrenceValue"`
	RecurrenceNthWeek *int     `json:"recurrenceNthWeek"`
	IsActive          *bool    `json:"isActive"`
}

func (r TemplateRequest) toInput() service.TemplateInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return service.TemplateInput{
		Title:             r.Title,
		Memo:              r.Memo,
		Priority:          model.TaskPriority(r.Priority),
		GroupID:           r.GroupID,
		ProjectID:         r.ProjectID,
		BucketIDs:         r.BucketIDs,
		RecurrenceType:    model.RecurrenceType(r.RecurrenceType),
		RecurrenceValue:   r.RecurrenceValue,
		RecurrenceNthWeek: r.RecurrenceNthWeek,
		IsActive:          active,
	}
}

// List returns all templates.
// GET /api/templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templates.ListTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// Get returns one template.
// GET /api/templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	tmpl, err := h.templates.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// Create adds a new recurrence template.
// POST /api/templates
func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := h.templates.CreateTemplate(c.Request.Context(), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

// Update replaces the editable fields of a template.
// PUT /api/templates/:id
func (h *TemplateHandler) Update(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := h.templates.UpdateTemplate(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// Delete removes a template; generated tasks survive.
// DELETE /api/templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	err := h.templates.DeleteTemplate(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
