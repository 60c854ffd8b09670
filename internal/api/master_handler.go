package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schedule-planner/internal/service"
)

// MasterHandler handles group/project/bucket HTTP requests.
type MasterHandler struct {
	masters *service.MasterService
}

func NewMasterHandler(masters *service.MasterService) *MasterHandler {
	return &MasterHandler{masters: masters}
}

// MasterRequest is the request body for creating or renaming a master
// entity. GroupID is only meaningful for projects.
type MasterRequest struct {
	Name    string  `json:"name" binding:"required"`
	GroupID *string `json:"groupId"`
}

// GET /api/groups
func (h *MasterHandler) ListGroups(c *gin.Context) {
	groups, err := h.masters.ListGroups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// POST /api/groups
func (h *MasterHandler) CreateGroup(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := h.masters.CreateGroup(c.Request.Context(), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// PUT /api/groups/:id
func (h *MasterHandler) UpdateGroup(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := h.masters.RenameGroup(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, group)
}

// DELETE /api/groups/:id
func (h *MasterHandler) DeleteGroup(c *gin.Context) {
	h.writeDeleted(c, h.masters.DeleteGroup(c.Request.Context(), c.Param("id")), "group")
}

// GET /api/projects
func (h *MasterHandler) ListProjects(c *gin.Context) {
	projects, err := h.masters.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// POST /api/projects
func (h *MasterHandler) CreateProject(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := h.masters.CreateProject(c.Request.Context(), req.Name, req.GroupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// PUT /api/projects/:id
func (h *MasterHandler) UpdateProject(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := h.masters.UpdateProject(c.Request.Context(), c.Param("id"), req.Name, req.GroupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// DELETE /api/projects/:id
func (h *MasterHandler) DeleteProject(c *gin.Context) {
	h.writeDeleted(c, h.masters.DeleteProject(c.Request.Context(), c.Param("id")), "project")
}

// GET /api/buckets
func (h *MasterHandler) ListBuckets(c *gin.Context) {
	buckets, err := h.masters.ListBuckets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}

// POST /api/buckets
func (h *MasterHandler) CreateBucket(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bucket, err := h.masters.CreateBucket(c.Request.Context(), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bucket)
}

// PUT /api/buckets/:id
func (h *MasterHandler) UpdateBucket(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bucket, err := h.masters.RenameBucket(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if bucket == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bucket not found"})
		return
	}
	c.JSON(http.StatusOK, bucket)
}

// DELETE /api/buckets/:id
func (h *MasterHandler) DeleteBucket(c *gin.Context) {
	h.writeDeleted(c, h.masters.DeleteBucket(c.Request.Context(), c.Param("id")), "bucket")
}

func (h *MasterHandler) writeDeleted(c *gin.Context, err error, kind string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
