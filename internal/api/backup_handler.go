package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-planner/internal/service"
)

// BackupHandler serves JSON export and validated restore.
type BackupHandler struct {
	backups *service.BackupService
}

func NewBackupHandler(backups *service.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// Export downloads the whole store as a backup file.
// GET /api/backup/export
func (h *BackupHandler) Export(c *gin.Context) {
	backup, err := h.backups.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("my-schedule-backup-%s.json", service.FormatDate(time.Now()))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, backup)
}

// Import validates the uploaded backup and replaces all collections.
// POST /api/backup/import
func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}

	if err := h.backups.Import(c.Request.Context(), raw); err != nil {
		if errors.Is(err, service.ErrInvalidBackup) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
