package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-planner/internal/service"
)

// SetupRoutes wires every handler under /api. Read endpoints that back the
// UI's data loading run the recurrence reconciler first, so recurring tasks
// materialize before the response is built.
func SetupRoutes(r *gin.Engine, tasks *TaskHandler, templates *TemplateHandler, masters *MasterHandler, dashboard *DashboardHandler, backups *BackupHandler, recurrence *service.RecurrenceService) {
	reconcile := reconcileOnLoad(recurrence)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		taskRoutes := api.Group("/tasks")
		{
			taskRoutes.GET("", reconcile, tasks.List)
			taskRoutes.POST("", tasks.Create)
			taskRoutes.GET("/:id", tasks.Get)
			taskRoutes.PUT("/:id", tasks.Update)
			taskRoutes.DELETE("/:id", tasks.Delete)
			taskRoutes.POST("/:id/toggle-done", tasks.ToggleDone)
			taskRoutes.POST("/:id/toggle-status", tasks.ToggleStatus)
		}

		templateRoutes := api.Group("/templates")
		{
			templateRoutes.GET("", templates.List)
			templateRoutes.POST("", templates.Create)
			templateRoutes.GET("/:id", templates.Get)
			templateRoutes.PUT("/:id", templates.Update)
			templateRoutes.DELETE("/:id", templates.Delete)
		}

		groups := api.Group("/groups")
		{
			groups.GET("", masters.ListGroups)
			groups.POST("", masters.CreateGroup)
			groups.PUT("/:id", masters.UpdateGroup)
			groups.DELETE("/:id", masters.DeleteGroup)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", masters.ListProjects)
			projects.POST("", masters.CreateProject)
			projects.PUT("/:id", masters.UpdateProject)
			projects.DELETE("/:id", masters.DeleteProject)
		}

		buckets := api.Group("/buckets")
		{
			buckets.GET("", masters.ListBuckets)
			buckets.POST("", masters.CreateBucket)
			buckets.PUT("/:id", masters.UpdateBucket)
			buckets.DELETE("/:id", masters.DeleteBucket)
		}

		api.GET("/dashboard", reconcile, dashboard.Dashboard)
		api.GET("/calendar/month", reconcile, dashboard.CalendarMonth)
		api.GET("/calendar/week", reconcile, dashboard.CalendarWeek)

		backup := api.Group("/backup")
		{
			backup.GET("/export", backups.Export)
			backup.POST("/import", backups.Import)
		}
	}
}

// reconcileOnLoad runs one idempotent reconciliation pass before a
// data-loading request is served. Failures are logged, never surfaced;
// the read itself must still succeed.
func reconcileOnLoad(recurrence *service.RecurrenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := recurrence.ReconcileAll(c.Request.Context(), time.Now()); err != nil {
			log.Printf("reconcile: %v", err)
		}
		c.Next()
	}
}
