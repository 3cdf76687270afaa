package routes

import (
	"rcp_tracker/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOperators    = "/operators"
	PathWorkstations = "/workstations"
	PathTasks        = "/tasks"
	PathAdmin        = "/admin"
)

func addRCPRoutes(rg *gin.RouterGroup, h Handlers) {
	authed := rg.Group("", middleware.Identity())

	operators := authed.Group(PathOperators+"/me", middleware.RequireWorker())
	{
		operators.GET("/active-task", h.Task.GetActiveTask)
		operators.GET("/tasks", h.Task.ListMyTasks)
	}

	workstations := authed.Group(PathWorkstations)
	{
		workstations.GET("/:workstation_id/variants", h.Task.ListAvailableVariants)
	}

	tasks := authed.Group(PathTasks)
	{
		// Creating work needs a worker capacity; transitions check ownership
		// in the handler so admins can act on any task.
		tasks.POST("", middleware.RequireWorker(), h.Task.StartTask)
		tasks.POST("/schedule", middleware.RequireWorker(), h.Task.ScheduleTask)
		tasks.GET("/:task_id", h.Task.GetTask)
		tasks.GET("/:task_id/elapsed", h.Task.GetElapsed)
		tasks.POST("/:task_id/begin", h.Task.BeginTask)
		tasks.POST("/:task_id/pause", h.Task.PauseTask)
		tasks.POST("/:task_id/resume", h.Task.ResumeTask)
		tasks.POST("/:task_id/stop", h.Task.StopTask)
		tasks.POST("/:task_id/cancel", h.Task.CancelTask)
	}

	admin := authed.Group(PathAdmin, middleware.RequireAdmin())
	{
		admin.GET("/tasks/:task_id/logs", h.Admin.GetTaskLogs)
		admin.POST("/tasks/:task_id/logs", h.Admin.InsertLog)
		admin.GET("/tasks/:task_id/audit", h.Admin.GetAuditTrail)
		admin.POST("/tasks/:task_id/reopen", h.Admin.ReopenTask)
		admin.PATCH("/logs/:log_id", h.Admin.EditLog)
		admin.DELETE("/logs/:log_id", h.Admin.DeleteLog)
	}
}
