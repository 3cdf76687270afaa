package handlers

import (
	"net/http"

	"rcp_tracker/internal/adapter/http/dto/request"
	"rcp_tracker/internal/adapter/http/dto/response"
	"rcp_tracker/internal/adapter/http/middleware"
	"rcp_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles privileged corrections of logged history. Every
// mutation requires a reason, which lands in the audit trail.
type AdminHandler struct {
	usecase usecase.IAdminCorrectionUseCase
}

func NewAdminHandler(uc usecase.IAdminCorrectionUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// GetTaskLogs godoc
// @Summary      Interval logs of a task
// @Tags         admin
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string true "must be admin"
// @Param        task_id path string true "Task id"
// @Success      200 {array} response.LogResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /admin/tasks/{task_id}/logs [get]
func (h *AdminHandler) GetTaskLogs(c *gin.Context) {
	logs, err := h.usecase.GetTaskLogs(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLogs(logs))
}

// GetAuditTrail godoc
// @Summary      Audit trail of a task
// @Tags         admin
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string true "must be admin"
// @Param        task_id path string true "Task id"
// @Success      200 {array} response.AuditResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /admin/tasks/{task_id}/audit [get]
func (h *AdminHandler) GetAuditTrail(c *gin.Context) {
	entries, err := h.usecase.GetAuditTrail(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}

// EditLog godoc
// @Summary      Edit an interval log
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string true "must be admin"
// @Param        log_id path string true "Log id"
// @Param        payload body request.EditLogRequest true "Fields to change"
// @Success      200 {object} response.TaskResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /admin/logs/{log_id} [patch]
func (h *AdminHandler) EditLog(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload request.EditLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	reason, err := payload.ResolveReason()
	if err != nil {
		writeTaskError(c, err)
		return
	}

	task, err := h.usecase.EditLog(c.Request.Context(), actor.OperatorID, c.Param("log_id"), payload.ToPatch(), reason)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

// DeleteLog godoc
// @Summary      Delete an interval log
// @Description  The reason is read from the query string because DELETE bodies are not reliably forwarded by proxies.
// @Tags         admin
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string true "must be admin"
// @Param        log_id path string true "Log id"
// @Param        reason query string true "Correction reason"
// @Success      200 {object} response.TaskResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /admin/logs/{log_id} [delete]
func (h *AdminHandler) DeleteLog(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	reason, err := request.ReasonRequest{Reason: c.Query("reason")}.ResolveReason()
	if err != nil {
		writeTaskError(c, err)
		return
	}

	task, err := h.usecase.DeleteLog(c.Request.Context(), actor.OperatorID, c.Param("log_id"), reason)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

// InsertLog godoc
// @Summary      Insert a manual interval
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string true "must be admin"
// @Param        task_id path string true "Task id"
// @Param        payload body request.InsertLogRequest true "Manual interval"
// @Success      201 {object} response.TaskResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /admin/tasks/{task_id}/logs [post]
func (h *AdminHandler) InsertLog(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload request.InsertLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	reason, err := payload.ResolveReason()
	if err != nil {
		writeTaskError(c, err)
		return
	}

	task, err := h.usecase.InsertLog(c.Request.Context(), actor.OperatorID, c.Param("task_id"), payload.StartedAt, payload.EndedAt, payload.Note, reason)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(task))
}

// ReopenTask godoc
// @Summary      Reopen a completed task
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string true "must be admin"
// @Param        task_id path string true "Task id"
// @Param        payload body request.ReasonRequest true "Correction reason"
// @Success      200 {object} response.TaskResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /admin/tasks/{task_id}/reopen [post]
func (h *AdminHandler) ReopenTask(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	reason, err := payload.ResolveReason()
	if err != nil {
		writeTaskError(c, err)
		return
	}

	task, err := h.usecase.Reopen(c.Request.Context(), actor.OperatorID, c.Param("task_id"), reason)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}
