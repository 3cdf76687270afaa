package handlers

import (
	"context"
	"net/http"

	"rcp_tracker/internal/adapter/http/dto/request"
	"rcp_tracker/internal/adapter/http/dto/response"
	"rcp_tracker/internal/adapter/http/middleware"
	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler exposes the task state machine to the production floor.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// StartTask godoc
// @Summary      Start a task
// @Description  Starts a task for the calling operator and opens its first interval.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        payload body request.StartTaskRequest true "Task to start"
// @Success      201 {object} response.TaskResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks [post]
func (h *TaskHandler) StartTask(c *gin.Context) {
	h.createTask(c, h.usecase.Start, http.StatusCreated)
}

// ScheduleTask godoc
// @Summary      Schedule a task
// @Description  Creates a pending task to be begun later.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        payload body request.StartTaskRequest true "Task to schedule"
// @Success      201 {object} response.TaskResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/schedule [post]
func (h *TaskHandler) ScheduleTask(c *gin.Context) {
	h.createTask(c, h.usecase.Schedule, http.StatusCreated)
}

func (h *TaskHandler) createTask(
	c *gin.Context,
	create func(ctx context.Context, operatorID, workstationID, variantID, serviceID string) (entities.Task, error),
	status int,
) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.StartTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	task, err := create(c.Request.Context(), actor.OperatorID, payload.ResolveWorkstationID(), payload.ResolveVariantID(), payload.ResolveServiceID())
	if err != nil {
		writeTaskError(c, err)
		return
	}

	c.JSON(status, response.FromTask(task))
}

// BeginTask godoc
// @Summary      Begin a pending task
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id}/begin [post]
func (h *TaskHandler) BeginTask(c *gin.Context) {
	h.transition(c, h.usecase.Begin)
}

// PauseTask godoc
// @Summary      Pause an active task
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id}/pause [post]
func (h *TaskHandler) PauseTask(c *gin.Context) {
	h.transition(c, h.usecase.Pause)
}

// ResumeTask godoc
// @Summary      Resume a paused task
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id}/resume [post]
func (h *TaskHandler) ResumeTask(c *gin.Context) {
	h.transition(c, h.usecase.Resume)
}

// StopTask godoc
// @Summary      Stop a task and freeze its figures
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id}/stop [post]
func (h *TaskHandler) StopTask(c *gin.Context) {
	h.transition(c, h.usecase.Stop)
}

// CancelTask godoc
// @Summary      Cancel a task
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id}/cancel [post]
func (h *TaskHandler) CancelTask(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// transition checks ownership before handing the task id to the state machine.
// Ownership never changes, so the check does not race with the transition.
func (h *TaskHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, taskID string) (entities.Task, error),
) {
	if _, ok := h.loadOwnedTask(c); !ok {
		return
	}

	task, err := apply(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task))
}

// GetTask godoc
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := h.loadOwnedTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

// GetElapsed godoc
// @Summary      Elapsed time baseline
// @Description  Server-side elapsed seconds a client extrapolates its countdown from.
// @Tags         tasks
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Param        task_id path string true "Task id"
// @Success      200 {object} response.ElapsedResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /tasks/{task_id}/elapsed [get]
func (h *TaskHandler) GetElapsed(c *gin.Context) {
	if _, ok := h.loadOwnedTask(c); !ok {
		return
	}

	elapsed, err := h.usecase.Elapsed(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromElapsed(elapsed))
}

// GetActiveTask godoc
// @Summary      Active task of the caller
// @Tags         operators
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Success      200 {object} response.ActiveTaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /operators/me/active-task [get]
func (h *TaskHandler) GetActiveTask(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	task, err := h.usecase.GetActiveTask(c.Request.Context(), actor.OperatorID)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromActiveTask(task))
}

// ListMyTasks godoc
// @Summary      Tasks of the caller
// @Tags         operators
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        X-Operator-Role header string false "operator or admin"
// @Success      200 {array} response.TaskResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /operators/me/tasks [get]
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	tasks, err := h.usecase.ListOperatorTasks(c.Request.Context(), actor.OperatorID)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

// ListAvailableVariants godoc
// @Summary      Variants produced at a workstation
// @Tags         workstations
// @Produce      json
// @Param        X-Operator-ID header string true "Operator id"
// @Param        workstation_id path string true "Workstation id"
// @Success      200 {array} response.VariantResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /workstations/{workstation_id}/variants [get]
func (h *TaskHandler) ListAvailableVariants(c *gin.Context) {
	variants, err := h.usecase.ListAvailableVariants(c.Request.Context(), c.Param("workstation_id"))
	if err != nil {
		writeTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromVariants(variants))
}

func (h *TaskHandler) loadOwnedTask(c *gin.Context) (entities.Task, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return entities.Task{}, false
	}

	task, err := h.usecase.GetTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		writeTaskError(c, err)
		return entities.Task{}, false
	}
	if !actor.CanControl(task) {
		c.JSON(errForbiddenTask.HTTPStatus, errForbiddenTask.ToHTTPError())
		return entities.Task{}, false
	}
	return task, true
}
