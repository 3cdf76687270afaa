package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// maxCommitAttempts bounds the re-read/re-decide loop after a stale commit.
const maxCommitAttempts = 3

// ITaskUseCase is the task state machine exposed to the production floor.
//
// Transitions:
//   - Start: new task straight to active
//   - Schedule + Begin: pending task, activated later
//   - Pause / Resume / Stop / Cancel on an existing task
//
// Every transition is read -> decide -> commit. A commit rejected as stale is
// re-decided against the fresh state, so the loser of a race gets the domain
// error the new state implies.

type ITaskUseCase interface {
	Start(ctx context.Context, operatorID, workstationID, variantID, serviceID string) (entities.Task, error)
	Schedule(ctx context.Context, operatorID, workstationID, variantID, serviceID string) (entities.Task, error)
	Begin(ctx context.Context, taskID string) (entities.Task, error)
	Pause(ctx context.Context, taskID string) (entities.Task, error)
	Resume(ctx context.Context, taskID string) (entities.Task, error)
	Stop(ctx context.Context, taskID string) (entities.Task, error)
	Cancel(ctx context.Context, taskID string) (entities.Task, error)
	GetTask(ctx context.Context, taskID string) (entities.Task, error)
	GetActiveTask(ctx context.Context, operatorID string) (*entities.Task, error)
	ListOperatorTasks(ctx context.Context, operatorID string) ([]entities.Task, error)
	Elapsed(ctx context.Context, taskID string) (TaskElapsed, error)
	ListAvailableVariants(ctx context.Context, workstationID string) ([]entities.Variant, error)
}

// TaskElapsed is the server baseline a client extrapolates its countdown from.
type TaskElapsed struct {
	TaskID             string
	Status             entities.TaskStatus
	ElapsedSeconds     int64
	Running            bool
	OpenLogStartedAt   *time.Time
	EstimatedTimeHours float64
	ServerTime         time.Time
}

type TaskUseCase struct {
	repo       interfaces.ITaskRepository
	variants   interfaces.IVariantRepository
	guard      IExclusivityGuard
	accountant *DurationAccountant
	clock      interfaces.IClock
	logger     *log.Logger
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(
	repo interfaces.ITaskRepository,
	variants interfaces.IVariantRepository,
	guard IExclusivityGuard,
	accountant *DurationAccountant,
	clock interfaces.IClock,
	logger *log.Logger,
) *TaskUseCase {
	if clock == nil {
		clock = interfaces.SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &TaskUseCase{
		repo:       repo,
		variants:   variants,
		guard:      guard,
		accountant: accountant,
		clock:      clock,
		logger:     logger.WithPrefix("task"),
	}
}

func (u *TaskUseCase) Start(ctx context.Context, operatorID, workstationID, variantID, serviceID string) (entities.Task, error) {
	task, err := u.newTask(ctx, operatorID, workstationID, variantID, serviceID)
	if err != nil {
		return entities.Task{}, err
	}
	if err := u.guard.Check(ctx, task.OperatorID, task.WorkstationID, ""); err != nil {
		u.logger.Warn("start rejected", "operator_id", task.OperatorID, "workstation_id", task.WorkstationID, "err", err)
		return entities.Task{}, err
	}

	now := u.clock.Now()
	task.Status = entities.TaskStatusActive
	task.StartedAt = &now
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now

	change := interfaces.TaskChange{
		Task:       task,
		UpsertLogs: []entities.IntervalLog{openLog(task.ID, now)},
	}
	if err := u.repo.Commit(ctx, change); err != nil {
		err = commitError(err, task, "start")
		u.logger.Warn("start commit failed", "operator_id", task.OperatorID, "workstation_id", task.WorkstationID, "err", err)
		return entities.Task{}, err
	}

	u.logger.Info("task started", "task_id", task.ID, "operator_id", task.OperatorID, "workstation_id", task.WorkstationID, "variant_id", task.VariantID, "service_id", task.ServiceID)
	return task, nil
}

func (u *TaskUseCase) Schedule(ctx context.Context, operatorID, workstationID, variantID, serviceID string) (entities.Task, error) {
	task, err := u.newTask(ctx, operatorID, workstationID, variantID, serviceID)
	if err != nil {
		return entities.Task{}, err
	}

	now := u.clock.Now()
	task.Status = entities.TaskStatusPending
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := u.repo.Commit(ctx, interfaces.TaskChange{Task: task}); err != nil {
		return entities.Task{}, commitError(err, task, "schedule")
	}
	u.logger.Info("task scheduled", "task_id", task.ID, "operator_id", task.OperatorID, "workstation_id", task.WorkstationID)
	return task, nil
}

func (u *TaskUseCase) Begin(ctx context.Context, taskID string) (entities.Task, error) {
	return u.transition(ctx, taskID, "begin", func(ctx context.Context, now time.Time, task entities.Task, _ []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status != entities.TaskStatusPending {
			return interfaces.TaskChange{}, invalidState(task, "begin")
		}
		if err := u.guard.Check(ctx, task.OperatorID, task.WorkstationID, task.ID); err != nil {
			return interfaces.TaskChange{}, err
		}
		task.Status = entities.TaskStatusActive
		task.StartedAt = &now
		return interfaces.TaskChange{Task: task, UpsertLogs: []entities.IntervalLog{openLog(task.ID, now)}}, nil
	})
}

func (u *TaskUseCase) Pause(ctx context.Context, taskID string) (entities.Task, error) {
	return u.transition(ctx, taskID, "pause", func(_ context.Context, now time.Time, task entities.Task, logs []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status != entities.TaskStatusActive {
			return interfaces.TaskChange{}, invalidState(task, "pause")
		}
		task.Status = entities.TaskStatusPaused
		return interfaces.TaskChange{Task: task, UpsertLogs: closeOpenLogs(logs, now)}, nil
	})
}

// Resume re-checks exclusivity: the operator may have started another task
// while this one was paused.
func (u *TaskUseCase) Resume(ctx context.Context, taskID string) (entities.Task, error) {
	return u.transition(ctx, taskID, "resume", func(ctx context.Context, now time.Time, task entities.Task, _ []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status != entities.TaskStatusPaused {
			return interfaces.TaskChange{}, invalidState(task, "resume")
		}
		if err := u.guard.Check(ctx, task.OperatorID, task.WorkstationID, task.ID); err != nil {
			return interfaces.TaskChange{}, err
		}
		task.Status = entities.TaskStatusActive
		return interfaces.TaskChange{Task: task, UpsertLogs: []entities.IntervalLog{openLog(task.ID, now)}}, nil
	})
}

func (u *TaskUseCase) Stop(ctx context.Context, taskID string) (entities.Task, error) {
	return u.transition(ctx, taskID, "stop", func(ctx context.Context, now time.Time, task entities.Task, logs []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status != entities.TaskStatusActive && task.Status != entities.TaskStatusPaused {
			return interfaces.TaskChange{}, invalidState(task, "stop")
		}
		closed := closeOpenLogs(logs, now)
		figures, err := u.accountant.Finalize(ctx, task, mergeLogs(logs, closed))
		if err != nil {
			return interfaces.TaskChange{}, &StorageError{Op: "rate lookup", Err: err}
		}
		task.ApplyFigures(figures)
		task.Status = entities.TaskStatusCompleted
		task.CompletedAt = &now
		return interfaces.TaskChange{Task: task, UpsertLogs: closed}, nil
	})
}

// Cancel closes any open log; what was logged stays, but no figures are frozen.
func (u *TaskUseCase) Cancel(ctx context.Context, taskID string) (entities.Task, error) {
	return u.transition(ctx, taskID, "cancel", func(_ context.Context, now time.Time, task entities.Task, logs []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status.Terminal() {
			return interfaces.TaskChange{}, invalidState(task, "cancel")
		}
		task.Status = entities.TaskStatusCancelled
		task.CancelledAt = &now
		return interfaces.TaskChange{Task: task, UpsertLogs: closeOpenLogs(logs, now)}, nil
	})
}

func (u *TaskUseCase) GetTask(ctx context.Context, taskID string) (entities.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	return loadTask(ctx, u.repo, taskID)
}

// GetActiveTask returns nil when the operator has no active task.
func (u *TaskUseCase) GetActiveTask(ctx context.Context, operatorID string) (*entities.Task, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return nil, ErrInvalidOperatorID
	}
	t, err := u.repo.GetActiveByOperator(ctx, operatorID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "get active task", Err: err}
	}
	return &t, nil
}

func (u *TaskUseCase) ListOperatorTasks(ctx context.Context, operatorID string) ([]entities.Task, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return nil, ErrInvalidOperatorID
	}
	tasks, err := u.repo.ListByOperator(ctx, operatorID)
	if err != nil {
		return nil, &StorageError{Op: "list operator tasks", Err: err}
	}
	return tasks, nil
}

// Elapsed is advisory: it reads without locking and includes the open log up
// to the server's now.
func (u *TaskUseCase) Elapsed(ctx context.Context, taskID string) (TaskElapsed, error) {
	task, err := u.GetTask(ctx, taskID)
	if err != nil {
		return TaskElapsed{}, err
	}
	logs, err := u.repo.ListLogs(ctx, task.ID)
	if err != nil {
		return TaskElapsed{}, &StorageError{Op: "list logs", Err: err}
	}

	now := u.clock.Now()
	out := TaskElapsed{
		TaskID:             task.ID,
		Status:             task.Status,
		ElapsedSeconds:     u.accountant.TotalSeconds(logs, now),
		EstimatedTimeHours: task.EstimatedTimeHours,
		ServerTime:         now,
	}
	for _, l := range logs {
		if l.Open() {
			started := l.StartedAt
			out.Running = true
			out.OpenLogStartedAt = &started
		}
	}
	return out, nil
}

func (u *TaskUseCase) ListAvailableVariants(ctx context.Context, workstationID string) ([]entities.Variant, error) {
	workstationID = strings.TrimSpace(workstationID)
	if workstationID == "" {
		return nil, ErrInvalidWorkstationID
	}
	variants, err := u.variants.ListByWorkstation(ctx, workstationID)
	if err != nil {
		return nil, &StorageError{Op: "list variants", Err: err}
	}
	return variants, nil
}

func (u *TaskUseCase) newTask(ctx context.Context, operatorID, workstationID, variantID, serviceID string) (entities.Task, error) {
	operatorID = strings.TrimSpace(operatorID)
	workstationID = strings.TrimSpace(workstationID)
	variantID = strings.TrimSpace(variantID)
	serviceID = strings.TrimSpace(serviceID)
	switch {
	case operatorID == "":
		return entities.Task{}, ErrInvalidOperatorID
	case workstationID == "":
		return entities.Task{}, ErrInvalidWorkstationID
	case variantID == "":
		return entities.Task{}, ErrInvalidVariantID
	case serviceID == "":
		return entities.Task{}, ErrInvalidServiceID
	}

	variant, err := u.variants.GetByID(ctx, variantID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Task{}, &NotFoundError{Kind: "variant", ID: variantID}
	}
	if err != nil {
		return entities.Task{}, &StorageError{Op: "get variant", Err: err}
	}
	if !variant.AvailableAt(workstationID) {
		return entities.Task{}, ErrVariantUnavailable
	}
	service, ok := variant.Service(serviceID)
	if !ok {
		return entities.Task{}, &NotFoundError{Kind: "service", ID: serviceID}
	}

	return entities.Task{
		ID:                 uuid.NewString(),
		VariantID:          variant.ID,
		ServiceID:          service.ServiceID,
		OperatorID:         operatorID,
		WorkstationID:      workstationID,
		EstimatedTimeHours: service.EstimatedTimeHours,
	}, nil
}

type transitionFunc func(ctx context.Context, now time.Time, task entities.Task, logs []entities.IntervalLog) (interfaces.TaskChange, error)

func (u *TaskUseCase) transition(ctx context.Context, taskID, action string, decide transitionFunc) (entities.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	return commitTransition(ctx, u.repo, u.clock, u.logger, taskID, action, decide)
}

// commitTransition runs one read -> decide -> commit cycle and repeats it when
// the commit lost a version race.
func commitTransition(
	ctx context.Context,
	repo interfaces.ITaskRepository,
	clock interfaces.IClock,
	logger *log.Logger,
	taskID, action string,
	decide transitionFunc,
) (entities.Task, error) {
	for attempt := 1; ; attempt++ {
		task, err := loadTask(ctx, repo, taskID)
		if err != nil {
			return entities.Task{}, err
		}
		logs, err := repo.ListLogs(ctx, taskID)
		if err != nil {
			return entities.Task{}, &StorageError{Op: "list logs", Err: err}
		}

		now := clock.Now()
		change, err := decide(ctx, now, task, logs)
		if err != nil {
			logger.Debug("transition rejected", "action", action, "task_id", taskID, "status", task.Status, "err", err)
			return entities.Task{}, err
		}
		change.PreviousStatus = task.Status
		change.ExpectedVersion = task.Version
		change.Task.Version = task.Version + 1
		change.Task.UpdatedAt = now

		err = repo.Commit(ctx, change)
		if err == nil {
			logger.Info("task "+action, "task_id", taskID, "from", task.Status, "to", change.Task.Status, "version", change.Task.Version)
			return change.Task, nil
		}
		if errors.Is(err, interfaces.ErrStaleTask) && attempt < maxCommitAttempts {
			logger.Debug("stale commit, re-reading task", "action", action, "task_id", taskID, "attempt", attempt)
			continue
		}
		err = commitError(err, change.Task, action)
		logger.Warn("transition commit failed", "action", action, "task_id", taskID, "err", err)
		return entities.Task{}, err
	}
}

func loadTask(ctx context.Context, repo interfaces.ITaskRepository, taskID string) (entities.Task, error) {
	task, err := repo.GetTask(ctx, taskID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Task{}, &NotFoundError{Kind: "task", ID: taskID}
	}
	if err != nil {
		return entities.Task{}, &StorageError{Op: "get task", Err: err}
	}
	return task, nil
}

// commitError maps store contract errors onto the domain taxonomy.
func commitError(err error, task entities.Task, action string) error {
	var violation *interfaces.ExclusivityViolation
	switch {
	case errors.As(err, &violation):
		return &ConflictError{
			TaskID:        violation.TaskID,
			Status:        entities.TaskStatusActive,
			OperatorID:    violation.OperatorID,
			WorkstationID: violation.WorkstationID,
		}
	case errors.Is(err, interfaces.ErrExclusivity):
		return &ConflictError{TaskID: task.ID, Status: task.Status, OperatorID: task.OperatorID, WorkstationID: task.WorkstationID}
	case errors.Is(err, interfaces.ErrStaleTask):
		return &ConflictError{TaskID: task.ID, Status: task.Status, OperatorID: task.OperatorID, WorkstationID: task.WorkstationID}
	case errors.Is(err, interfaces.ErrNotFound):
		return &NotFoundError{Kind: "task", ID: task.ID}
	default:
		return &StorageError{Op: action, Err: err}
	}
}

func invalidState(task entities.Task, action string) *InvalidStateError {
	return &InvalidStateError{TaskID: task.ID, Status: task.Status, Action: action}
}

func openLog(taskID string, now time.Time) entities.IntervalLog {
	return entities.IntervalLog{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		StartedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// closeOpenLogs returns closed copies of the open logs in logs.
func closeOpenLogs(logs []entities.IntervalLog, now time.Time) []entities.IntervalLog {
	var closed []entities.IntervalLog
	for _, l := range logs {
		if !l.Open() {
			continue
		}
		end := now
		if end.Before(l.StartedAt) {
			end = l.StartedAt
		}
		l.Close(end)
		l.UpdatedAt = now
		closed = append(closed, l)
	}
	return closed
}

// mergeLogs replaces logs with their updated versions by id and appends new ones.
func mergeLogs(logs, updates []entities.IntervalLog) []entities.IntervalLog {
	out := make([]entities.IntervalLog, 0, len(logs)+len(updates))
	byID := make(map[string]entities.IntervalLog, len(updates))
	for _, l := range updates {
		byID[l.ID] = l
	}
	for _, l := range logs {
		if upd, ok := byID[l.ID]; ok {
			out = append(out, upd)
			delete(byID, l.ID)
			continue
		}
		out = append(out, l)
	}
	for _, l := range updates {
		if _, ok := byID[l.ID]; ok {
			out = append(out, l)
		}
	}
	return out
}
