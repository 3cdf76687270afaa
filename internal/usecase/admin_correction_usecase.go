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

// LogPatch carries the fields an admin wants to change on a log. Nil fields are
// left as they are.
type LogPatch struct {
	StartedAt *time.Time
	EndedAt   *time.Time
	Note      *string
}

func (p LogPatch) Empty() bool {
	return p.StartedAt == nil && p.EndedAt == nil && p.Note == nil
}

// IAdminCorrectionUseCase exposes privileged edits of logged history.
//
// Every mutation re-validates the whole log set of the task before it is
// committed, writes an audit entry and, for completed tasks, refreshes the
// frozen figures in the same commit. Active tasks are off limits: their open
// log belongs to the state machine.
type IAdminCorrectionUseCase interface {
	GetTaskLogs(ctx context.Context, taskID string) ([]entities.IntervalLog, error)
	GetAuditTrail(ctx context.Context, taskID string) ([]entities.AuditEntry, error)
	EditLog(ctx context.Context, actorID, logID string, patch LogPatch, reason string) (entities.Task, error)
	DeleteLog(ctx context.Context, actorID, logID, reason string) (entities.Task, error)
	InsertLog(ctx context.Context, actorID, taskID string, startedAt, endedAt time.Time, note, reason string) (entities.Task, error)
	Reopen(ctx context.Context, actorID, taskID, reason string) (entities.Task, error)
}

type AdminCorrectionUseCase struct {
	repo       interfaces.ITaskRepository
	guard      IExclusivityGuard
	accountant *DurationAccountant
	clock      interfaces.IClock
	logger     *log.Logger
}

var _ IAdminCorrectionUseCase = (*AdminCorrectionUseCase)(nil)

func NewAdminCorrectionUseCase(
	repo interfaces.ITaskRepository,
	guard IExclusivityGuard,
	accountant *DurationAccountant,
	clock interfaces.IClock,
	logger *log.Logger,
) *AdminCorrectionUseCase {
	if clock == nil {
		clock = interfaces.SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &AdminCorrectionUseCase{
		repo:       repo,
		guard:      guard,
		accountant: accountant,
		clock:      clock,
		logger:     logger.WithPrefix("admin"),
	}
}

func (u *AdminCorrectionUseCase) GetTaskLogs(ctx context.Context, taskID string) ([]entities.IntervalLog, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, ErrInvalidTaskID
	}
	if _, err := loadTask(ctx, u.repo, taskID); err != nil {
		return nil, err
	}
	logs, err := u.repo.ListLogs(ctx, taskID)
	if err != nil {
		return nil, &StorageError{Op: "list logs", Err: err}
	}
	SortLogs(logs)
	return logs, nil
}

func (u *AdminCorrectionUseCase) GetAuditTrail(ctx context.Context, taskID string) ([]entities.AuditEntry, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, ErrInvalidTaskID
	}
	if _, err := loadTask(ctx, u.repo, taskID); err != nil {
		return nil, err
	}
	entries, err := u.repo.ListAudit(ctx, taskID)
	if err != nil {
		return nil, &StorageError{Op: "list audit", Err: err}
	}
	return entries, nil
}

func (u *AdminCorrectionUseCase) EditLog(ctx context.Context, actorID, logID string, patch LogPatch, reason string) (entities.Task, error) {
	if patch.Empty() {
		return entities.Task{}, ErrInvalidLogPatch
	}
	target, err := u.resolveLog(ctx, logID)
	if err != nil {
		return entities.Task{}, err
	}

	return u.correct(ctx, target.TaskID, "edit log", func(now time.Time, logs []entities.IntervalLog) ([]entities.IntervalLog, *interfaces.TaskChange, error) {
		current, ok := findLog(logs, target.ID)
		if !ok {
			return nil, nil, &NotFoundError{Kind: "log", ID: target.ID}
		}
		edited := current
		if patch.StartedAt != nil {
			edited.StartedAt = patch.StartedAt.UTC()
		}
		if patch.EndedAt != nil {
			end := patch.EndedAt.UTC()
			edited.EndedAt = &end
		}
		if patch.Note != nil {
			edited.Note = strings.TrimSpace(*patch.Note)
		}
		if err := notInFuture(edited, now); err != nil {
			return nil, nil, err
		}
		edited.UpdatedAt = now

		change := &interfaces.TaskChange{
			UpsertLogs: []entities.IntervalLog{edited},
			Audit:      u.audit(actorID, target.TaskID, edited.ID, entities.AuditLogEdited, reason, now),
		}
		return mergeLogs(logs, change.UpsertLogs), change, nil
	})
}

func (u *AdminCorrectionUseCase) DeleteLog(ctx context.Context, actorID, logID, reason string) (entities.Task, error) {
	target, err := u.resolveLog(ctx, logID)
	if err != nil {
		return entities.Task{}, err
	}

	return u.correct(ctx, target.TaskID, "delete log", func(now time.Time, logs []entities.IntervalLog) ([]entities.IntervalLog, *interfaces.TaskChange, error) {
		if _, ok := findLog(logs, target.ID); !ok {
			return nil, nil, &NotFoundError{Kind: "log", ID: target.ID}
		}
		remaining := make([]entities.IntervalLog, 0, len(logs))
		for _, l := range logs {
			if l.ID != target.ID {
				remaining = append(remaining, l)
			}
		}
		change := &interfaces.TaskChange{
			DeleteLogIDs: []string{target.ID},
			Audit:        u.audit(actorID, target.TaskID, target.ID, entities.AuditLogDeleted, reason, now),
		}
		return remaining, change, nil
	})
}

// InsertLog adds a closed manual interval to a task's history.
func (u *AdminCorrectionUseCase) InsertLog(ctx context.Context, actorID, taskID string, startedAt, endedAt time.Time, note, reason string) (entities.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	if startedAt.IsZero() || endedAt.IsZero() {
		return entities.Task{}, ErrInvalidLogPatch
	}

	return u.correct(ctx, taskID, "insert log", func(now time.Time, logs []entities.IntervalLog) ([]entities.IntervalLog, *interfaces.TaskChange, error) {
		end := endedAt.UTC()
		manual := entities.IntervalLog{
			ID:        uuid.NewString(),
			TaskID:    taskID,
			StartedAt: startedAt.UTC(),
			EndedAt:   &end,
			Note:      strings.TrimSpace(note),
			Manual:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := notInFuture(manual, now); err != nil {
			return nil, nil, err
		}
		change := &interfaces.TaskChange{
			UpsertLogs: []entities.IntervalLog{manual},
			Audit:      u.audit(actorID, taskID, manual.ID, entities.AuditLogInserted, reason, now),
		}
		return append(append([]entities.IntervalLog{}, logs...), manual), change, nil
	})
}

// Reopen moves a completed task back to active with a fresh open log. It is an
// audited admin action, not a resume.
func (u *AdminCorrectionUseCase) Reopen(ctx context.Context, actorID, taskID, reason string) (entities.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	return commitTransition(ctx, u.repo, u.clock, u.logger, taskID, "reopen", func(ctx context.Context, now time.Time, task entities.Task, _ []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status != entities.TaskStatusCompleted {
			return interfaces.TaskChange{}, invalidState(task, "reopen")
		}
		if err := u.guard.Check(ctx, task.OperatorID, task.WorkstationID, task.ID); err != nil {
			return interfaces.TaskChange{}, err
		}
		fresh := openLog(task.ID, now)
		task.Status = entities.TaskStatusActive
		task.CompletedAt = nil
		task.ClearFigures()
		return interfaces.TaskChange{
			Task:       task,
			UpsertLogs: []entities.IntervalLog{fresh},
			Audit:      u.audit(actorID, task.ID, fresh.ID, entities.AuditTaskReopened, reason, now),
		}, nil
	})
}

type correctionFunc func(now time.Time, logs []entities.IntervalLog) (candidate []entities.IntervalLog, change *interfaces.TaskChange, err error)

// correct validates the candidate log set and commits the correction together
// with refreshed figures. Nothing is written when validation fails.
func (u *AdminCorrectionUseCase) correct(ctx context.Context, taskID, action string, build correctionFunc) (entities.Task, error) {
	return commitTransition(ctx, u.repo, u.clock, u.logger, taskID, action, func(ctx context.Context, now time.Time, task entities.Task, logs []entities.IntervalLog) (interfaces.TaskChange, error) {
		if task.Status == entities.TaskStatusActive {
			return interfaces.TaskChange{}, invalidState(task, action)
		}
		candidate, change, err := build(now, logs)
		if err != nil {
			return interfaces.TaskChange{}, err
		}
		if err := ValidateIntervals(task.ID, candidate, false); err != nil {
			u.logger.Warn("correction rejected", "action", action, "task_id", task.ID, "err", err)
			return interfaces.TaskChange{}, err
		}
		if task.Status == entities.TaskStatusCompleted {
			figures, err := u.accountant.Finalize(ctx, task, candidate)
			if err != nil {
				return interfaces.TaskChange{}, &StorageError{Op: "rate lookup", Err: err}
			}
			task.ApplyFigures(figures)
		}
		change.Task = task
		return *change, nil
	})
}

func (u *AdminCorrectionUseCase) resolveLog(ctx context.Context, logID string) (entities.IntervalLog, error) {
	logID = strings.TrimSpace(logID)
	if logID == "" {
		return entities.IntervalLog{}, ErrInvalidLogID
	}
	l, err := u.repo.GetLog(ctx, logID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.IntervalLog{}, &NotFoundError{Kind: "log", ID: logID}
	}
	if err != nil {
		return entities.IntervalLog{}, &StorageError{Op: "get log", Err: err}
	}
	return l, nil
}

func (u *AdminCorrectionUseCase) audit(actorID, taskID, logID string, action entities.AuditAction, reason string, now time.Time) *entities.AuditEntry {
	return &entities.AuditEntry{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		LogID:     logID,
		Action:    action,
		ActorID:   strings.TrimSpace(actorID),
		Reason:    strings.TrimSpace(reason),
		CreatedAt: now,
	}
}

func findLog(logs []entities.IntervalLog, id string) (entities.IntervalLog, bool) {
	for _, l := range logs {
		if l.ID == id {
			return l, true
		}
	}
	return entities.IntervalLog{}, false
}

func notInFuture(l entities.IntervalLog, now time.Time) error {
	if l.StartedAt.After(now) || (l.EndedAt != nil && l.EndedAt.After(now)) {
		return ErrInvalidLogPatch
	}
	return nil
}
