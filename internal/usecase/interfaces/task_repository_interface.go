package interfaces

import (
	"context"
	"errors"
	"fmt"

	"rcp_tracker/internal/domain/entities"
)

// Store contract errors. Adapters translate driver failures into these so the
// use cases can tell a lost race from a broken connection.
var (
	ErrNotFound    = errors.New("record not found")
	ErrStaleTask   = errors.New("task was modified concurrently")
	ErrExclusivity = errors.New("operator or workstation already has an active task")
)

// ExclusivityViolation describes the active task that blocked a commit.
type ExclusivityViolation struct {
	TaskID        string
	OperatorID    string
	WorkstationID string
}

func (e *ExclusivityViolation) Error() string {
	return fmt.Sprintf("%s: task=%s operator=%s workstation=%s", ErrExclusivity, e.TaskID, e.OperatorID, e.WorkstationID)
}

func (e *ExclusivityViolation) Unwrap() error {
	return ErrExclusivity
}

// TaskChange is one atomic transition of a task and its logs.
//
// Commit must apply it as a single unit:
//   - ExpectedVersion == 0 creates the task, otherwise the stored version must
//     equal ExpectedVersion (ErrStaleTask when it does not)
//   - when Task.Status is active, no other active task may exist for the same
//     operator or workstation (ErrExclusivity); this check runs inside the
//     same transaction as the writes
//   - UpsertLogs and DeleteLogIDs belong to Task.ID
//   - Audit, when set, is written with the change

type TaskChange struct {
	Task            entities.Task
	PreviousStatus  entities.TaskStatus
	ExpectedVersion int64
	UpsertLogs      []entities.IntervalLog
	DeleteLogIDs    []string
	Audit           *entities.AuditEntry
}

// ITaskRepository is the Interval Log Store: tasks, their logs and the audit
// trail of corrections.
//
// Getters return ErrNotFound when the record does not exist.

type ITaskRepository interface {
	GetTask(ctx context.Context, id string) (entities.Task, error)
	GetActiveByOperator(ctx context.Context, operatorID string) (entities.Task, error)
	GetActiveByWorkstation(ctx context.Context, workstationID string) (entities.Task, error)
	ListByOperator(ctx context.Context, operatorID string) ([]entities.Task, error)
	ListLogs(ctx context.Context, taskID string) ([]entities.IntervalLog, error)
	GetLog(ctx context.Context, logID string) (entities.IntervalLog, error)
	ListAudit(ctx context.Context, taskID string) ([]entities.AuditEntry, error)
	Commit(ctx context.Context, change TaskChange) error
}
