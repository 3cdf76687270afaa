package usecase

import (
	"context"
	"errors"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"
)

// IExclusivityGuard enforces one active task per operator and per workstation.
//
// The guard answers from indexed lookups. The same rule is re-checked by the
// store inside every commit that makes a task active, so a passing Check is
// advisory and a failing Check is final.

type IExclusivityGuard interface {
	CanStart(ctx context.Context, operatorID, workstationID string) (bool, error)
	ActiveTaskFor(ctx context.Context, operatorID string) (string, error)
	ActiveTaskForWorkstation(ctx context.Context, workstationID string) (string, error)
	Check(ctx context.Context, operatorID, workstationID, exceptTaskID string) error
}

type ExclusivityGuard struct {
	repo interfaces.ITaskRepository
}

var _ IExclusivityGuard = (*ExclusivityGuard)(nil)

func NewExclusivityGuard(repo interfaces.ITaskRepository) *ExclusivityGuard {
	return &ExclusivityGuard{repo: repo}
}

func (g *ExclusivityGuard) CanStart(ctx context.Context, operatorID, workstationID string) (bool, error) {
	err := g.Check(ctx, operatorID, workstationID, "")
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrConflict) {
		return false, nil
	}
	return false, err
}

// ActiveTaskFor returns the id of the operator's active task, or "" when idle.
func (g *ExclusivityGuard) ActiveTaskFor(ctx context.Context, operatorID string) (string, error) {
	t, err := g.repo.GetActiveByOperator(ctx, operatorID)
	return activeID(t, err, "active task for operator")
}

func (g *ExclusivityGuard) ActiveTaskForWorkstation(ctx context.Context, workstationID string) (string, error) {
	t, err := g.repo.GetActiveByWorkstation(ctx, workstationID)
	return activeID(t, err, "active task for workstation")
}

// Check returns a *ConflictError naming the blocking task when the operator or
// the workstation is busy with a task other than exceptTaskID.
func (g *ExclusivityGuard) Check(ctx context.Context, operatorID, workstationID, exceptTaskID string) error {
	byOperator, err := g.repo.GetActiveByOperator(ctx, operatorID)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return &StorageError{Op: "active task for operator", Err: err}
	}
	if err == nil && byOperator.ID != exceptTaskID {
		return conflictFrom(byOperator)
	}

	byStation, err := g.repo.GetActiveByWorkstation(ctx, workstationID)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return &StorageError{Op: "active task for workstation", Err: err}
	}
	if err == nil && byStation.ID != exceptTaskID {
		return conflictFrom(byStation)
	}
	return nil
}

func activeID(t entities.Task, err error, op string) (string, error) {
	if errors.Is(err, interfaces.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", &StorageError{Op: op, Err: err}
	}
	return t.ID, nil
}

func conflictFrom(t entities.Task) *ConflictError {
	return &ConflictError{
		TaskID:        t.ID,
		Status:        t.Status,
		OperatorID:    t.OperatorID,
		WorkstationID: t.WorkstationID,
	}
}
