package usecase

import (
	"errors"
	"fmt"

	"rcp_tracker/internal/domain/entities"
)

// Error taxonomy of the timer core. Every typed error matches its sentinel via
// errors.Is and carries enough context for the UI to explain itself.
var (
	ErrConflict     = errors.New("conflict: finish your current task first")
	ErrInvalidState = errors.New("invalid state transition")
	ErrOverlap      = errors.New("interval overlap")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage failure")
)

// Input validation errors.
var (
	ErrInvalidTaskID        = errors.New("invalid task id")
	ErrInvalidLogID         = errors.New("invalid log id")
	ErrInvalidOperatorID    = errors.New("invalid operator id")
	ErrInvalidWorkstationID = errors.New("invalid workstation id")
	ErrInvalidVariantID     = errors.New("invalid variant id")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrInvalidLogPatch      = errors.New("invalid log patch")
	ErrVariantUnavailable   = errors.New("variant not available at workstation")
)

type ConflictError struct {
	TaskID        string
	Status        entities.TaskStatus
	OperatorID    string
	WorkstationID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (active task %s, operator %s, workstation %s)", ErrConflict, e.TaskID, e.OperatorID, e.WorkstationID)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type InvalidStateError struct {
	TaskID string
	Status entities.TaskStatus
	Action string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s task %s in status %s", ErrInvalidState, e.Action, e.TaskID, e.Status)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

type OverlapError struct {
	TaskID string
	LogID  string
	Reason string
}

func (e *OverlapError) Error() string {
	if e.LogID == "" {
		return fmt.Sprintf("%s on task %s: %s", ErrOverlap, e.TaskID, e.Reason)
	}
	return fmt.Sprintf("%s on task %s (log %s): %s", ErrOverlap, e.TaskID, e.LogID, e.Reason)
}

func (e *OverlapError) Is(target error) bool { return target == ErrOverlap }

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, ErrNotFound, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError wraps a persistence failure. Reads may be retried, mutations
// must re-query task state first.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s during %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func (e *StorageError) Unwrap() error { return e.Err }
