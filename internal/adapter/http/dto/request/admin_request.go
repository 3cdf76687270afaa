package request

import (
	"errors"
	"strings"
	"time"

	"rcp_tracker/internal/usecase"
)

var (
	ErrMissingReason = errors.New("reason is required")
)

// EditLogRequest patches a log. Absent fields are kept.
type EditLogRequest struct {
	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
	Note      *string    `json:"note"`
	Reason    string     `json:"reason"`
}

func (r EditLogRequest) ToPatch() usecase.LogPatch {
	return usecase.LogPatch{StartedAt: r.StartedAt, EndedAt: r.EndedAt, Note: r.Note}
}

func (r EditLogRequest) ResolveReason() (string, error) {
	return resolveReason(r.Reason)
}

// InsertLogRequest adds a manual closed interval.
type InsertLogRequest struct {
	StartedAt time.Time `json:"started_at" binding:"required"`
	EndedAt   time.Time `json:"ended_at" binding:"required"`
	Note      string    `json:"note"`
	Reason    string    `json:"reason"`
}

func (r InsertLogRequest) ResolveReason() (string, error) {
	return resolveReason(r.Reason)
}

// ReasonRequest is the body of reason-only admin actions such as reopen.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

func (r ReasonRequest) ResolveReason() (string, error) {
	return resolveReason(r.Reason)
}

func resolveReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", ErrMissingReason
	}
	return reason, nil
}
