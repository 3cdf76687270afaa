package interfaces

import (
	"context"
	"errors"
)

var ErrRateNotFound = errors.New("hourly rate not configured")

// RateQuery identifies what is being costed.
type RateQuery struct {
	TaskID        string
	WorkstationID string
	ServiceID     string
}

// IRateLookup returns the hourly cost rate for a task. The accountant treats
// the rate as an opaque input.
type IRateLookup interface {
	HourlyRate(ctx context.Context, q RateQuery) (float64, error)
}
