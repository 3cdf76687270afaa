package entities

import "time"

// TaskStatus represents the lifecycle of a production task.
//
// Lifecycle:
//   - pending -> active (begin)
//   - active <-> paused (pause / resume)
//   - active|paused -> completed (stop)
//   - pending|active|paused -> cancelled (cancel)
//
// completed and cancelled are terminal for the operator flow. Only the admin
// re-open moves a completed task back to active.

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusActive    TaskStatus = "active"
	TaskStatusPaused    TaskStatus = "paused"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusActive, TaskStatusPaused, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// Task is a timed unit of production work for one variant/service pair.
//
// Storage model:
//   - SQLite: tasks table, partial unique indexes on operator_id and
//     workstation_id filtered to status = 'active'
//   - DynamoDB: PK id, GSI operator_id-index, lock items per operator/workstation
//
// Frozen figures (ActualHours, VariancePercent, ActualCost) stay nil until the
// task is completed. VariancePercent also stays nil when there is no estimate.
type Task struct {
	ID            string     `json:"id"`
	VariantID     string     `json:"variant_id"`
	ServiceID     string     `json:"service_id"`
	OperatorID    string     `json:"operator_id"`
	WorkstationID string     `json:"workstation_id"`
	Status        TaskStatus `json:"status"`

	EstimatedTimeHours float64 `json:"estimated_time_hours"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	ActualHours     *float64 `json:"actual_hours,omitempty"`
	VariancePercent *float64 `json:"variance_percent,omitempty"`
	ActualCost      *float64 `json:"actual_cost,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyFigures freezes the accounted figures on the task.
func (t *Task) ApplyFigures(f Figures) {
	t.ActualHours = floatPtr(f.ActualHours)
	t.VariancePercent = f.VariancePercent
	t.ActualCost = f.ActualCost
}

func (t *Task) ClearFigures() {
	t.ActualHours = nil
	t.VariancePercent = nil
	t.ActualCost = nil
}

// Figures is the planned-vs-actual outcome of a completed task.
type Figures struct {
	ActualHours     float64  `json:"actual_hours"`
	VariancePercent *float64 `json:"variance_percent,omitempty"`
	ActualCost      *float64 `json:"actual_cost,omitempty"`
}

// VarianceStatus classifies a variance for downstream coloring.
type VarianceStatus string

const (
	VarianceOnTime      VarianceStatus = "on_time"
	VarianceFaster      VarianceStatus = "faster"
	VarianceSlower      VarianceStatus = "slower"
	VarianceUnavailable VarianceStatus = "unavailable"
)

func floatPtr(v float64) *float64 {
	return &v
}
