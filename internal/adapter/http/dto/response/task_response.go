package response

import (
	"time"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase"
)

type TaskResponse struct {
	ID                 string     `json:"id"`
	VariantID          string     `json:"variant_id"`
	ServiceID          string     `json:"service_id"`
	OperatorID         string     `json:"operator_id"`
	WorkstationID      string     `json:"workstation_id"`
	Status             string     `json:"status"`
	EstimatedTimeHours float64    `json:"estimated_time_hours"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	ActualHours        *float64   `json:"actual_hours,omitempty"`
	VariancePercent    *float64   `json:"variance_percent,omitempty"`
	VarianceStatus     string     `json:"variance_status,omitempty"`
	ActualCost         *float64   `json:"actual_cost,omitempty"`
	Version            int64      `json:"version"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// FromTask maps a task. variance_status is only reported once figures are
// frozen.
func FromTask(t entities.Task) TaskResponse {
	out := TaskResponse{
		ID:                 t.ID,
		VariantID:          t.VariantID,
		ServiceID:          t.ServiceID,
		OperatorID:         t.OperatorID,
		WorkstationID:      t.WorkstationID,
		Status:             string(t.Status),
		EstimatedTimeHours: t.EstimatedTimeHours,
		StartedAt:          t.StartedAt,
		CompletedAt:        t.CompletedAt,
		CancelledAt:        t.CancelledAt,
		ActualHours:        t.ActualHours,
		VariancePercent:    t.VariancePercent,
		ActualCost:         t.ActualCost,
		Version:            t.Version,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
	if t.Status == entities.TaskStatusCompleted {
		out.VarianceStatus = string(usecase.ClassifyVariance(t.VariancePercent))
	}
	return out
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

// ActiveTaskResponse wraps the optional active task so idle operators get a
// 200 with a null task.
type ActiveTaskResponse struct {
	Task *TaskResponse `json:"task"`
}

func FromActiveTask(t *entities.Task) ActiveTaskResponse {
	if t == nil {
		return ActiveTaskResponse{}
	}
	tr := FromTask(*t)
	return ActiveTaskResponse{Task: &tr}
}

type ElapsedResponse struct {
	TaskID             string     `json:"task_id"`
	Status             string     `json:"status"`
	ElapsedSeconds     int64      `json:"elapsed_seconds"`
	Running            bool       `json:"running"`
	OpenLogStartedAt   *time.Time `json:"open_log_started_at,omitempty"`
	EstimatedTimeHours float64    `json:"estimated_time_hours"`
	ServerTime         time.Time  `json:"server_time"`
}

func FromElapsed(e usecase.TaskElapsed) ElapsedResponse {
	return ElapsedResponse{
		TaskID:             e.TaskID,
		Status:             string(e.Status),
		ElapsedSeconds:     e.ElapsedSeconds,
		Running:            e.Running,
		OpenLogStartedAt:   e.OpenLogStartedAt,
		EstimatedTimeHours: e.EstimatedTimeHours,
		ServerTime:         e.ServerTime,
	}
}
