package response

import (
	"time"

	"rcp_tracker/internal/domain/entities"
)

type LogResponse struct {
	ID              string     `json:"id"`
	TaskID          string     `json:"task_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Open            bool       `json:"open"`
	DurationSeconds *int64     `json:"duration_seconds,omitempty"`
	Note            string     `json:"note,omitempty"`
	Manual          bool       `json:"manual"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FromLog reports a duration only for closed logs.
func FromLog(l entities.IntervalLog) LogResponse {
	out := LogResponse{
		ID:        l.ID,
		TaskID:    l.TaskID,
		StartedAt: l.StartedAt,
		EndedAt:   l.EndedAt,
		Open:      l.Open(),
		Note:      l.Note,
		Manual:    l.Manual,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.EndedAt != nil {
		secs := int64(l.Duration(*l.EndedAt).Seconds())
		out.DurationSeconds = &secs
	}
	return out
}

func FromLogs(logs []entities.IntervalLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromLog(l))
	}
	return out
}

type AuditResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	LogID     string    `json:"log_id,omitempty"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditEntries(entries []entities.AuditEntry) []AuditResponse {
	out := make([]AuditResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditResponse{
			ID:        e.ID,
			TaskID:    e.TaskID,
			LogID:     e.LogID,
			Action:    string(e.Action),
			ActorID:   e.ActorID,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type VariantServiceResponse struct {
	ServiceID          string  `json:"service_id"`
	Name               string  `json:"name"`
	EstimatedTimeHours float64 `json:"estimated_time_hours"`
}

type VariantResponse struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	ProductName    string                   `json:"product_name"`
	WorkstationIDs []string                 `json:"workstation_ids"`
	Services       []VariantServiceResponse `json:"services"`
}

func FromVariants(variants []entities.Variant) []VariantResponse {
	out := make([]VariantResponse, 0, len(variants))
	for _, v := range variants {
		services := make([]VariantServiceResponse, 0, len(v.Services))
		for _, s := range v.Services {
			services = append(services, VariantServiceResponse{ServiceID: s.ServiceID, Name: s.Name, EstimatedTimeHours: s.EstimatedTimeHours})
		}
		ws := v.WorkstationIDs
		if ws == nil {
			ws = []string{}
		}
		out = append(out, VariantResponse{
			ID:             v.ID,
			Name:           v.Name,
			ProductName:    v.ProductName,
			WorkstationIDs: ws,
			Services:       services,
		})
	}
	return out
}
