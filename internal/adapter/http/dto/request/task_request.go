package request

import "strings"

// StartTaskRequest is the payload of POST /tasks and POST /tasks/schedule.
// The operator comes from the caller identity, never from the body.
type StartTaskRequest struct {
	WorkstationID string `json:"workstation_id" binding:"required"`
	VariantID     string `json:"variant_id" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required"`
}

func (r StartTaskRequest) ResolveWorkstationID() string {
	return strings.TrimSpace(r.WorkstationID)
}

func (r StartTaskRequest) ResolveVariantID() string {
	return strings.TrimSpace(r.VariantID)
}

func (r StartTaskRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}
