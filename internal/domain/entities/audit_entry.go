package entities

import "time"

type AuditAction string

const (
	AuditLogEdited    AuditAction = "log_edited"
	AuditLogDeleted   AuditAction = "log_deleted"
	AuditLogInserted  AuditAction = "log_inserted"
	AuditTaskReopened AuditAction = "task_reopened"
)

// AuditEntry records one privileged correction. It is committed in the same
// unit as the change it describes.
type AuditEntry struct {
	ID        string      `json:"id"`
	TaskID    string      `json:"task_id"`
	LogID     string      `json:"log_id,omitempty"`
	Action    AuditAction `json:"action"`
	ActorID   string      `json:"actor_id"`
	Reason    string      `json:"reason,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
