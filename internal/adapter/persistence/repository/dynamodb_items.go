package repository

import (
	"time"

	"rcp_tracker/internal/domain/entities"
)

const (
	defaultTasksTableName    = "rcp_tasks"
	defaultLogsTableName     = "rcp_interval_logs"
	defaultLocksTableName    = "rcp_active_locks"
	defaultAuditTableName    = "rcp_audit_entries"
	defaultVariantsTableName = "rcp_variants"

	tasksOperatorIndex = "operator_id-index"
	logsIDIndex        = "id-index"
)

// DynamoTables names the tables used by the DynamoDB adapters.
type DynamoTables struct {
	Tasks    string
	Logs     string
	Locks    string
	Audit    string
	Variants string
}

func (t DynamoTables) withDefaults() DynamoTables {
	if t.Tasks == "" {
		t.Tasks = defaultTasksTableName
	}
	if t.Logs == "" {
		t.Logs = defaultLogsTableName
	}
	if t.Locks == "" {
		t.Locks = defaultLocksTableName
	}
	if t.Audit == "" {
		t.Audit = defaultAuditTableName
	}
	if t.Variants == "" {
		t.Variants = defaultVariantsTableName
	}
	return t
}

type taskItem struct {
	ID                 string   `dynamodbav:"id"`
	VariantID          string   `dynamodbav:"variant_id"`
	ServiceID          string   `dynamodbav:"service_id"`
	OperatorID         string   `dynamodbav:"operator_id"`
	WorkstationID      string   `dynamodbav:"workstation_id"`
	Status             string   `dynamodbav:"status"`
	EstimatedTimeHours float64  `dynamodbav:"estimated_time_hours"`
	StartedAt          string   `dynamodbav:"started_at,omitempty"`
	CompletedAt        string   `dynamodbav:"completed_at,omitempty"`
	CancelledAt        string   `dynamodbav:"cancelled_at,omitempty"`
	ActualHours        *float64 `dynamodbav:"actual_hours,omitempty"`
	VariancePercent    *float64 `dynamodbav:"variance_percent,omitempty"`
	ActualCost         *float64 `dynamodbav:"actual_cost,omitempty"`
	Version            int64    `dynamodbav:"version"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// logItem: PK task_id, SK id, GSI id-index (PK id).
type logItem struct {
	TaskID    string `dynamodbav:"task_id"`
	ID        string `dynamodbav:"id"`
	StartedAt string `dynamodbav:"started_at"`
	EndedAt   string `dynamodbav:"ended_at,omitempty"`
	Note      string `dynamodbav:"note,omitempty"`
	Manual    bool   `dynamodbav:"manual"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// lockItem marks an operator or workstation as busy with an active task.
// PK lock_key: "operator#<id>" or "workstation#<id>".
type lockItem struct {
	LockKey       string `dynamodbav:"lock_key"`
	TaskID        string `dynamodbav:"task_id"`
	OperatorID    string `dynamodbav:"operator_id"`
	WorkstationID string `dynamodbav:"workstation_id"`
	AcquiredAt    string `dynamodbav:"acquired_at"`
}

// auditItem: PK task_id, SK id.
type auditItem struct {
	TaskID    string `dynamodbav:"task_id"`
	ID        string `dynamodbav:"id"`
	LogID     string `dynamodbav:"log_id,omitempty"`
	Action    string `dynamodbav:"action"`
	ActorID   string `dynamodbav:"actor_id"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type variantItem struct {
	ID             string                `dynamodbav:"id"`
	Name           string                `dynamodbav:"name"`
	ProductName    string                `dynamodbav:"product_name"`
	WorkstationIDs []string              `dynamodbav:"workstation_ids"`
	Services       []variantServiceItem `dynamodbav:"services"`
}

type variantServiceItem struct {
	ServiceID          string  `dynamodbav:"service_id"`
	Name               string  `dynamodbav:"name"`
	EstimatedTimeHours float64 `dynamodbav:"estimated_time_hours"`
}

func operatorLockKey(operatorID string) string {
	return "operator#" + operatorID
}

func workstationLockKey(workstationID string) string {
	return "workstation#" + workstationID
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:                 t.ID,
		VariantID:          t.VariantID,
		ServiceID:          t.ServiceID,
		OperatorID:         t.OperatorID,
		WorkstationID:      t.WorkstationID,
		Status:             string(t.Status),
		EstimatedTimeHours: t.EstimatedTimeHours,
		StartedAt:          optionalTS(t.StartedAt),
		CompletedAt:        optionalTS(t.CompletedAt),
		CancelledAt:        optionalTS(t.CancelledAt),
		ActualHours:        t.ActualHours,
		VariancePercent:    t.VariancePercent,
		ActualCost:         t.ActualCost,
		Version:            t.Version,
		CreatedAt:          ts(t.CreatedAt),
		UpdatedAt:          ts(t.UpdatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:                 it.ID,
		VariantID:          it.VariantID,
		ServiceID:          it.ServiceID,
		OperatorID:         it.OperatorID,
		WorkstationID:      it.WorkstationID,
		Status:             entities.TaskStatus(it.Status),
		EstimatedTimeHours: it.EstimatedTimeHours,
		StartedAt:          parseOptionalTS(it.StartedAt),
		CompletedAt:        parseOptionalTS(it.CompletedAt),
		CancelledAt:        parseOptionalTS(it.CancelledAt),
		ActualHours:        it.ActualHours,
		VariancePercent:    it.VariancePercent,
		ActualCost:         it.ActualCost,
		Version:            it.Version,
		CreatedAt:          parseTS(it.CreatedAt),
		UpdatedAt:          parseTS(it.UpdatedAt),
	}
}

func toLogItem(taskID string, l entities.IntervalLog) logItem {
	return logItem{
		TaskID:    taskID,
		ID:        l.ID,
		StartedAt: ts(l.StartedAt),
		EndedAt:   optionalTS(l.EndedAt),
		Note:      l.Note,
		Manual:    l.Manual,
		CreatedAt: ts(l.CreatedAt),
		UpdatedAt: ts(l.UpdatedAt),
	}
}

func fromLogItem(it logItem) entities.IntervalLog {
	return entities.IntervalLog{
		ID:        it.ID,
		TaskID:    it.TaskID,
		StartedAt: parseTS(it.StartedAt),
		EndedAt:   parseOptionalTS(it.EndedAt),
		Note:      it.Note,
		Manual:    it.Manual,
		CreatedAt: parseTS(it.CreatedAt),
		UpdatedAt: parseTS(it.UpdatedAt),
	}
}

func newLockItem(key string, t entities.Task, now time.Time) lockItem {
	return lockItem{
		LockKey:       key,
		TaskID:        t.ID,
		OperatorID:    t.OperatorID,
		WorkstationID: t.WorkstationID,
		AcquiredAt:    ts(now),
	}
}

func toAuditItem(taskID string, a entities.AuditEntry) auditItem {
	return auditItem{
		TaskID:    taskID,
		ID:        a.ID,
		LogID:     a.LogID,
		Action:    string(a.Action),
		ActorID:   a.ActorID,
		Reason:    a.Reason,
		CreatedAt: ts(a.CreatedAt),
	}
}

func fromAuditItem(it auditItem) entities.AuditEntry {
	return entities.AuditEntry{
		ID:        it.ID,
		TaskID:    it.TaskID,
		LogID:     it.LogID,
		Action:    entities.AuditAction(it.Action),
		ActorID:   it.ActorID,
		Reason:    it.Reason,
		CreatedAt: parseTS(it.CreatedAt),
	}
}

func toVariantItem(v entities.Variant) variantItem {
	services := make([]variantServiceItem, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, variantServiceItem(s))
	}
	ws := v.WorkstationIDs
	if ws == nil {
		ws = []string{}
	}
	return variantItem{ID: v.ID, Name: v.Name, ProductName: v.ProductName, WorkstationIDs: ws, Services: services}
}

func fromVariantItem(it variantItem) entities.Variant {
	services := make([]entities.VariantService, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.VariantService(s))
	}
	ws := it.WorkstationIDs
	if ws == nil {
		ws = []string{}
	}
	return entities.Variant{ID: it.ID, Name: it.Name, ProductName: it.ProductName, WorkstationIDs: ws, Services: services}
}
