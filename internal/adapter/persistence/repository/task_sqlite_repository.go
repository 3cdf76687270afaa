package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"
)

const taskColumns = `id, variant_id, service_id, operator_id, workstation_id, status, estimated_time_hours,
	started_at, completed_at, cancelled_at, actual_hours, variance_percent, actual_cost, version, created_at, updated_at`

const logColumns = `id, task_id, started_at, ended_at, note, manual, created_at, updated_at`

// TaskSQLiteRepository persists tasks, interval logs and audit entries in
// SQLite. Commit runs the exclusivity check, the version check and all writes
// in one IMMEDIATE transaction.
type TaskSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ITaskRepository = (*TaskSQLiteRepository)(nil)

func NewTaskSQLiteRepository(db *sql.DB) *TaskSQLiteRepository {
	return &TaskSQLiteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func (r *TaskSQLiteRepository) GetTask(ctx context.Context, id string) (entities.Task, error) {
	return getTask(ctx, r.db, `WHERE id = ?`, id)
}

func (r *TaskSQLiteRepository) GetActiveByOperator(ctx context.Context, operatorID string) (entities.Task, error) {
	return getTask(ctx, r.db, `WHERE operator_id = ? AND status = 'active'`, operatorID)
}

func (r *TaskSQLiteRepository) GetActiveByWorkstation(ctx context.Context, workstationID string) (entities.Task, error) {
	return getTask(ctx, r.db, `WHERE workstation_id = ? AND status = 'active'`, workstationID)
}

func (r *TaskSQLiteRepository) ListByOperator(ctx context.Context, operatorID string) ([]entities.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE operator_id = ? ORDER BY created_at DESC, id`, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskSQLiteRepository) ListLogs(ctx context.Context, taskID string) ([]entities.IntervalLog, error) {
	return listLogs(ctx, r.db, taskID)
}

func (r *TaskSQLiteRepository) GetLog(ctx context.Context, logID string) (entities.IntervalLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+logColumns+` FROM interval_logs WHERE id = ?`, logID)
	l, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.IntervalLog{}, interfaces.ErrNotFound
	}
	return l, err
}

func (r *TaskSQLiteRepository) ListAudit(ctx context.Context, taskID string) ([]entities.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, log_id, action, actor_id, reason, created_at
		FROM audit_entries
		WHERE task_id = ?
		ORDER BY created_at ASC, id ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.AuditEntry, 0)
	for rows.Next() {
		var (
			e          entities.AuditEntry
			action     string
			createdRaw string
		)
		if err := rows.Scan(&e.ID, &e.TaskID, &e.LogID, &action, &e.ActorID, &e.Reason, &createdRaw); err != nil {
			return nil, err
		}
		e.Action = entities.AuditAction(action)
		e.CreatedAt = parseTS(createdRaw)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TaskSQLiteRepository) Commit(ctx context.Context, change interfaces.TaskChange) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	t := change.Task
	if t.Status == entities.TaskStatusActive {
		if err = checkExclusive(ctx, tx, t); err != nil {
			return err
		}
	}

	if change.ExpectedVersion == 0 {
		err = insertTask(ctx, tx, t)
	} else {
		err = updateTask(ctx, tx, t, change.ExpectedVersion)
	}
	if err != nil {
		return translateTaskWriteErr(err, t)
	}

	for _, id := range change.DeleteLogIDs {
		if _, err = tx.ExecContext(ctx, `DELETE FROM interval_logs WHERE id = ? AND task_id = ?`, id, t.ID); err != nil {
			return err
		}
	}
	for _, l := range change.UpsertLogs {
		if err = upsertLog(ctx, tx, t.ID, l); err != nil {
			if isUniqueConstraintErr(err, "interval_logs.task_id") {
				err = fmt.Errorf("second open log for task %s: %w", t.ID, interfaces.ErrStaleTask)
			}
			return err
		}
	}
	if change.Audit != nil {
		a := change.Audit
		_, err = tx.ExecContext(ctx, `
			INSERT INTO audit_entries(id, task_id, log_id, action, actor_id, reason, created_at)
			VALUES(?, ?, ?, ?, ?, ?, ?)
		`, a.ID, t.ID, a.LogID, string(a.Action), a.ActorID, a.Reason, ts(a.CreatedAt))
		if err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

// checkExclusive re-runs the guard query inside the commit transaction.
func checkExclusive(ctx context.Context, q queryer, t entities.Task) error {
	var v interfaces.ExclusivityViolation
	err := q.QueryRowContext(ctx, `
		SELECT id, operator_id, workstation_id
		FROM tasks
		WHERE status = 'active' AND id <> ? AND (operator_id = ? OR workstation_id = ?)
		LIMIT 1
	`, t.ID, t.OperatorID, t.WorkstationID).Scan(&v.TaskID, &v.OperatorID, &v.WorkstationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return &v
}

func insertTask(ctx context.Context, tx *sql.Tx, t entities.Task) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO tasks(`+taskColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.VariantID, t.ServiceID, t.OperatorID, t.WorkstationID, string(t.Status), t.EstimatedTimeHours,
		nullableTS(t.StartedAt), nullableTS(t.CompletedAt), nullableTS(t.CancelledAt),
		nullableFloat(t.ActualHours), nullableFloat(t.VariancePercent), nullableFloat(t.ActualCost),
		t.Version, ts(t.CreatedAt), ts(t.UpdatedAt),
	)
	return err
}

// updateTask writes the mutable task fields when the stored version matches.
// Identity, estimate and creation time are never rewritten.
func updateTask(ctx context.Context, tx *sql.Tx, t entities.Task, expectedVersion int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE tasks
		SET status = ?, started_at = ?, completed_at = ?, cancelled_at = ?,
		    actual_hours = ?, variance_percent = ?, actual_cost = ?, version = ?, updated_at = ?
		WHERE id = ? AND version = ?
	`,
		string(t.Status), nullableTS(t.StartedAt), nullableTS(t.CompletedAt), nullableTS(t.CancelledAt),
		nullableFloat(t.ActualHours), nullableFloat(t.VariancePercent), nullableFloat(t.ActualCost),
		t.Version, ts(t.UpdatedAt),
		t.ID, expectedVersion,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM tasks WHERE id = ?`, t.ID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return interfaces.ErrNotFound
	}
	return interfaces.ErrStaleTask
}

func upsertLog(ctx context.Context, tx *sql.Tx, taskID string, l entities.IntervalLog) error {
	manual := 0
	if l.Manual {
		manual = 1
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO interval_logs(`+logColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			note = excluded.note,
			updated_at = excluded.updated_at
		WHERE interval_logs.task_id = excluded.task_id
	`, l.ID, taskID, ts(l.StartedAt), nullableTS(l.EndedAt), l.Note, manual, ts(l.CreatedAt), ts(l.UpdatedAt))
	return err
}

// translateTaskWriteErr maps constraint failures on the active indexes to the
// exclusivity contract error.
func translateTaskWriteErr(err error, t entities.Task) error {
	switch {
	case isUniqueConstraintErr(err, "tasks.operator_id"), isUniqueConstraintErr(err, "tasks.workstation_id"):
		return fmt.Errorf("task %s: %w", t.ID, interfaces.ErrExclusivity)
	case isUniqueConstraintErr(err, "tasks.id"):
		return fmt.Errorf("task %s already exists: %w", t.ID, interfaces.ErrStaleTask)
	}
	return err
}

func getTask(ctx context.Context, q queryer, where string, arg any) (entities.Task, error) {
	row := q.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks `+where+` LIMIT 1`, arg)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Task{}, interfaces.ErrNotFound
	}
	return t, err
}

func listLogs(ctx context.Context, q queryer, taskID string) ([]entities.IntervalLog, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+logColumns+` FROM interval_logs WHERE task_id = ? ORDER BY started_at ASC, id ASC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.IntervalLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanTask(s scanner) (entities.Task, error) {
	var (
		t            entities.Task
		status       string
		startedRaw   sql.NullString
		completedRaw sql.NullString
		cancelledRaw sql.NullString
		actualHours  sql.NullFloat64
		variance     sql.NullFloat64
		actualCost   sql.NullFloat64
		createdRaw   string
		updatedRaw   string
	)
	if err := s.Scan(
		&t.ID, &t.VariantID, &t.ServiceID, &t.OperatorID, &t.WorkstationID, &status, &t.EstimatedTimeHours,
		&startedRaw, &completedRaw, &cancelledRaw, &actualHours, &variance, &actualCost, &t.Version, &createdRaw, &updatedRaw,
	); err != nil {
		return entities.Task{}, err
	}
	t.Status = entities.TaskStatus(status)
	t.StartedAt = parseNullTS(startedRaw)
	t.CompletedAt = parseNullTS(completedRaw)
	t.CancelledAt = parseNullTS(cancelledRaw)
	t.ActualHours = parseNullFloat(actualHours)
	t.VariancePercent = parseNullFloat(variance)
	t.ActualCost = parseNullFloat(actualCost)
	t.CreatedAt = parseTS(createdRaw)
	t.UpdatedAt = parseTS(updatedRaw)
	return t, nil
}

func scanLog(s scanner) (entities.IntervalLog, error) {
	var (
		l          entities.IntervalLog
		startedRaw string
		endedRaw   sql.NullString
		manual     int
		createdRaw string
		updatedRaw string
	)
	if err := s.Scan(&l.ID, &l.TaskID, &startedRaw, &endedRaw, &l.Note, &manual, &createdRaw, &updatedRaw); err != nil {
		return entities.IntervalLog{}, err
	}
	l.StartedAt = parseTS(startedRaw)
	l.EndedAt = parseNullTS(endedRaw)
	l.Manual = manual == 1
	l.CreatedAt = parseTS(createdRaw)
	l.UpdatedAt = parseTS(updatedRaw)
	return l, nil
}
