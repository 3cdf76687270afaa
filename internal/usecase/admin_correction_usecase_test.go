package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/infrastructure/logging"
	"rcp_tracker/internal/usecase/interfaces"
	mock_interfaces "rcp_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type adminFixture struct {
	uc    *AdminCorrectionUseCase
	repo  *mock_interfaces.MockITaskRepository
	rates *mock_interfaces.MockIRateLookup
}

func newAdminFixture(t *testing.T, now time.Time) adminFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockITaskRepository(ctrl)
	rates := mock_interfaces.NewMockIRateLookup(ctrl)
	uc := NewAdminCorrectionUseCase(repo, NewExclusivityGuard(repo), NewDurationAccountant(rates, 4, 2), fixedClock{now: now}, logging.Discard())
	return adminFixture{uc: uc, repo: repo, rates: rates}
}

func completedTask() entities.Task {
	task := storedTask(entities.TaskStatusCompleted, 5)
	task.ApplyFigures(entities.Figures{ActualHours: 0.3333, VariancePercent: ptrFloat(-33.34), ActualCost: ptrFloat(20)})
	return task
}

func (f adminFixture) expectCompletedHistory() {
	f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(completedTask(), nil)
	f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600), closedLog("l-2", 900, 1500)}, nil)
}

func TestAdminCorrectionUseCase_EditLog(t *testing.T) {
	ctx := context.Background()
	query := interfaces.RateQuery{TaskID: "t-1", WorkstationID: "ws-1", ServiceID: "s-1"}

	t.Run("empty patch", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		if _, err := f.uc.EditLog(ctx, "adm", "l-1", LogPatch{}, "typo"); !errors.Is(err, ErrInvalidLogPatch) {
			t.Fatalf("expected ErrInvalidLogPatch, got %v", err)
		}
	})

	t.Run("unknown log", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.repo.EXPECT().GetLog(gomock.Any(), "l-404").Return(entities.IntervalLog{}, interfaces.ErrNotFound)

		end := at(100)
		if _, err := f.uc.EditLog(ctx, "adm", "l-404", LogPatch{EndedAt: &end}, "typo"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("active task is off limits", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.repo.EXPECT().GetLog(gomock.Any(), "l-1").Return(closedLog("l-1", 0, 600), nil)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 4), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600), openLogAt("l-2", 900)}, nil)

		end := at(500)
		if _, err := f.uc.EditLog(ctx, "adm", "l-1", LogPatch{EndedAt: &end}, "typo"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("overlap writes nothing", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.repo.EXPECT().GetLog(gomock.Any(), "l-1").Return(closedLog("l-1", 0, 600), nil)
		f.expectCompletedHistory()

		end := at(1000)
		_, err := f.uc.EditLog(ctx, "adm", "l-1", LogPatch{EndedAt: &end}, "typo")
		var overlap *OverlapError
		if !errors.As(err, &overlap) || overlap.TaskID != "t-1" {
			t.Fatalf("expected OverlapError, got %v", err)
		}
	})

	t.Run("future timestamps", func(t *testing.T) {
		f := newAdminFixture(t, at(2000))
		f.repo.EXPECT().GetLog(gomock.Any(), "l-2").Return(closedLog("l-2", 900, 1500), nil)
		f.expectCompletedHistory()

		end := at(3000)
		if _, err := f.uc.EditLog(ctx, "adm", "l-2", LogPatch{EndedAt: &end}, "typo"); !errors.Is(err, ErrInvalidLogPatch) {
			t.Fatalf("expected ErrInvalidLogPatch, got %v", err)
		}
	})

	t.Run("completed task gets refreshed figures and an audit entry", func(t *testing.T) {
		now := at(10000)
		f := newAdminFixture(t, now)
		f.repo.EXPECT().GetLog(gomock.Any(), "l-2").Return(closedLog("l-2", 900, 1500), nil)
		f.expectCompletedHistory()
		f.rates.EXPECT().HourlyRate(gomock.Any(), query).Return(60.0, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if change.ExpectedVersion != 5 || change.Task.Version != 6 {
				t.Fatalf("unexpected versioning %+v", change)
			}
			if len(change.UpsertLogs) != 1 || !change.UpsertLogs[0].EndedAt.Equal(at(2700)) || change.UpsertLogs[0].Note != "forgot to stop" {
				t.Fatalf("unexpected edited log %+v", change.UpsertLogs)
			}
			a := change.Audit
			if a == nil || a.Action != entities.AuditLogEdited || a.ActorID != "adm" || a.LogID != "l-2" || a.Reason != "shift report" || !a.CreatedAt.Equal(now) {
				t.Fatalf("unexpected audit %+v", a)
			}
			return nil
		})

		end := at(2700)
		note := " forgot to stop "
		task, err := f.uc.EditLog(ctx, "adm", "l-2", LogPatch{EndedAt: &end, Note: &note}, "shift report")
		if err != nil {
			t.Fatalf("EditLog() error = %v", err)
		}
		// 600s + 1800s = 2400s
		if *task.ActualHours != 0.6667 || *task.VariancePercent != 33.34 || *task.ActualCost != 40 {
			t.Fatalf("unexpected figures %v %v %v", *task.ActualHours, *task.VariancePercent, *task.ActualCost)
		}
	})

	t.Run("paused task keeps nil figures", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.repo.EXPECT().GetLog(gomock.Any(), "l-1").Return(closedLog("l-1", 0, 600), nil)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600)}, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

		start := at(60)
		task, err := f.uc.EditLog(ctx, "adm", "l-1", LogPatch{StartedAt: &start}, "late start")
		if err != nil || task.ActualHours != nil {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})
}

func TestAdminCorrectionUseCase_DeleteAndInsert(t *testing.T) {
	ctx := context.Background()
	query := interfaces.RateQuery{TaskID: "t-1", WorkstationID: "ws-1", ServiceID: "s-1"}

	t.Run("delete recomputes", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.repo.EXPECT().GetLog(gomock.Any(), "l-1").Return(closedLog("l-1", 0, 600), nil)
		f.expectCompletedHistory()
		f.rates.EXPECT().HourlyRate(gomock.Any(), query).Return(0.0, interfaces.ErrRateNotFound)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if len(change.DeleteLogIDs) != 1 || change.DeleteLogIDs[0] != "l-1" || change.Audit.Action != entities.AuditLogDeleted {
				t.Fatalf("unexpected change %+v", change)
			}
			return nil
		})

		task, err := f.uc.DeleteLog(ctx, "adm", "l-1", "duplicate")
		if err != nil || *task.ActualHours != 0.1667 || task.ActualCost != nil {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("insert overlap", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.expectCompletedHistory()

		if _, err := f.uc.InsertLog(ctx, "adm", "t-1", at(500), at(800), "", "missed"); !errors.Is(err, ErrOverlap) {
			t.Fatalf("expected ErrOverlap, got %v", err)
		}
	})

	t.Run("insert manual log", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.expectCompletedHistory()
		f.rates.EXPECT().HourlyRate(gomock.Any(), query).Return(60.0, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			l := change.UpsertLogs[0]
			if !l.Manual || l.TaskID != "t-1" || l.Open() || change.Audit.LogID != l.ID || change.Audit.Action != entities.AuditLogInserted {
				t.Fatalf("unexpected change %+v", change)
			}
			return nil
		})

		task, err := f.uc.InsertLog(ctx, "adm", "t-1", at(1500), at(3900), "night shift", "missed")
		if err != nil || *task.ActualHours != 1 || *task.ActualCost != 60 {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("insert requires both ends", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		if _, err := f.uc.InsertLog(ctx, "adm", "t-1", at(0), time.Time{}, "", "missed"); !errors.Is(err, ErrInvalidLogPatch) {
			t.Fatalf("expected ErrInvalidLogPatch, got %v", err)
		}
	})
}

func TestAdminCorrectionUseCase_Reopen(t *testing.T) {
	ctx := context.Background()

	t.Run("only completed tasks", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return(nil, nil)

		if _, err := f.uc.Reopen(ctx, "adm", "t-1", "wrong stop"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("operator busy elsewhere", func(t *testing.T) {
		f := newAdminFixture(t, at(10000))
		f.expectCompletedHistory()
		other := storedTask(entities.TaskStatusActive, 1)
		other.ID = "t-2"
		f.repo.EXPECT().GetActiveByOperator(gomock.Any(), "op-1").Return(other, nil)

		if _, err := f.uc.Reopen(ctx, "adm", "t-1", "wrong stop"); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("clears figures and opens a log", func(t *testing.T) {
		now := at(10000)
		f := newAdminFixture(t, now)
		f.expectCompletedHistory()
		f.repo.EXPECT().GetActiveByOperator(gomock.Any(), "op-1").Return(entities.Task{}, interfaces.ErrNotFound)
		f.repo.EXPECT().GetActiveByWorkstation(gomock.Any(), "ws-1").Return(entities.Task{}, interfaces.ErrNotFound)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if len(change.UpsertLogs) != 1 || !change.UpsertLogs[0].Open() || !change.UpsertLogs[0].StartedAt.Equal(now) {
				t.Fatalf("expected an open log at now, got %+v", change.UpsertLogs)
			}
			if change.Audit == nil || change.Audit.Action != entities.AuditTaskReopened || change.Audit.Reason != "wrong stop" {
				t.Fatalf("unexpected audit %+v", change.Audit)
			}
			return nil
		})

		task, err := f.uc.Reopen(ctx, "adm", "t-1", "wrong stop")
		if err != nil {
			t.Fatalf("Reopen() error = %v", err)
		}
		if task.Status != entities.TaskStatusActive || task.CompletedAt != nil || task.ActualHours != nil || task.VariancePercent != nil || task.ActualCost != nil {
			t.Fatalf("unexpected task %+v", task)
		}
	})
}

func TestAdminCorrectionUseCase_Reads(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t, at(0))
	f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(completedTask(), nil).Times(2)
	f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-2", 900, 1500), closedLog("l-1", 0, 600)}, nil)
	f.repo.EXPECT().ListAudit(gomock.Any(), "t-1").Return([]entities.AuditEntry{{ID: "a-1", TaskID: "t-1"}}, nil)

	logs, err := f.uc.GetTaskLogs(ctx, "t-1")
	if err != nil || len(logs) != 2 || logs[0].ID != "l-1" {
		t.Fatalf("expected sorted logs, got %+v, %v", logs, err)
	}
	entries, err := f.uc.GetAuditTrail(ctx, "t-1")
	if err != nil || len(entries) != 1 {
		t.Fatalf("unexpected audit %+v, %v", entries, err)
	}
	if _, err := f.uc.GetAuditTrail(ctx, ""); !errors.Is(err, ErrInvalidTaskID) {
		t.Fatalf("expected ErrInvalidTaskID, got %v", err)
	}

	f.repo.EXPECT().GetTask(gomock.Any(), "t-404").Return(entities.Task{}, interfaces.ErrNotFound)
	_, err = f.uc.GetAuditTrail(ctx, "t-404")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "task" {
		t.Fatalf("expected task NotFoundError for unknown task audit, got %v", err)
	}
}
