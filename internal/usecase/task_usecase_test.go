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

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type taskFixture struct {
	uc       *TaskUseCase
	repo     *mock_interfaces.MockITaskRepository
	variants *mock_interfaces.MockIVariantRepository
	rates    *mock_interfaces.MockIRateLookup
}

func newTaskFixture(t *testing.T, now time.Time) taskFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockITaskRepository(ctrl)
	variants := mock_interfaces.NewMockIVariantRepository(ctrl)
	rates := mock_interfaces.NewMockIRateLookup(ctrl)
	uc := NewTaskUseCase(repo, variants, NewExclusivityGuard(repo), NewDurationAccountant(rates, 4, 2), fixedClock{now: now}, logging.Discard())
	return taskFixture{uc: uc, repo: repo, variants: variants, rates: rates}
}

func (f taskFixture) expectIdle(operatorID, workstationID string) {
	f.repo.EXPECT().GetActiveByOperator(gomock.Any(), operatorID).Return(entities.Task{}, interfaces.ErrNotFound)
	f.repo.EXPECT().GetActiveByWorkstation(gomock.Any(), workstationID).Return(entities.Task{}, interfaces.ErrNotFound)
}

func sampleVariant() entities.Variant {
	return entities.Variant{
		ID:             "v-1",
		Name:           "Oak chair",
		WorkstationIDs: []string{"ws-1"},
		Services:       []entities.VariantService{{ServiceID: "s-1", Name: "Assembly", EstimatedTimeHours: 0.5}},
	}
}

func storedTask(status entities.TaskStatus, version int64) entities.Task {
	started := at(0)
	return entities.Task{
		ID:                 "t-1",
		VariantID:          "v-1",
		ServiceID:          "s-1",
		OperatorID:         "op-1",
		WorkstationID:      "ws-1",
		Status:             status,
		EstimatedTimeHours: 0.5,
		StartedAt:          &started,
		Version:            version,
	}
}

func TestTaskUseCase_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		cases := []struct {
			op, ws, variant, service string
			want                     error
		}{
			{" ", "ws-1", "v-1", "s-1", ErrInvalidOperatorID},
			{"op-1", "", "v-1", "s-1", ErrInvalidWorkstationID},
			{"op-1", "ws-1", "", "s-1", ErrInvalidVariantID},
			{"op-1", "ws-1", "v-1", "  ", ErrInvalidServiceID},
		}
		for _, tc := range cases {
			if _, err := f.uc.Start(ctx, tc.op, tc.ws, tc.variant, tc.service); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-404").Return(entities.Variant{}, interfaces.ErrNotFound)

		_, err := f.uc.Start(ctx, "op-1", "ws-1", "v-404", "s-1")
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Kind != "variant" {
			t.Fatalf("expected variant NotFoundError, got %v", err)
		}
	})

	t.Run("variant not produced at workstation", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)

		if _, err := f.uc.Start(ctx, "op-1", "ws-9", "v-1", "s-1"); !errors.Is(err, ErrVariantUnavailable) {
			t.Fatalf("expected ErrVariantUnavailable, got %v", err)
		}
	})

	t.Run("variant without workstations starts anywhere", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		open := sampleVariant()
		open.WorkstationIDs = nil
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(open, nil)
		f.expectIdle("op-1", "ws-9")
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

		task, err := f.uc.Start(ctx, "op-1", "ws-9", "v-1", "s-1")
		if err != nil || task.WorkstationID != "ws-9" {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)

		_, err := f.uc.Start(ctx, "op-1", "ws-1", "v-1", "s-9")
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Kind != "service" {
			t.Fatalf("expected service NotFoundError, got %v", err)
		}
	})

	t.Run("operator busy", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)
		busy := storedTask(entities.TaskStatusActive, 2)
		busy.ID = "t-9"
		f.repo.EXPECT().GetActiveByOperator(gomock.Any(), "op-1").Return(busy, nil)

		_, err := f.uc.Start(ctx, "op-1", "ws-1", "v-1", "s-1")
		var conflict *ConflictError
		if !errors.As(err, &conflict) || conflict.TaskID != "t-9" {
			t.Fatalf("expected conflict naming t-9, got %v", err)
		}
	})

	t.Run("store rejects the race loser", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)
		f.expectIdle("op-1", "ws-1")
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).
			Return(&interfaces.ExclusivityViolation{TaskID: "t-7", OperatorID: "op-1", WorkstationID: "ws-1"})

		_, err := f.uc.Start(ctx, "op-1", "ws-1", "v-1", "s-1")
		var conflict *ConflictError
		if !errors.As(err, &conflict) || conflict.TaskID != "t-7" {
			t.Fatalf("expected conflict naming t-7, got %v", err)
		}
	})

	t.Run("storage failure on commit", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)
		f.expectIdle("op-1", "ws-1")
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))

		if _, err := f.uc.Start(ctx, "op-1", "ws-1", "v-1", "s-1"); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		now := at(0)
		f := newTaskFixture(t, now)
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)
		f.expectIdle("op-1", "ws-1")
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if change.ExpectedVersion != 0 || change.Task.Version != 1 {
				t.Fatalf("expected insert at version 1, got expected=%d version=%d", change.ExpectedVersion, change.Task.Version)
			}
			if change.Task.Status != entities.TaskStatusActive || change.Task.EstimatedTimeHours != 0.5 {
				t.Fatalf("unexpected task %+v", change.Task)
			}
			if len(change.UpsertLogs) != 1 || !change.UpsertLogs[0].Open() || !change.UpsertLogs[0].StartedAt.Equal(now) {
				t.Fatalf("expected one open log at now, got %+v", change.UpsertLogs)
			}
			if change.UpsertLogs[0].TaskID != change.Task.ID {
				t.Fatalf("log must belong to the new task")
			}
			return nil
		})

		task, err := f.uc.Start(ctx, " op-1 ", "ws-1", "v-1", "s-1")
		if err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		if task.ID == "" || task.OperatorID != "op-1" || task.StartedAt == nil || !task.StartedAt.Equal(now) {
			t.Fatalf("unexpected task %+v", task)
		}
	})
}

func TestTaskUseCase_ScheduleAndBegin(t *testing.T) {
	ctx := context.Background()

	t.Run("schedule writes a pending task without exclusivity", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().GetByID(gomock.Any(), "v-1").Return(sampleVariant(), nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if change.Task.Status != entities.TaskStatusPending || len(change.UpsertLogs) != 0 {
				t.Fatalf("expected pending task without logs, got %+v", change)
			}
			return nil
		})

		task, err := f.uc.Schedule(ctx, "op-1", "ws-1", "v-1", "s-1")
		if err != nil || task.Status != entities.TaskStatusPending || task.StartedAt != nil {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("begin activates a pending task", func(t *testing.T) {
		now := at(60)
		f := newTaskFixture(t, now)
		pending := storedTask(entities.TaskStatusPending, 1)
		pending.StartedAt = nil
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(pending, nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return(nil, nil)
		f.expectIdle("op-1", "ws-1")
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if change.ExpectedVersion != 1 || change.Task.Version != 2 || change.PreviousStatus != entities.TaskStatusPending {
				t.Fatalf("unexpected versioning %+v", change)
			}
			if len(change.UpsertLogs) != 1 || !change.UpsertLogs[0].Open() {
				t.Fatalf("expected an open log")
			}
			return nil
		})

		task, err := f.uc.Begin(ctx, "t-1")
		if err != nil || task.Status != entities.TaskStatusActive || !task.StartedAt.Equal(now) {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("begin on an active task", func(t *testing.T) {
		f := newTaskFixture(t, at(60))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 2), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil)

		if _, err := f.uc.Begin(ctx, "t-1"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestTaskUseCase_Pause(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the open log", func(t *testing.T) {
		now := at(600)
		f := newTaskFixture(t, now)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 2), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if change.ExpectedVersion != 2 || change.Task.Version != 3 || change.Task.Status != entities.TaskStatusPaused {
				t.Fatalf("unexpected change %+v", change)
			}
			if len(change.UpsertLogs) != 1 || change.UpsertLogs[0].ID != "l-1" || !change.UpsertLogs[0].EndedAt.Equal(now) {
				t.Fatalf("expected l-1 closed at now, got %+v", change.UpsertLogs)
			}
			return nil
		})

		task, err := f.uc.Pause(ctx, "t-1")
		if err != nil || task.Status != entities.TaskStatusPaused {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("not active", func(t *testing.T) {
		f := newTaskFixture(t, at(600))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600)}, nil)

		_, err := f.uc.Pause(ctx, "t-1")
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) || invalid.Status != entities.TaskStatusPaused || invalid.Action != "pause" {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		f := newTaskFixture(t, at(600))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-404").Return(entities.Task{}, interfaces.ErrNotFound)

		if _, err := f.uc.Pause(ctx, "t-404"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("stale commit is re-decided", func(t *testing.T) {
		f := newTaskFixture(t, at(600))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 2), nil)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 590)}, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrStaleTask)

		if _, err := f.uc.Pause(ctx, "t-1"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected the loser to see ErrInvalidState, got %v", err)
		}
	})

	t.Run("gives up after repeated stale commits", func(t *testing.T) {
		f := newTaskFixture(t, at(600))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 2), nil).Times(maxCommitAttempts)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil).Times(maxCommitAttempts)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrStaleTask).Times(maxCommitAttempts)

		if _, err := f.uc.Pause(ctx, "t-1"); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestTaskUseCase_Resume(t *testing.T) {
	ctx := context.Background()

	t.Run("operator started another task meanwhile", func(t *testing.T) {
		f := newTaskFixture(t, at(900))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600)}, nil)
		other := storedTask(entities.TaskStatusActive, 1)
		other.ID = "t-2"
		other.WorkstationID = "ws-2"
		f.repo.EXPECT().GetActiveByOperator(gomock.Any(), "op-1").Return(other, nil)

		_, err := f.uc.Resume(ctx, "t-1")
		var conflict *ConflictError
		if !errors.As(err, &conflict) || conflict.TaskID != "t-2" || conflict.WorkstationID != "ws-2" {
			t.Fatalf("expected conflict naming t-2, got %v", err)
		}
	})

	t.Run("opens a new log", func(t *testing.T) {
		now := at(900)
		f := newTaskFixture(t, now)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600)}, nil)
		f.expectIdle("op-1", "ws-1")
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if len(change.UpsertLogs) != 1 || change.UpsertLogs[0].ID == "l-1" || !change.UpsertLogs[0].StartedAt.Equal(now) {
				t.Fatalf("expected a fresh open log, got %+v", change.UpsertLogs)
			}
			return nil
		})

		task, err := f.uc.Resume(ctx, "t-1")
		if err != nil || task.Status != entities.TaskStatusActive || task.Version != 4 {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})
}

func TestTaskUseCase_Stop(t *testing.T) {
	ctx := context.Background()
	query := interfaces.RateQuery{TaskID: "t-1", WorkstationID: "ws-1", ServiceID: "s-1"}

	t.Run("freezes figures", func(t *testing.T) {
		now := at(1500)
		f := newTaskFixture(t, now)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 4), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600), openLogAt("l-2", 900)}, nil)
		f.rates.EXPECT().HourlyRate(gomock.Any(), query).Return(60.0, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if len(change.UpsertLogs) != 1 || change.UpsertLogs[0].ID != "l-2" || !change.UpsertLogs[0].EndedAt.Equal(now) {
				t.Fatalf("expected l-2 closed at now, got %+v", change.UpsertLogs)
			}
			return nil
		})

		task, err := f.uc.Stop(ctx, "t-1")
		if err != nil {
			t.Fatalf("Stop() error = %v", err)
		}
		if task.Status != entities.TaskStatusCompleted || task.CompletedAt == nil {
			t.Fatalf("expected completed task, got %+v", task)
		}
		if *task.ActualHours != 0.3333 || *task.VariancePercent != -33.34 || *task.ActualCost != 20 {
			t.Fatalf("unexpected figures %v %v %v", *task.ActualHours, *task.VariancePercent, *task.ActualCost)
		}
	})

	t.Run("stop from paused", func(t *testing.T) {
		f := newTaskFixture(t, at(5000))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusPaused, 3), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 1800)}, nil)
		f.rates.EXPECT().HourlyRate(gomock.Any(), query).Return(0.0, interfaces.ErrRateNotFound)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if len(change.UpsertLogs) != 0 {
				t.Fatalf("paused task has no open log to close")
			}
			return nil
		})

		task, err := f.uc.Stop(ctx, "t-1")
		if err != nil || *task.ActualHours != 0.5 || *task.VariancePercent != 0 || task.ActualCost != nil {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("rate lookup failure writes nothing", func(t *testing.T) {
		f := newTaskFixture(t, at(1500))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 4), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil)
		f.rates.EXPECT().HourlyRate(gomock.Any(), query).Return(0.0, errors.New("rates service down"))

		if _, err := f.uc.Stop(ctx, "t-1"); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		f := newTaskFixture(t, at(1500))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusCompleted, 5), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600)}, nil)

		if _, err := f.uc.Stop(ctx, "t-1"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestTaskUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("active task keeps its logs without figures", func(t *testing.T) {
		now := at(300)
		f := newTaskFixture(t, now)
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 2), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil)
		f.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, change interfaces.TaskChange) error {
			if len(change.UpsertLogs) != 1 || change.UpsertLogs[0].Open() {
				t.Fatalf("expected the open log to be closed")
			}
			return nil
		})

		task, err := f.uc.Cancel(ctx, "t-1")
		if err != nil || task.Status != entities.TaskStatusCancelled || task.ActualHours != nil || !task.CancelledAt.Equal(now) {
			t.Fatalf("unexpected result %+v, %v", task, err)
		}
	})

	t.Run("completed task", func(t *testing.T) {
		f := newTaskFixture(t, at(300))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusCompleted, 5), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return(nil, nil)

		if _, err := f.uc.Cancel(ctx, "t-1"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestTaskUseCase_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("idle operator", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.repo.EXPECT().GetActiveByOperator(gomock.Any(), "op-1").Return(entities.Task{}, interfaces.ErrNotFound)

		task, err := f.uc.GetActiveTask(ctx, "op-1")
		if err != nil || task != nil {
			t.Fatalf("expected nil task, got %+v, %v", task, err)
		}
	})

	t.Run("active task lookup failure", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.repo.EXPECT().GetActiveByOperator(gomock.Any(), "op-1").Return(entities.Task{}, errors.New("closed"))

		if _, err := f.uc.GetActiveTask(ctx, "op-1"); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("elapsed while running", func(t *testing.T) {
		f := newTaskFixture(t, at(1000))
		f.repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 4), nil)
		f.repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{closedLog("l-1", 0, 600), openLogAt("l-2", 900)}, nil)

		e, err := f.uc.Elapsed(ctx, "t-1")
		if err != nil {
			t.Fatalf("Elapsed() error = %v", err)
		}
		if e.ElapsedSeconds != 700 || !e.Running || !e.OpenLogStartedAt.Equal(at(900)) || !e.ServerTime.Equal(at(1000)) {
			t.Fatalf("unexpected elapsed %+v", e)
		}
	})

	t.Run("variants by workstation", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.variants.EXPECT().ListByWorkstation(gomock.Any(), "ws-1").Return([]entities.Variant{sampleVariant()}, nil)

		variants, err := f.uc.ListAvailableVariants(ctx, "ws-1")
		if err != nil || len(variants) != 1 {
			t.Fatalf("unexpected result %+v, %v", variants, err)
		}
		if _, err := f.uc.ListAvailableVariants(ctx, " "); !errors.Is(err, ErrInvalidWorkstationID) {
			t.Fatalf("expected ErrInvalidWorkstationID, got %v", err)
		}
	})

	t.Run("operator history", func(t *testing.T) {
		f := newTaskFixture(t, at(0))
		f.repo.EXPECT().ListByOperator(gomock.Any(), "op-1").Return([]entities.Task{storedTask(entities.TaskStatusCompleted, 5)}, nil)

		tasks, err := f.uc.ListOperatorTasks(ctx, "op-1")
		if err != nil || len(tasks) != 1 {
			t.Fatalf("unexpected result %+v, %v", tasks, err)
		}
	})
}

func TestTaskUseCase_UsesInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockITaskRepository(ctrl)
	clock := mock_interfaces.NewMockIClock(ctrl)
	uc := NewTaskUseCase(repo, nil, NewExclusivityGuard(repo), NewDurationAccountant(nil, 0, 0), clock, logging.Discard())

	clock.EXPECT().Now().Return(at(42))
	repo.EXPECT().GetTask(gomock.Any(), "t-1").Return(storedTask(entities.TaskStatusActive, 2), nil)
	repo.EXPECT().ListLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{openLogAt("l-1", 0)}, nil)
	repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	task, err := uc.Pause(context.Background(), "t-1")
	if err != nil || !task.UpdatedAt.Equal(at(42)) {
		t.Fatalf("expected updated_at from the clock, got %+v, %v", task, err)
	}
}
