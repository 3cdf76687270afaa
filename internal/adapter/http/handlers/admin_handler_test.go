package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rcp_tracker/internal/adapter/http/handlers/mocks"
	"rcp_tracker/internal/adapter/http/middleware"
	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(h *AdminHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.WithActor(adminActor))
	r.GET("/v1/admin/tasks/:task_id/logs", h.GetTaskLogs)
	r.POST("/v1/admin/tasks/:task_id/logs", h.InsertLog)
	r.GET("/v1/admin/tasks/:task_id/audit", h.GetAuditTrail)
	r.POST("/v1/admin/tasks/:task_id/reopen", h.ReopenTask)
	r.PATCH("/v1/admin/logs/:log_id", h.EditLog)
	r.DELETE("/v1/admin/logs/:log_id", h.DeleteLog)
	return r
}

func TestAdminHandler_EditLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reason required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		w := serve(r, http.MethodPatch, "/v1/admin/logs/l-1", `{"ended_at":"2024-03-01T10:00:00Z"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "REASON_REQUIRED" {
			t.Fatalf("expected REASON_REQUIRED")
		}
	})

	t.Run("overlap maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().EditLog(gomock.Any(), "adm-1", "l-1", gomock.Any(), "fix").Return(entities.Task{}, &usecase.OverlapError{TaskID: "t-1", LogID: "l-2", Reason: "intervals intersect"})

		w := serve(r, http.MethodPatch, "/v1/admin/logs/l-1", `{"ended_at":"2024-03-01T10:00:00Z","reason":"fix"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["log_id"] != "l-2" {
			t.Fatalf("unexpected details %v", details)
		}
	})

	t.Run("active task maps to invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().EditLog(gomock.Any(), "adm-1", "l-1", gomock.Any(), "fix").Return(entities.Task{}, &usecase.InvalidStateError{TaskID: "t-1", Status: entities.TaskStatusActive, Action: "edit log"})

		w := serve(r, http.MethodPatch, "/v1/admin/logs/l-1", `{"note":"x","reason":"fix"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success passes the patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().EditLog(gomock.Any(), "adm-1", "l-1", gomock.Any(), "fix").DoAndReturn(
			func(_ context.Context, _ string, _ string, patch usecase.LogPatch, _ string) (entities.Task, error) {
				if patch.EndedAt == nil || patch.StartedAt != nil || patch.Note != nil {
					t.Fatalf("unexpected patch %#v", patch)
				}
				return entities.Task{ID: "t-1", Status: entities.TaskStatusCompleted}, nil
			})

		w := serve(r, http.MethodPatch, "/v1/admin/logs/l-1", `{"ended_at":"2024-03-01T10:00:00Z","reason":"fix"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_DeleteLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reason from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().DeleteLog(gomock.Any(), "adm-1", "l-1", "duplicate").Return(entities.Task{ID: "t-1"}, nil)

		w := serve(r, http.MethodDelete, "/v1/admin/logs/l-1?reason=duplicate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().DeleteLog(gomock.Any(), "adm-1", "l-9", "duplicate").Return(entities.Task{}, &usecase.NotFoundError{Kind: "log", ID: "l-9"})

		w := serve(r, http.MethodDelete, "/v1/admin/logs/l-9?reason=duplicate", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAdminHandler_InsertLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		w := serve(r, http.MethodPost, "/v1/admin/tasks/t-1/logs", `{"reason":"forgot"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		end := start.Add(30 * time.Minute)
		uc.EXPECT().InsertLog(gomock.Any(), "adm-1", "t-1", start, end, "offline work", "forgot").Return(entities.Task{ID: "t-1", Status: entities.TaskStatusPaused}, nil)

		w := serve(r, http.MethodPost, "/v1/admin/tasks/t-1/logs", `{"started_at":"2024-03-01T08:00:00Z","ended_at":"2024-03-01T08:30:00Z","note":"offline work","reason":"forgot"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestAdminHandler_Reopen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().Reopen(gomock.Any(), "adm-1", "t-1", "stopped by mistake").Return(entities.Task{}, &usecase.ConflictError{TaskID: "t-2", OperatorID: "op-1", WorkstationID: "ws-1"})

		w := serve(r, http.MethodPost, "/v1/admin/tasks/t-1/reopen", `{"reason":"stopped by mistake"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
		r := newAdminRouter(NewAdminHandler(uc))

		uc.EXPECT().Reopen(gomock.Any(), "adm-1", "t-1", "stopped by mistake").Return(entities.Task{ID: "t-1", Status: entities.TaskStatusActive}, nil)

		w := serve(r, http.MethodPost, "/v1/admin/tasks/t-1/reopen", `{"reason":"stopped by mistake"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["status"] != "active" {
			t.Fatalf("expected active task")
		}
	})
}

func TestAdminHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminCorrectionUseCase(ctrl)
	r := newAdminRouter(NewAdminHandler(uc))

	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Minute)
	uc.EXPECT().GetTaskLogs(gomock.Any(), "t-1").Return([]entities.IntervalLog{{ID: "l-1", TaskID: "t-1", StartedAt: start, EndedAt: &end}}, nil)
	uc.EXPECT().GetAuditTrail(gomock.Any(), "t-1").Return([]entities.AuditEntry{{ID: "a-1", TaskID: "t-1", Action: entities.AuditLogEdited}}, nil)

	if w := serve(r, http.MethodGet, "/v1/admin/tasks/t-1/logs", ""); w.Code != http.StatusOK {
		t.Fatalf("logs: expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/admin/tasks/t-1/audit", ""); w.Code != http.StatusOK {
		t.Fatalf("audit: expected 200, got %d", w.Code)
	}
}
