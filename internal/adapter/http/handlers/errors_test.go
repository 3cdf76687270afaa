package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"rcp_tracker/internal/usecase"
)

func TestMapTaskError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "conflict", err: &usecase.ConflictError{TaskID: "t-1"}, status: http.StatusConflict, code: "TASK_CONFLICT"},
		{name: "wrapped invalid state", err: fmt.Errorf("op: %w", &usecase.InvalidStateError{TaskID: "t-1"}), status: http.StatusConflict, code: "INVALID_STATE"},
		{name: "overlap", err: &usecase.OverlapError{TaskID: "t-1"}, status: http.StatusUnprocessableEntity, code: "INTERVAL_OVERLAP"},
		{name: "not found", err: &usecase.NotFoundError{Kind: "task", ID: "t-1"}, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "storage", err: &usecase.StorageError{Op: "stop", Err: errors.New("boom")}, status: http.StatusServiceUnavailable, code: "STORAGE_UNAVAILABLE"},
		{name: "input", err: usecase.ErrInvalidVariantID, status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "patch", err: usecase.ErrInvalidLogPatch, status: http.StatusBadRequest, code: "INVALID_LOG_PATCH"},
		{name: "variant", err: usecase.ErrVariantUnavailable, status: http.StatusUnprocessableEntity, code: "VARIANT_UNAVAILABLE"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapTaskError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}
