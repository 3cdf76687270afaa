package handlers

import (
	"errors"
	"net/http"

	"rcp_tracker/internal/adapter/http/dto/request"
	"rcp_tracker/internal/usecase"
	"rcp_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errForbiddenTask  = pkg.NewDomainErrorSimple("FORBIDDEN", "Task belongs to another operator", http.StatusForbidden)
	errMissingActor   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing operator identity", http.StatusUnauthorized)
)

// mapTaskError maps the use case error taxonomy onto HTTP errors. Typed errors
// contribute their context as details.
func mapTaskError(err error) *pkg.AppError {
	var (
		conflict *usecase.ConflictError
		invalid  *usecase.InvalidStateError
		overlap  *usecase.OverlapError
		notFound *usecase.NotFoundError
	)
	switch {
	case errors.As(err, &conflict):
		return pkg.NewDomainError("TASK_CONFLICT", "Finish your current task first", err, http.StatusConflict).WithDetails(map[string]any{
			"task_id":        conflict.TaskID,
			"status":         conflict.Status,
			"operator_id":    conflict.OperatorID,
			"workstation_id": conflict.WorkstationID,
		})
	case errors.As(err, &invalid):
		return pkg.NewDomainError("INVALID_STATE", "Action not allowed in the current task status", err, http.StatusConflict).WithDetails(map[string]any{
			"task_id": invalid.TaskID,
			"status":  invalid.Status,
			"action":  invalid.Action,
		})
	case errors.As(err, &overlap):
		details := map[string]any{"task_id": overlap.TaskID, "reason": overlap.Reason}
		if overlap.LogID != "" {
			details["log_id"] = overlap.LogID
		}
		return pkg.NewDomainError("INTERVAL_OVERLAP", "Intervals would overlap or be inconsistent", err, http.StatusUnprocessableEntity).WithDetails(details)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Kind+" not found", err, http.StatusNotFound).WithDetails(map[string]any{
			"kind": notFound.Kind,
			"id":   notFound.ID,
		})
	case errors.Is(err, usecase.ErrVariantUnavailable):
		return pkg.NewDomainError("VARIANT_UNAVAILABLE", "Variant is not produced at this workstation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidLogPatch):
		return pkg.NewDomainError("INVALID_LOG_PATCH", "Invalid log correction", err, http.StatusBadRequest)
	case errors.Is(err, request.ErrMissingReason):
		return pkg.NewDomainError("REASON_REQUIRED", "A reason is required for corrections", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidLogID),
		errors.Is(err, usecase.ErrInvalidOperatorID),
		errors.Is(err, usecase.ErrInvalidWorkstationID),
		errors.Is(err, usecase.ErrInvalidVariantID),
		errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorage):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage unavailable, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeTaskError(c *gin.Context, err error) {
	appErr := mapTaskError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
