package interfaces

import (
	"context"

	"rcp_tracker/internal/domain/entities"
)

// IVariantRepository abstracts the external variant/service catalog.
//
// The timer only reads it: ListByWorkstation feeds the variant picker and
// GetByID resolves the estimate copied onto a new task.

type IVariantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Variant, error)
	ListByWorkstation(ctx context.Context, workstationID string) ([]entities.Variant, error)
	Upsert(ctx context.Context, v entities.Variant) error
}
