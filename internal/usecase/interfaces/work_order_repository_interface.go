package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for WorkOrder outside a transaction.
//
// ListVisible never returns CANCELLED orders.
type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListVisible(ctx context.Context, page entities.PageRequest) (entities.Page[entities.WorkOrder], error)
}
