package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// ILineItemRepository serves line item reads outside a transaction. Writes only
// happen through ITransaction so the owning work order's total moves with them.
type ILineItemRepository interface {
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.LineItem], error)
	ListActiveByWorkOrderID(ctx context.Context, workOrderID string, page entities.PageRequest) (entities.Page[entities.LineItem], error)
}
