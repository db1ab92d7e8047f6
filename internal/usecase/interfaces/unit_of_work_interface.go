package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// ITransaction is the persistence boundary of the work order aggregate.
//
// Reads are strongly consistent and see the writes already staged in the same
// transaction. Writes are staged and only become visible when the enclosing
// IUnitOfWork commits. SaveWorkOrder is guarded by wo.Version: if the stored order
// moved on since it was read, the commit fails with entities.ErrConflict.
type ITransaction interface {
	FindWorkOrderByID(ctx context.Context, id string) (entities.WorkOrder, error)
	FindLineItemByID(ctx context.Context, id string) (entities.LineItem, error)
	FindActiveLineItemsByWorkOrder(ctx context.Context, workOrderID string) ([]entities.LineItem, error)
	SaveWorkOrder(ctx context.Context, wo entities.WorkOrder) error
	SaveLineItem(ctx context.Context, item entities.LineItem) error
}

// IUnitOfWork runs fn inside one all-or-nothing transaction. When fn returns an
// error nothing staged is written and the error is returned unchanged.
type IUnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx ITransaction) error) error
}
