package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for work order payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error)
}
