package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for Customer.
//
// Create must enforce document uniqueness atomically and report a clash with
// entities.ErrDocumentAlreadyRegistered. GetByID returns the zero value when the
// customer does not exist.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Customer], error)
}
