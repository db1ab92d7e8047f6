package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// IVehicleRepository abstracts persistence for Vehicle.
//
// Create must enforce plate uniqueness atomically and report a clash with
// entities.ErrPlateAlreadyRegistered.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Vehicle], error)
	ListActiveByCustomerID(ctx context.Context, customerID string, page entities.PageRequest) (entities.Page[entities.Vehicle], error)
}
