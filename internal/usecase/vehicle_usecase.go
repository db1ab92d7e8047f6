package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidVehicleID = entities.NewValidation("vehicle_id", "required")

type CreateVehicleInput struct {
	Plate      string
	Model      string
	Brand      string
	Year       int
	Type       entities.VehicleType
	CustomerID string
}

type IVehicleUseCase interface {
	Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, error)
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Vehicle], error)
	ListByCustomer(ctx context.Context, customerID string, page entities.PageRequest) (entities.Page[entities.Vehicle], error)
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers}
}

func (u *VehicleUseCase) Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error) {
	now := time.Now().UTC()
	v := entities.Vehicle{
		ID:         uuid.NewString(),
		Plate:      entities.NormalizePlate(in.Plate),
		Model:      strings.TrimSpace(in.Model),
		Brand:      strings.TrimSpace(in.Brand),
		Year:       in.Year,
		Type:       entities.VehicleType(strings.ToUpper(string(in.Type))),
		CustomerID: strings.TrimSpace(in.CustomerID),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := v.Validate(); err != nil {
		return entities.Vehicle{}, err
	}

	owner, err := u.customers.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, entities.NewNotFound("customer", v.CustomerID)
	}
	if !owner.Active {
		return entities.Vehicle{}, entities.ErrVehicleInactiveCustomer
	}

	return u.repo.Create(ctx, v)
}

// GetByID does not filter on the active flag: work orders keep pointing at
// vehicles that were deactivated afterwards.
func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, entities.NewNotFound("vehicle", id)
	}
	return v, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if patch.Type != nil {
		t := entities.VehicleType(strings.ToUpper(string(*patch.Type)))
		patch.Type = &t
	}
	if err := v.Apply(patch); err != nil {
		return entities.Vehicle{}, err
	}
	v.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, v)
}

func (u *VehicleUseCase) Deactivate(ctx context.Context, id string) error {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	v.Active = false
	v.UpdatedAt = time.Now().UTC()
	_, err = u.repo.Update(ctx, v)
	return err
}

func (u *VehicleUseCase) List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Vehicle], error) {
	return u.repo.ListActive(ctx, page)
}

func (u *VehicleUseCase) ListByCustomer(ctx context.Context, customerID string, page entities.PageRequest) (entities.Page[entities.Vehicle], error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Page[entities.Vehicle]{}, ErrInvalidCustomerID
	}
	return u.repo.ListActiveByCustomerID(ctx, customerID, page)
}
