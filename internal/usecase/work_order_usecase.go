package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidWorkOrderID = entities.NewValidation("work_order_id", "required")

type CreateWorkOrderInput struct {
	CustomerID     string
	VehicleID      string
	Description    string
	EstimatedValue *decimal.Decimal
}

// IWorkOrderUseCase drives the work order lifecycle:
//
//	OPEN -> IN_PROGRESS -> COMPLETED
//	OPEN | IN_PROGRESS -> CANCELLED (Cancel only)
//
// Cancelled orders are hidden from GetByID and List.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	Cancel(ctx context.Context, id string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.WorkOrder], error)
}

type WorkOrderUseCase struct {
	uow       interfaces.IUnitOfWork
	repo      interfaces.IWorkOrderRepository
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(uow interfaces.IUnitOfWork, repo interfaces.IWorkOrderRepository, customers interfaces.ICustomerRepository, vehicles interfaces.IVehicleRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{uow: uow, repo: repo, customers: customers, vehicles: vehicles}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	vehicleID := strings.TrimSpace(in.VehicleID)
	if customerID == "" {
		return entities.WorkOrder{}, ErrInvalidCustomerID
	}
	if vehicleID == "" {
		return entities.WorkOrder{}, ErrInvalidVehicleID
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if customer.ID == "" {
		return entities.WorkOrder{}, entities.NewNotFound("customer", customerID)
	}
	vehicle, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if vehicle.ID == "" {
		return entities.WorkOrder{}, entities.NewNotFound("vehicle", vehicleID)
	}

	wo, err := entities.NewWorkOrder(uuid.NewString(), customer, vehicle, in.Description, in.EstimatedValue, time.Now().UTC())
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return u.repo.Create(ctx, wo)
}

// Update applies a partial change. Completing the order checks the active line
// items inside the same transaction that writes the new status.
func (u *WorkOrderUseCase) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	var updated entities.WorkOrder
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		wo, err := findWorkOrder(ctx, tx, id)
		if err != nil {
			return err
		}

		hasActiveLineItems := false
		if patch.Completes(wo.Status) {
			items, err := tx.FindActiveLineItemsByWorkOrder(ctx, wo.ID)
			if err != nil {
				return err
			}
			hasActiveLineItems = len(items) > 0
		}

		if err := wo.Apply(patch, hasActiveLineItems, time.Now().UTC()); err != nil {
			return err
		}
		if err := tx.SaveWorkOrder(ctx, wo); err != nil {
			return err
		}
		updated = wo
		return nil
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return updated, nil
}

// Cancel is the delete operation: the order is kept with status CANCELLED.
func (u *WorkOrderUseCase) Cancel(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	var cancelled entities.WorkOrder
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		wo, err := findWorkOrder(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := wo.Cancel(time.Now().UTC()); err != nil {
			return err
		}
		if err := tx.SaveWorkOrder(ctx, wo); err != nil {
			return err
		}
		cancelled = wo
		return nil
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return cancelled, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" || !wo.Visible() {
		return entities.WorkOrder{}, entities.NewNotFound("work order", id)
	}
	return wo, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.WorkOrder], error) {
	return u.repo.ListVisible(ctx, page)
}

func findWorkOrder(ctx context.Context, tx interfaces.ITransaction, id string) (entities.WorkOrder, error) {
	wo, err := tx.FindWorkOrderByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, entities.NewNotFound("work order", id)
	}
	return wo, nil
}
