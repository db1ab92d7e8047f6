package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const maxDescriptionLength = 300

// WorkOrder ("ordem de serviço") is the aggregate root of one repair job.
// It references a customer and one of that customer's vehicles and owns its line items.
//
// Invariants:
//   - ClosedAt is set iff Status is COMPLETED or CANCELLED.
//   - A COMPLETED order has at least one active line item and a FinalValue.
//   - FinalValue is the sum of the active line items unless manually overridden
//     after the last line item change.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic lock, bumped on every write
type WorkOrder struct {
	ID             string           `json:"id"`
	CustomerID     string           `json:"customer_id"`
	VehicleID      string           `json:"vehicle_id"`
	Description    string           `json:"description"`
	Status         WorkOrderStatus  `json:"status"`
	OpenedAt       time.Time        `json:"opened_at"`
	ClosedAt       *time.Time       `json:"closed_at,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	FinalValue     *decimal.Decimal `json:"final_value,omitempty"`
	Version        int64            `json:"version"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type WorkOrderPatch struct {
	Description *string
	FinalValue  *decimal.Decimal
	Status      *WorkOrderStatus
}

// Completes reports whether applying the patch moves the order into COMPLETED.
func (p WorkOrderPatch) Completes(current WorkOrderStatus) bool {
	return p.Status != nil && *p.Status == WorkOrderStatusCompleted && current != WorkOrderStatusCompleted
}

// NewWorkOrder opens an order for the vehicle of an active customer.
func NewWorkOrder(id string, customer Customer, vehicle Vehicle, description string, estimated *decimal.Decimal, now time.Time) (WorkOrder, error) {
	description = strings.TrimSpace(description)
	if err := validateDescription(description); err != nil {
		return WorkOrder{}, err
	}
	if estimated != nil && estimated.IsNegative() {
		return WorkOrder{}, NewValidation("estimated_value", "must not be negative")
	}
	if !customer.Active {
		return WorkOrder{}, ErrInactiveCustomer
	}
	if vehicle.CustomerID != customer.ID {
		return WorkOrder{}, ErrVehicleCustomerMismatch
	}

	return WorkOrder{
		ID:             id,
		CustomerID:     customer.ID,
		VehicleID:      vehicle.ID,
		Description:    description,
		Status:         WorkOrderStatusOpen,
		OpenedAt:       now,
		EstimatedValue: estimated,
		UpdatedAt:      now,
	}, nil
}

// Apply performs a partial update. hasActiveLineItems is only consulted when the
// patch completes the order.
func (wo *WorkOrder) Apply(p WorkOrderPatch, hasActiveLineItems bool, now time.Time) error {
	if wo.Status == WorkOrderStatusCancelled {
		return ErrCancelledOrderImmutable
	}

	next := *wo
	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		if err := validateDescription(description); err != nil {
			return err
		}
		next.Description = description
	}
	if p.FinalValue != nil {
		if p.FinalValue.IsNegative() {
			return NewValidation("final_value", "must not be negative")
		}
		value := *p.FinalValue
		next.FinalValue = &value
	}

	if p.Status != nil {
		target := *p.Status
		if !target.IsValid() {
			return NewValidation("status", "unknown status")
		}
		if target != wo.Status {
			err := CanTransition(TransitionContext{
				Current:              wo.Status,
				Target:               target,
				HasActiveLineItems:   hasActiveLineItems,
				FinalValueResolvable: next.FinalValue != nil,
			})
			if err != nil {
				return err
			}
			if target.IsClosed() {
				closedAt := now
				next.ClosedAt = &closedAt
			} else {
				next.ClosedAt = nil
			}
			next.Status = target
		}
	}

	next.UpdatedAt = now
	*wo = next
	return nil
}

// Cancel is the soft terminal transition used by delete.
func (wo *WorkOrder) Cancel(now time.Time) error {
	if wo.Status == WorkOrderStatusCompleted {
		return ErrDeleteCompletedOrder
	}
	closedAt := now
	wo.Status = WorkOrderStatusCancelled
	wo.ClosedAt = &closedAt
	wo.UpdatedAt = now
	return nil
}

// ApplyTotal stores a recalculated total, replacing any manual override.
func (wo *WorkOrder) ApplyTotal(total decimal.Decimal, now time.Time) {
	wo.FinalValue = &total
	wo.UpdatedAt = now
}

func (wo WorkOrder) Visible() bool {
	return wo.Status != WorkOrderStatusCancelled
}

func validateDescription(description string) error {
	if description == "" {
		return NewValidation("description", "required")
	}
	if len(description) > maxDescriptionLength {
		return NewValidation("description", "must have at most 300 characters")
	}
	return nil
}
