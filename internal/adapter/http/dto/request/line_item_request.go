package request

import (
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateLineItemRequest struct {
	WorkOrderID string `json:"work_order_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

func (r CreateLineItemRequest) ToInput() usecase.CreateLineItemInput {
	return usecase.CreateLineItemInput{
		WorkOrderID:    r.WorkOrderID,
		CatalogEntryID: r.ServiceID,
		Quantity:       r.Quantity,
	}
}

// AddLineItemRequest attaches a service to the work order named in the path.
type AddLineItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

func (r AddLineItemRequest) ToInput(workOrderID string) usecase.CreateLineItemInput {
	return usecase.CreateLineItemInput{
		WorkOrderID:    workOrderID,
		CatalogEntryID: r.ServiceID,
		Quantity:       r.Quantity,
	}
}

// UpdateLineItemRequest changes an item in place. Selecting another service
// snapshots its current price; an explicit unit_price overrides it. An inactive
// item only accepts changes together with "active": true.
type UpdateLineItemRequest struct {
	ServiceID *string          `json:"service_id"`
	Quantity  *int             `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" swaggertype:"string" example:"79.90"`
	Active    *bool            `json:"active"`
}

func (r UpdateLineItemRequest) ToPatch() entities.LineItemPatch {
	return entities.LineItemPatch{
		CatalogEntryID: r.ServiceID,
		Quantity:       r.Quantity,
		UnitPrice:      r.UnitPrice,
		Active:         r.Active,
	}
}
