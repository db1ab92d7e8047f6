package request

import (
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateWorkOrderRequest struct {
	CustomerID     string           `json:"customer_id" binding:"required"`
	VehicleID      string           `json:"vehicle_id" binding:"required"`
	Description    string           `json:"description" binding:"required,max=300"`
	EstimatedValue *decimal.Decimal `json:"estimated_value" swaggertype:"string" example:"200.00"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		CustomerID:     r.CustomerID,
		VehicleID:      r.VehicleID,
		Description:    r.Description,
		EstimatedValue: r.EstimatedValue,
	}
}

type UpdateWorkOrderRequest struct {
	Description *string          `json:"description" binding:"omitempty,max=300"`
	FinalValue  *decimal.Decimal `json:"final_value" swaggertype:"string" example:"159.80"`
	Status      *string          `json:"status" enums:"OPEN,IN_PROGRESS,COMPLETED"`
}

func (r UpdateWorkOrderRequest) ToPatch() entities.WorkOrderPatch {
	p := entities.WorkOrderPatch{
		Description: r.Description,
		FinalValue:  r.FinalValue,
	}
	if r.Status != nil {
		s := entities.WorkOrderStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		p.Status = &s
	}
	return p
}
