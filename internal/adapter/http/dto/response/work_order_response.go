package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	VehicleID      string     `json:"vehicle_id"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	OpenedAt       time.Time  `json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	EstimatedValue *string    `json:"estimated_value,omitempty" example:"200.00"`
	FinalValue     *string    `json:"final_value,omitempty" example:"159.80"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:             wo.ID,
		CustomerID:     wo.CustomerID,
		VehicleID:      wo.VehicleID,
		Description:    wo.Description,
		Status:         string(wo.Status),
		OpenedAt:       wo.OpenedAt,
		ClosedAt:       wo.ClosedAt,
		EstimatedValue: optionalMoney(wo.EstimatedValue),
		FinalValue:     optionalMoney(wo.FinalValue),
		UpdatedAt:      wo.UpdatedAt,
	}
}
