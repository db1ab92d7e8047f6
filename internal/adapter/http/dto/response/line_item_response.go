package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	ServiceID   string    `json:"service_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price" example:"79.90"`
	LineTotal   string    `json:"line_total" example:"159.80"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		WorkOrderID: li.WorkOrderID,
		ServiceID:   li.CatalogEntryID,
		Quantity:    li.Quantity,
		UnitPrice:   money(li.UnitPrice),
		LineTotal:   money(li.LineTotal()),
		Active:      li.Active,
		CreatedAt:   li.CreatedAt,
		UpdatedAt:   li.UpdatedAt,
	}
}
