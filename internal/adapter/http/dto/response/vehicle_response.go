package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type VehicleResponse struct {
	ID         string    `json:"id"`
	Plate      string    `json:"plate"`
	Model      string    `json:"model"`
	Brand      string    `json:"brand"`
	Year       int       `json:"year"`
	Type       string    `json:"type"`
	CustomerID string    `json:"customer_id"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		Plate:      v.Plate,
		Model:      v.Model,
		Brand:      v.Brand,
		Year:       v.Year,
		Type:       string(v.Type),
		CustomerID: v.CustomerID,
		Active:     v.Active,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
