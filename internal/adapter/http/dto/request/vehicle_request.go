package request

import (
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
)

type CreateVehicleRequest struct {
	Plate      string `json:"plate" binding:"required,plate"`
	Model      string `json:"model" binding:"required"`
	Brand      string `json:"brand" binding:"required"`
	Year       int    `json:"year" binding:"required,min=1900,max=2100"`
	Type       string `json:"type" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
}

func (r CreateVehicleRequest) ToInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		Plate:      r.Plate,
		Model:      r.Model,
		Brand:      r.Brand,
		Year:       r.Year,
		Type:       entities.VehicleType(r.Type),
		CustomerID: r.CustomerID,
	}
}

// UpdateVehicleRequest cannot move a vehicle to another customer or change its plate.
type UpdateVehicleRequest struct {
	Model  *string `json:"model"`
	Brand  *string `json:"brand"`
	Year   *int    `json:"year" binding:"omitempty,min=1900,max=2100"`
	Type   *string `json:"type"`
	Active *bool   `json:"active"`
}

func (r UpdateVehicleRequest) ToPatch() entities.VehiclePatch {
	p := entities.VehiclePatch{
		Model:  r.Model,
		Brand:  r.Brand,
		Year:   r.Year,
		Active: r.Active,
	}
	if r.Type != nil {
		t := entities.VehicleType(strings.ToUpper(strings.TrimSpace(*r.Type)))
		p.Type = &t
	}
	return p
}
