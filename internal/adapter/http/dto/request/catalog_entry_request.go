package request

import (
	"oficina_mecanica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest registers a catalog service. Price accepts a JSON number
// or a decimal string ("79.90").
type CreateServiceRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"79.90"`
}

type UpdateServiceRequest struct {
	Name   *string          `json:"name"`
	Price  *decimal.Decimal `json:"price" swaggertype:"string" example:"89.90"`
	Active *bool            `json:"active"`
}

func (r UpdateServiceRequest) ToPatch() entities.CatalogEntryPatch {
	return entities.CatalogEntryPatch{
		Name:   r.Name,
		Price:  r.Price,
		Active: r.Active,
	}
}
