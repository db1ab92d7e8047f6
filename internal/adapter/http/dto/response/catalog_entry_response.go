package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price" example:"79.90"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCatalogEntry(e entities.CatalogEntry) ServiceResponse {
	return ServiceResponse{
		ID:        e.ID,
		Name:      e.Name,
		Price:     money(e.Price),
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
