package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// ICatalogEntryRepository abstracts persistence for the service catalog.
type ICatalogEntryRepository interface {
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	Update(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.CatalogEntry], error)
}
