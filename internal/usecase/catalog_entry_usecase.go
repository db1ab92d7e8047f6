package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidCatalogEntryID = entities.NewValidation("service_id", "required")

// ICatalogEntryUseCase manages the service catalog. Line items snapshot the
// price of an entry, so updates and deactivation never touch existing orders.
type ICatalogEntryUseCase interface {
	Create(ctx context.Context, name string, price decimal.Decimal) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	Update(ctx context.Context, id string, patch entities.CatalogEntryPatch) (entities.CatalogEntry, error)
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.CatalogEntry], error)
}

type CatalogEntryUseCase struct {
	repo interfaces.ICatalogEntryRepository
}

var _ ICatalogEntryUseCase = (*CatalogEntryUseCase)(nil)

func NewCatalogEntryUseCase(repo interfaces.ICatalogEntryRepository) *CatalogEntryUseCase {
	return &CatalogEntryUseCase{repo: repo}
}

func (u *CatalogEntryUseCase) Create(ctx context.Context, name string, price decimal.Decimal) (entities.CatalogEntry, error) {
	now := time.Now().UTC()
	e := entities.CatalogEntry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Price:     price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.Validate(); err != nil {
		return entities.CatalogEntry{}, err
	}
	return u.repo.Create(ctx, e)
}

func (u *CatalogEntryUseCase) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogEntryID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if e.ID == "" {
		return entities.CatalogEntry{}, entities.NewNotFound("service", id)
	}
	return e, nil
}

func (u *CatalogEntryUseCase) Update(ctx context.Context, id string, patch entities.CatalogEntryPatch) (entities.CatalogEntry, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if err := e.Apply(patch); err != nil {
		return entities.CatalogEntry{}, err
	}
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *CatalogEntryUseCase) Deactivate(ctx context.Context, id string) error {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	e.Active = false
	e.UpdatedAt = time.Now().UTC()
	_, err = u.repo.Update(ctx, e)
	return err
}

func (u *CatalogEntryUseCase) List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.CatalogEntry], error) {
	return u.repo.ListActive(ctx, page)
}
