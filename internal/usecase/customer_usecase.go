package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidCustomerID = entities.NewValidation("customer_id", "required")

type CreateCustomerInput struct {
	Name     string
	Phone    string
	Document string
	Email    string
}

// ICustomerUseCase manages the workshop's customers. Customers are deactivated,
// never removed, and a deactivated customer is hidden from GetByID and List.
type ICustomerUseCase interface {
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Customer], error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	now := time.Now().UTC()
	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Document:  entities.NormalizeDocument(in.Document),
		Email:     strings.TrimSpace(in.Email),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return entities.Customer{}, err
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if !c.Active {
		return entities.Customer{}, entities.NewNotFound("customer", c.ID)
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := c.Apply(patch); err != nil {
		return entities.Customer{}, err
	}
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CustomerUseCase) Deactivate(ctx context.Context, id string) error {
	c, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	c.Active = false
	c.UpdatedAt = time.Now().UTC()
	_, err = u.repo.Update(ctx, c)
	return err
}

func (u *CustomerUseCase) List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Customer], error) {
	return u.repo.ListActive(ctx, page)
}

// load finds a customer regardless of its active flag.
func (u *CustomerUseCase) load(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, entities.NewNotFound("customer", id)
	}
	return c, nil
}
