package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidLineItemID = entities.NewValidation("line_item_id", "required")

type CreateLineItemInput struct {
	WorkOrderID    string
	CatalogEntryID string
	Quantity       int
}

// ILineItemUseCase attaches catalog services to work orders.
//
// Every write runs in one unit of work together with the recalculation of the
// owning work order's final value: either both are persisted or neither is.
type ILineItemUseCase interface {
	Create(ctx context.Context, in CreateLineItemInput) (entities.LineItem, error)
	Update(ctx context.Context, id string, patch entities.LineItemPatch) (entities.LineItem, error)
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string, includeInactive bool) (entities.LineItem, error)
	List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.LineItem], error)
	ListByWorkOrder(ctx context.Context, workOrderID string, page entities.PageRequest) (entities.Page[entities.LineItem], error)
}

type LineItemUseCase struct {
	uow     interfaces.IUnitOfWork
	repo    interfaces.ILineItemRepository
	catalog interfaces.ICatalogEntryRepository
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(uow interfaces.IUnitOfWork, repo interfaces.ILineItemRepository, catalog interfaces.ICatalogEntryRepository) *LineItemUseCase {
	return &LineItemUseCase{uow: uow, repo: repo, catalog: catalog}
}

func (u *LineItemUseCase) Create(ctx context.Context, in CreateLineItemInput) (entities.LineItem, error) {
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	in.CatalogEntryID = strings.TrimSpace(in.CatalogEntryID)
	if in.WorkOrderID == "" {
		return entities.LineItem{}, ErrInvalidWorkOrderID
	}
	if in.CatalogEntryID == "" {
		return entities.LineItem{}, ErrInvalidCatalogEntryID
	}
	if err := entities.ValidateQuantity(in.Quantity); err != nil {
		return entities.LineItem{}, err
	}

	var created entities.LineItem
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		wo, err := findWorkOrder(ctx, tx, in.WorkOrderID)
		if err != nil {
			return err
		}
		if wo.Status == entities.WorkOrderStatusCancelled {
			return entities.ErrCancelledOrderImmutable
		}
		entry, err := u.findEntry(ctx, in.CatalogEntryID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		item := entities.LineItem{
			ID:             uuid.NewString(),
			WorkOrderID:    wo.ID,
			CatalogEntryID: entry.ID,
			Quantity:       in.Quantity,
			UnitPrice:      entry.Price,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.SaveLineItem(ctx, item); err != nil {
			return err
		}
		if err := recalculate(ctx, tx, wo, now); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return created, nil
}

func (u *LineItemUseCase) Update(ctx context.Context, id string, patch entities.LineItemPatch) (entities.LineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LineItem{}, ErrInvalidLineItemID
	}
	if patch.Quantity != nil {
		if err := entities.ValidateQuantity(*patch.Quantity); err != nil {
			return entities.LineItem{}, err
		}
	}
	if patch.UnitPrice != nil {
		if err := entities.ValidateUnitPrice(*patch.UnitPrice); err != nil {
			return entities.LineItem{}, err
		}
	}

	var updated entities.LineItem
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		item, err := findLineItem(ctx, tx, id)
		if err != nil {
			return err
		}
		if !item.Active && !patch.Reactivates() {
			return entities.ErrInactiveLineItem
		}
		if patch.IsEmpty() {
			updated = item
			return nil
		}

		wo, err := findWorkOrder(ctx, tx, item.WorkOrderID)
		if err != nil {
			return err
		}
		if wo.Status == entities.WorkOrderStatusCancelled {
			return entities.ErrCancelledOrderImmutable
		}

		if patch.CatalogEntryID != nil {
			entry, err := u.findEntry(ctx, strings.TrimSpace(*patch.CatalogEntryID))
			if err != nil {
				return err
			}
			item.CatalogEntryID = entry.ID
			item.UnitPrice = entry.Price
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Active != nil {
			item.Active = *patch.Active
		}

		now := time.Now().UTC()
		item.UpdatedAt = now
		if err := tx.SaveLineItem(ctx, item); err != nil {
			return err
		}
		if err := recalculate(ctx, tx, wo, now); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return updated, nil
}

func (u *LineItemUseCase) SoftDelete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLineItemID
	}

	return u.uow.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		item, err := findLineItem(ctx, tx, id)
		if err != nil {
			return err
		}
		wo, err := findWorkOrder(ctx, tx, item.WorkOrderID)
		if err != nil {
			return err
		}
		if wo.Status == entities.WorkOrderStatusCancelled {
			return entities.ErrCancelledOrderImmutable
		}

		now := time.Now().UTC()
		item.Active = false
		item.UpdatedAt = now
		if err := tx.SaveLineItem(ctx, item); err != nil {
			return err
		}
		return recalculate(ctx, tx, wo, now)
	})
}

// GetByID hides inactive items unless includeInactive is set.
func (u *LineItemUseCase) GetByID(ctx context.Context, id string, includeInactive bool) (entities.LineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LineItem{}, ErrInvalidLineItemID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LineItem{}, err
	}
	if item.ID == "" || (!item.Active && !includeInactive) {
		return entities.LineItem{}, entities.NewNotFound("line item", id)
	}
	return item, nil
}

func (u *LineItemUseCase) List(ctx context.Context, page entities.PageRequest) (entities.Page[entities.LineItem], error) {
	return u.repo.ListActive(ctx, page)
}

func (u *LineItemUseCase) ListByWorkOrder(ctx context.Context, workOrderID string, page entities.PageRequest) (entities.Page[entities.LineItem], error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Page[entities.LineItem]{}, ErrInvalidWorkOrderID
	}
	return u.repo.ListActiveByWorkOrderID(ctx, workOrderID, page)
}

func (u *LineItemUseCase) findEntry(ctx context.Context, id string) (entities.CatalogEntry, error) {
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogEntryID
	}
	entry, err := u.catalog.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if entry.ID == "" {
		return entities.CatalogEntry{}, entities.NewNotFound("service", id)
	}
	return entry, nil
}

// recalculate re-derives wo's final value from the active line items visible in
// tx, staged writes included, and stages the work order write.
func recalculate(ctx context.Context, tx interfaces.ITransaction, wo entities.WorkOrder, now time.Time) error {
	items, err := tx.FindActiveLineItemsByWorkOrder(ctx, wo.ID)
	if err != nil {
		return err
	}
	wo.ApplyTotal(entities.RecalculateTotal(wo.ID, items), now)
	return tx.SaveWorkOrder(ctx, wo)
}

func findLineItem(ctx context.Context, tx interfaces.ITransaction, id string) (entities.LineItem, error) {
	item, err := tx.FindLineItemByID(ctx, id)
	if err != nil {
		return entities.LineItem{}, err
	}
	if item.ID == "" {
		return entities.LineItem{}, entities.NewNotFound("line item", id)
	}
	return item, nil
}
