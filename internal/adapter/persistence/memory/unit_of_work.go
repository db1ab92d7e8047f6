package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/samber/lo"
)

// UnitOfWork stages writes while fn runs and applies them under the store lock.
// fn itself runs unlocked, so it may call the repositories freely; lost updates
// are prevented by checking the version of each staged work order and line item
// at commit time.
type UnitOfWork struct{ s *Store }

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(s *Store) *UnitOfWork { return &UnitOfWork{s: s} }

func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITransaction) error) error {
	tx := &transaction{
		s:          u.s,
		workOrders: map[string]entities.WorkOrder{},
		lineItems:  map[string]entities.LineItem{},
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

type transaction struct {
	s          *Store
	workOrders map[string]entities.WorkOrder
	lineItems  map[string]entities.LineItem
}

var _ interfaces.ITransaction = (*transaction)(nil)

func (t *transaction) FindWorkOrderByID(_ context.Context, id string) (entities.WorkOrder, error) {
	if wo, ok := t.workOrders[id]; ok {
		return wo, nil
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.s.workOrders[id], nil
}

func (t *transaction) FindLineItemByID(_ context.Context, id string) (entities.LineItem, error) {
	if item, ok := t.lineItems[id]; ok {
		return item, nil
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.s.lineItems[id], nil
}

func (t *transaction) FindActiveLineItemsByWorkOrder(_ context.Context, workOrderID string) ([]entities.LineItem, error) {
	belongs := func(it entities.LineItem, _ int) bool { return it.WorkOrderID == workOrderID }

	t.s.mu.RLock()
	items := lo.Filter(slices.Collect(maps.Values(t.s.lineItems)), belongs)
	t.s.mu.RUnlock()

	for _, staged := range lo.Filter(slices.Collect(maps.Values(t.lineItems)), belongs) {
		items = entities.MergeLineItem(items, staged)
	}
	active := lo.Filter(items, func(it entities.LineItem, _ int) bool { return it.Active })
	slices.SortFunc(active, func(a, b entities.LineItem) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return active, nil
}

// SaveWorkOrder stages wo; wo.Version must still be the stored version at commit.
func (t *transaction) SaveWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	if staged, ok := t.workOrders[wo.ID]; ok {
		// A second save in the same transaction keeps the version read first.
		wo.Version = staged.Version
	}
	t.workOrders[wo.ID] = wo
	return nil
}

func (t *transaction) SaveLineItem(_ context.Context, item entities.LineItem) error {
	if staged, ok := t.lineItems[item.ID]; ok {
		item.Version = staged.Version
	}
	t.lineItems[item.ID] = item
	return nil
}

func (t *transaction) commit() error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for id, wo := range t.workOrders {
		stored, ok := t.s.workOrders[id]
		if !ok || stored.Version != wo.Version {
			return fmt.Errorf("%w: work order %s", entities.ErrConflict, id)
		}
	}
	for id, item := range t.lineItems {
		stored, ok := t.s.lineItems[id]
		if ok != (item.Version > 0) || stored.Version != item.Version {
			return fmt.Errorf("%w: line item %s", entities.ErrConflict, id)
		}
	}
	for id, wo := range t.workOrders {
		wo.Version++
		t.s.workOrders[id] = wo
	}
	for id, item := range t.lineItems {
		item.Version++
		t.s.lineItems[id] = item
	}
	return nil
}
