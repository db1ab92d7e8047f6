package memory

import (
	"context"
	"maps"
	"slices"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/samber/lo"
)

type CustomerRepository struct{ s *Store }

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(s *Store) *CustomerRepository { return &CustomerRepository{s: s} }

func (r *CustomerRepository) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := documentKey(c.Document)
	if _, taken := r.s.uniqueKeys[key]; taken {
		return entities.Customer{}, entities.ErrDocumentAlreadyRegistered
	}
	r.s.uniqueKeys[key] = c.ID
	r.s.customers[c.ID] = c
	return c, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.customers[id], nil
}

func (r *CustomerRepository) Update(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.customers[c.ID]
	if !ok {
		return entities.Customer{}, entities.NewNotFound("customer", c.ID)
	}
	c.Document = stored.Document
	c.CreatedAt = stored.CreatedAt
	r.s.customers[c.ID] = c
	return c, nil
}

func (r *CustomerRepository) ListActive(_ context.Context, page entities.PageRequest) (entities.Page[entities.Customer], error) {
	r.s.mu.RLock()
	active := lo.Filter(slices.Collect(maps.Values(r.s.customers)), func(c entities.Customer, _ int) bool { return c.Active })
	r.s.mu.RUnlock()
	return paginate(active, func(c entities.Customer) string { return c.ID }, page)
}

type VehicleRepository struct{ s *Store }

var _ interfaces.IVehicleRepository = (*VehicleRepository)(nil)

func NewVehicleRepository(s *Store) *VehicleRepository { return &VehicleRepository{s: s} }

func (r *VehicleRepository) Create(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := plateKey(v.Plate)
	if _, taken := r.s.uniqueKeys[key]; taken {
		return entities.Vehicle{}, entities.ErrPlateAlreadyRegistered
	}
	r.s.uniqueKeys[key] = v.ID
	r.s.vehicles[v.ID] = v
	return v, nil
}

func (r *VehicleRepository) GetByID(_ context.Context, id string) (entities.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.vehicles[id], nil
}

func (r *VehicleRepository) Update(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.vehicles[v.ID]
	if !ok {
		return entities.Vehicle{}, entities.NewNotFound("vehicle", v.ID)
	}
	v.Plate = stored.Plate
	v.CustomerID = stored.CustomerID
	v.CreatedAt = stored.CreatedAt
	r.s.vehicles[v.ID] = v
	return v, nil
}

func (r *VehicleRepository) ListActive(_ context.Context, page entities.PageRequest) (entities.Page[entities.Vehicle], error) {
	return r.list(page, func(v entities.Vehicle) bool { return v.Active })
}

func (r *VehicleRepository) ListActiveByCustomerID(_ context.Context, customerID string, page entities.PageRequest) (entities.Page[entities.Vehicle], error) {
	return r.list(page, func(v entities.Vehicle) bool { return v.Active && v.CustomerID == customerID })
}

func (r *VehicleRepository) list(page entities.PageRequest, keep func(entities.Vehicle) bool) (entities.Page[entities.Vehicle], error) {
	r.s.mu.RLock()
	matched := lo.Filter(slices.Collect(maps.Values(r.s.vehicles)), func(v entities.Vehicle, _ int) bool { return keep(v) })
	r.s.mu.RUnlock()
	return paginate(matched, func(v entities.Vehicle) string { return v.ID }, page)
}

type CatalogEntryRepository struct{ s *Store }

var _ interfaces.ICatalogEntryRepository = (*CatalogEntryRepository)(nil)

func NewCatalogEntryRepository(s *Store) *CatalogEntryRepository {
	return &CatalogEntryRepository{s: s}
}

func (r *CatalogEntryRepository) Create(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.catalog[e.ID] = e
	return e, nil
}

func (r *CatalogEntryRepository) GetByID(_ context.Context, id string) (entities.CatalogEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.catalog[id], nil
}

func (r *CatalogEntryRepository) Update(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.catalog[e.ID]
	if !ok {
		return entities.CatalogEntry{}, entities.NewNotFound("service", e.ID)
	}
	e.CreatedAt = stored.CreatedAt
	r.s.catalog[e.ID] = e
	return e, nil
}

func (r *CatalogEntryRepository) ListActive(_ context.Context, page entities.PageRequest) (entities.Page[entities.CatalogEntry], error) {
	r.s.mu.RLock()
	active := lo.Filter(slices.Collect(maps.Values(r.s.catalog)), func(e entities.CatalogEntry, _ int) bool { return e.Active })
	r.s.mu.RUnlock()
	return paginate(active, func(e entities.CatalogEntry) string { return e.ID }, page)
}

type LineItemRepository struct{ s *Store }

var _ interfaces.ILineItemRepository = (*LineItemRepository)(nil)

func NewLineItemRepository(s *Store) *LineItemRepository { return &LineItemRepository{s: s} }

func (r *LineItemRepository) GetByID(_ context.Context, id string) (entities.LineItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.lineItems[id], nil
}

func (r *LineItemRepository) ListActive(_ context.Context, page entities.PageRequest) (entities.Page[entities.LineItem], error) {
	return r.list(page, func(it entities.LineItem) bool { return it.Active })
}

func (r *LineItemRepository) ListActiveByWorkOrderID(_ context.Context, workOrderID string, page entities.PageRequest) (entities.Page[entities.LineItem], error) {
	return r.list(page, func(it entities.LineItem) bool { return it.Active && it.WorkOrderID == workOrderID })
}

func (r *LineItemRepository) list(page entities.PageRequest, keep func(entities.LineItem) bool) (entities.Page[entities.LineItem], error) {
	r.s.mu.RLock()
	matched := lo.Filter(slices.Collect(maps.Values(r.s.lineItems)), func(it entities.LineItem, _ int) bool { return keep(it) })
	r.s.mu.RUnlock()
	return paginate(matched, func(it entities.LineItem) string { return it.ID }, page)
}

type WorkOrderRepository struct{ s *Store }

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository(s *Store) *WorkOrderRepository { return &WorkOrderRepository{s: s} }

func (r *WorkOrderRepository) Create(_ context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.workOrders[wo.ID]; exists {
		return entities.WorkOrder{}, entities.ErrConflict
	}
	r.s.workOrders[wo.ID] = wo
	return wo, nil
}

func (r *WorkOrderRepository) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.workOrders[id], nil
}

func (r *WorkOrderRepository) ListVisible(_ context.Context, page entities.PageRequest) (entities.Page[entities.WorkOrder], error) {
	r.s.mu.RLock()
	visible := lo.Filter(slices.Collect(maps.Values(r.s.workOrders)), func(wo entities.WorkOrder, _ int) bool { return wo.Visible() })
	r.s.mu.RUnlock()
	return paginate(visible, func(wo entities.WorkOrder) string { return wo.ID }, page)
}

type PaymentRepository struct{ s *Store }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(s *Store) *PaymentRepository { return &PaymentRepository{s: s} }

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.payments[p.ID]; exists {
		return entities.Payment{}, entities.ErrConflict
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments[id], nil
}

func (r *PaymentRepository) ListByWorkOrderID(_ context.Context, workOrderID string) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return lo.Filter(slices.Collect(maps.Values(r.s.payments)), func(p entities.Payment, _ int) bool {
		return p.WorkOrderID == workOrderID
	}), nil
}
