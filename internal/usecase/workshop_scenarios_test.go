package usecase

import (
	"context"
	"testing"

	"oficina_mecanica/internal/adapter/persistence/memory"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workshop struct {
	store      *memory.Store
	customers  *CustomerUseCase
	vehicles   *VehicleUseCase
	catalog    *CatalogEntryUseCase
	lineItems  *LineItemUseCase
	workOrders *WorkOrderUseCase
}

func newWorkshop() workshop {
	s := memory.NewStore()
	customerRepo := memory.NewCustomerRepository(s)
	vehicleRepo := memory.NewVehicleRepository(s)
	catalogRepo := memory.NewCatalogEntryRepository(s)
	uow := memory.NewUnitOfWork(s)
	return workshop{
		store:      s,
		customers:  NewCustomerUseCase(customerRepo),
		vehicles:   NewVehicleUseCase(vehicleRepo, customerRepo),
		catalog:    NewCatalogEntryUseCase(catalogRepo),
		lineItems:  NewLineItemUseCase(uow, memory.NewLineItemRepository(s), catalogRepo),
		workOrders: NewWorkOrderUseCase(uow, memory.NewWorkOrderRepository(s), customerRepo, vehicleRepo),
	}
}

func (w workshop) customer(t *testing.T) entities.Customer {
	t.Helper()
	c, err := w.customers.Create(context.Background(), CreateCustomerInput{
		Name:     gofakeit.Name(),
		Phone:    gofakeit.Numerify("119########"),
		Document: gofakeit.Numerify("###########"),
		Email:    gofakeit.Email(),
	})
	require.NoError(t, err)
	return c
}

func (w workshop) vehicle(t *testing.T, customerID string) entities.Vehicle {
	t.Helper()
	v, err := w.vehicles.Create(context.Background(), CreateVehicleInput{
		Plate:      gofakeit.Regex(`[A-Z]{3}[0-9][A-Z][0-9]{2}`),
		Model:      gofakeit.CarModel(),
		Brand:      gofakeit.CarMaker(),
		Year:       gofakeit.IntRange(1990, 2025),
		Type:       entities.VehicleTypeCar,
		CustomerID: customerID,
	})
	require.NoError(t, err)
	return v
}

// scenarioOne opens an order and attaches one 79.90 service twice.
func scenarioOne(t *testing.T, w workshop) (entities.WorkOrder, entities.LineItem) {
	t.Helper()
	ctx := context.Background()
	c := w.customer(t)
	v := w.vehicle(t, c.ID)

	wo, err := w.workOrders.Create(ctx, CreateWorkOrderInput{CustomerID: c.ID, VehicleID: v.ID, Description: "Oil change and inspection"})
	require.NoError(t, err)
	require.Equal(t, entities.WorkOrderStatusOpen, wo.Status)

	svc, err := w.catalog.Create(ctx, "Oil change", dec("79.90"))
	require.NoError(t, err)

	item, err := w.lineItems.Create(ctx, CreateLineItemInput{WorkOrderID: wo.ID, CatalogEntryID: svc.ID, Quantity: 2})
	require.NoError(t, err)

	wo, err = w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	return wo, item
}

func TestScenario_LineItemDrivesFinalValue(t *testing.T) {
	w := newWorkshop()
	wo, _ := scenarioOne(t, w)

	require.NotNil(t, wo.FinalValue)
	assert.Equal(t, "159.80", wo.FinalValue.StringFixed(2))
}

func TestScenario_CompleteWithoutLineItems(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	c := w.customer(t)
	v := w.vehicle(t, c.ID)
	wo, err := w.workOrders.Create(ctx, CreateWorkOrderInput{CustomerID: c.ID, VehicleID: v.ID, Description: "Noise on the front axle"})
	require.NoError(t, err)

	completed := entities.WorkOrderStatusCompleted
	_, err = w.workOrders.Update(ctx, wo.ID, entities.WorkOrderPatch{Status: &completed})
	require.ErrorIs(t, err, entities.ErrBusinessRule)
	assert.EqualError(t, err, "cannot complete without registered services")

	stored, err := w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusOpen, stored.Status)
	assert.Nil(t, stored.ClosedAt)
}

func TestScenario_CompleteWithFinalValue(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, _ := scenarioOne(t, w)

	completed := entities.WorkOrderStatusCompleted
	final := dec("159.80")
	updated, err := w.workOrders.Update(ctx, wo.ID, entities.WorkOrderPatch{Status: &completed, FinalValue: &final})
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusCompleted, updated.Status)
	assert.NotNil(t, updated.ClosedAt)

	stored, err := w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.ClosedAt)
}

func TestScenario_SoftDeleteRecomputesToZero(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	require.NoError(t, w.lineItems.SoftDelete(ctx, item.ID))

	stored, err := w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", stored.FinalValue.StringFixed(2))

	_, err = w.lineItems.GetByID(ctx, item.ID, false)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	hidden, err := w.lineItems.GetByID(ctx, item.ID, true)
	require.NoError(t, err)
	assert.False(t, hidden.Active)
}

func TestScenario_CannotDeleteCompletedOrder(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, _ := scenarioOne(t, w)

	completed := entities.WorkOrderStatusCompleted
	_, err := w.workOrders.Update(ctx, wo.ID, entities.WorkOrderPatch{Status: &completed})
	require.NoError(t, err, "the recalculated final value is enough to complete")

	_, err = w.workOrders.Cancel(ctx, wo.ID)
	require.ErrorIs(t, err, entities.ErrBusinessRule)
	assert.EqualError(t, err, "cannot delete a completed order")
}

func TestScenario_VehicleOfAnotherCustomer(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	owner := w.customer(t)
	other := w.customer(t)
	v := w.vehicle(t, owner.ID)

	_, err := w.workOrders.Create(ctx, CreateWorkOrderInput{CustomerID: other.ID, VehicleID: v.ID, Description: "Brake pads"})
	require.ErrorIs(t, err, entities.ErrBusinessRule)
	assert.EqualError(t, err, "vehicle does not belong to informed customer")
}

func TestScenario_ManualOverrideUntilNextLineItemChange(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	override := dec("150.00")
	updated, err := w.workOrders.Update(ctx, wo.ID, entities.WorkOrderPatch{FinalValue: &override})
	require.NoError(t, err)
	assert.Equal(t, "150.00", updated.FinalValue.StringFixed(2))

	qty := 3
	_, err = w.lineItems.Update(ctx, item.ID, entities.LineItemPatch{Quantity: &qty})
	require.NoError(t, err)

	stored, err := w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "239.70", stored.FinalValue.StringFixed(2))
}

func TestScenario_CatalogPriceChangeIsNotRetroactive(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	newPrice := dec("99.90")
	_, err := w.catalog.Update(ctx, item.CatalogEntryID, entities.CatalogEntryPatch{Price: &newPrice})
	require.NoError(t, err)
	require.NoError(t, w.catalog.Deactivate(ctx, item.CatalogEntryID))

	stored, err := w.lineItems.GetByID(ctx, item.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "79.90", stored.UnitPrice.StringFixed(2))

	order, err := w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "159.80", order.FinalValue.StringFixed(2))
}

func TestScenario_CancelledOrderIsHidden(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	cancelled, err := w.workOrders.Cancel(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.ClosedAt)

	_, err = w.workOrders.GetByID(ctx, wo.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	page, err := w.workOrders.List(ctx, entities.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	qty := 5
	_, err = w.lineItems.Update(ctx, item.ID, entities.LineItemPatch{Quantity: &qty})
	assert.ErrorIs(t, err, entities.ErrCancelledOrderImmutable)
}

func TestScenario_RecalculationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	same := item.Quantity
	for i := 0; i < 2; i++ {
		_, err := w.lineItems.Update(ctx, item.ID, entities.LineItemPatch{Quantity: &same})
		require.NoError(t, err)
		stored, err := w.workOrders.GetByID(ctx, wo.ID)
		require.NoError(t, err)
		assert.Equal(t, "159.80", stored.FinalValue.StringFixed(2))
	}
}

// interleavingUnitOfWork runs beforeWorkOrderRead once, right before the
// transaction's first work order read, to let another request commit in between.
type interleavingUnitOfWork struct {
	interfaces.IUnitOfWork
	beforeWorkOrderRead func()
}

func (u *interleavingUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITransaction) error) error {
	return u.IUnitOfWork.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		return fn(ctx, &interleavingTransaction{ITransaction: tx, uow: u})
	})
}

type interleavingTransaction struct {
	interfaces.ITransaction
	uow *interleavingUnitOfWork
}

func (t *interleavingTransaction) FindWorkOrderByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	if hook := t.uow.beforeWorkOrderRead; hook != nil {
		t.uow.beforeWorkOrderRead = nil
		hook()
	}
	return t.ITransaction.FindWorkOrderByID(ctx, id)
}

func TestScenario_ConcurrentLineItemUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	uow := &interleavingUnitOfWork{IUnitOfWork: memory.NewUnitOfWork(w.store)}
	slow := NewLineItemUseCase(uow, memory.NewLineItemRepository(w.store), memory.NewCatalogEntryRepository(w.store))
	uow.beforeWorkOrderRead = func() {
		qty := 5
		_, err := w.lineItems.Update(ctx, item.ID, entities.LineItemPatch{Quantity: &qty})
		require.NoError(t, err)
	}

	price := dec("10")
	_, err := slow.Update(ctx, item.ID, entities.LineItemPatch{UnitPrice: &price})
	require.ErrorIs(t, err, entities.ErrConflict)

	stored, err := w.lineItems.GetByID(ctx, item.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
	assert.Equal(t, "79.90", stored.UnitPrice.StringFixed(2))

	wo, err = w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "399.50", wo.FinalValue.StringFixed(2))
}

func TestScenario_ConcurrentSoftDeleteAndUpdate(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop()
	wo, item := scenarioOne(t, w)

	uow := &interleavingUnitOfWork{IUnitOfWork: memory.NewUnitOfWork(w.store)}
	slow := NewLineItemUseCase(uow, memory.NewLineItemRepository(w.store), memory.NewCatalogEntryRepository(w.store))
	uow.beforeWorkOrderRead = func() {
		require.NoError(t, w.lineItems.SoftDelete(ctx, item.ID))
	}

	qty := 3
	_, err := slow.Update(ctx, item.ID, entities.LineItemPatch{Quantity: &qty})
	require.ErrorIs(t, err, entities.ErrConflict)

	stored, err := w.lineItems.GetByID(ctx, item.ID, true)
	require.NoError(t, err)
	assert.False(t, stored.Active, "the soft delete committed first and stays")

	wo, err = w.workOrders.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.True(t, wo.FinalValue.IsZero())
}
