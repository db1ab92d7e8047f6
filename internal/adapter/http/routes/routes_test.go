package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_mecanica/internal/adapter/http/handlers"
	"oficina_mecanica/internal/adapter/persistence/memory"
	"oficina_mecanica/internal/infrastructure/payments"
	"oficina_mecanica/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	s := memory.NewStore()
	uow := memory.NewUnitOfWork(s)
	customerRepo := memory.NewCustomerRepository(s)
	vehicleRepo := memory.NewVehicleRepository(s)
	catalogRepo := memory.NewCatalogEntryRepository(s)
	lineItemRepo := memory.NewLineItemRepository(s)
	workOrderRepo := memory.NewWorkOrderRepository(s)
	paymentRepo := memory.NewPaymentRepository(s)

	gateway, err := payments.NewMercadoPagoGateway("", true, logger)
	require.NoError(t, err)

	h := Handlers{
		Customers:  handlers.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo)),
		Vehicles:   handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo, customerRepo)),
		Services:   handlers.NewCatalogEntryHandler(usecase.NewCatalogEntryUseCase(catalogRepo)),
		LineItems:  handlers.NewLineItemHandler(usecase.NewLineItemUseCase(uow, lineItemRepo, catalogRepo)),
		WorkOrders: handlers.NewWorkOrderHandler(usecase.NewWorkOrderUseCase(uow, workOrderRepo, customerRepo, vehicleRepo)),
		Payments: handlers.NewPaymentHandler(
			usecase.NewPaymentUseCase(paymentRepo, workOrderRepo, gateway, usecase.PaymentOptions{MockMode: true}),
			true,
		),
	}
	return NewRouter(logger, gin.TestMode, h), logs
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w.Code, out
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRouter_RequestLogCarriesOperator(t *testing.T) {
	r, logs := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/missing", nil)
	req.Header.Set(HeaderOperator, "joao")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	fields := completed[0].ContextMap()
	assert.Equal(t, "joao", fields["operator"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	r, logs := newTestRouter(t)
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Equal(t, 1, logs.FilterMessage("recovered from panic").Len())
}

func TestRouter_WorkOrderLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	status, customer := doJSON(t, r, http.MethodPost, "/v1/customers", map[string]any{
		"name":     gofakeit.Name(),
		"phone":    "11999990000",
		"document": gofakeit.Numerify("###########"),
		"email":    gofakeit.Email(),
	})
	require.Equal(t, http.StatusCreated, status, customer)

	status, vehicle := doJSON(t, r, http.MethodPost, "/v1/vehicles", map[string]any{
		"plate": "abc1d23", "model": "Onix", "brand": "Chevrolet", "year": 2020, "type": "car",
		"customer_id": customer["id"],
	})
	require.Equal(t, http.StatusCreated, status, vehicle)
	assert.Equal(t, "ABC1D23", vehicle["plate"])

	status, service := doJSON(t, r, http.MethodPost, "/v1/services", map[string]any{"name": "Oil change", "price": "79.90"})
	require.Equal(t, http.StatusCreated, status, service)

	status, wo := doJSON(t, r, http.MethodPost, "/v1/work-orders", map[string]any{
		"customer_id": customer["id"], "vehicle_id": vehicle["id"], "description": "Engine noise",
	})
	require.Equal(t, http.StatusCreated, status, wo)
	woPath := "/v1/work-orders/" + wo["id"].(string)

	status, body := doJSON(t, r, http.MethodPatch, woPath, map[string]any{"status": "COMPLETED"})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "cannot complete without registered services", body["message"])

	status, item := doJSON(t, r, http.MethodPost, woPath+"/line-items", map[string]any{"service_id": service["id"], "quantity": 2})
	require.Equal(t, http.StatusCreated, status, item)

	status, wo = doJSON(t, r, http.MethodGet, woPath, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "159.80", wo["final_value"])

	status, body = doJSON(t, r, http.MethodPost, woPath+"/payments", map[string]any{"mp_payload": map[string]any{}})
	require.Equal(t, http.StatusBadRequest, status, body)

	status, wo = doJSON(t, r, http.MethodPatch, woPath, map[string]any{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, status, wo)
	assert.Equal(t, "COMPLETED", wo["status"])
	assert.NotNil(t, wo["closed_at"])

	status, body = doJSON(t, r, http.MethodDelete, woPath, nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "cannot delete a completed order", body["message"])

	status, payment := doJSON(t, r, http.MethodPost, woPath+"/payments", nil)
	require.Equal(t, http.StatusOK, status, payment)
	assert.Equal(t, "159.80", payment["amount"])
	assert.Equal(t, "approved", payment["status"])

	status, latest := doJSON(t, r, http.MethodGet, woPath+"/payments/latest", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, payment["id"], latest["id"])
}

func TestRouter_CancelledOrderIsHidden(t *testing.T) {
	r, _ := newTestRouter(t)

	_, customer := doJSON(t, r, http.MethodPost, "/v1/customers", map[string]any{
		"name": "Maria Silva", "phone": "11999990000", "document": "12345678901",
	})
	_, vehicle := doJSON(t, r, http.MethodPost, "/v1/vehicles", map[string]any{
		"plate": "XYZ9A88", "model": "CG 160", "brand": "Honda", "year": 2022, "type": "MOTORCYCLE",
		"customer_id": customer["id"],
	})
	_, wo := doJSON(t, r, http.MethodPost, "/v1/work-orders", map[string]any{
		"customer_id": customer["id"], "vehicle_id": vehicle["id"], "description": "Brakes",
	})
	woPath := "/v1/work-orders/" + wo["id"].(string)

	status, cancelled := doJSON(t, r, http.MethodDelete, woPath, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "CANCELLED", cancelled["status"])

	status, _ = doJSON(t, r, http.MethodGet, woPath, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, list := doJSON(t, r, http.MethodGet, "/v1/work-orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list["items"])
}
