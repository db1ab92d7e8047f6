package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	"oficina_mecanica/internal/adapter/http/handlers/mocks"
	"oficina_mecanica/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVehicleRouter(t *testing.T) (*gin.Engine, *mocks.MockIVehicleUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)

	r := gin.New()
	r.POST("/v1/vehicles", h.CreateVehicle)
	r.GET("/v1/vehicles/:id", h.GetVehicle)
	r.GET("/v1/customers/:id/vehicles", h.ListCustomerVehicles)
	return r, uc
}

func TestVehicleHandler_CreateVehicle(t *testing.T) {
	t.Run("malformed plate", func(t *testing.T) {
		r, _ := newVehicleRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"plate":"12-AB","model":"Onix","brand":"Chevrolet","year":2020,"type":"CAR","customer_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inactive customer", func(t *testing.T) {
		r, uc := newVehicleRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, entities.ErrVehicleInactiveCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"plate":"ABC1D23","model":"Onix","brand":"Chevrolet","year":2020,"type":"CAR","customer_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newVehicleRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{ID: "v-1", Plate: "ABC1D23"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"plate":"abc1d23","model":"Onix","brand":"Chevrolet","year":2020,"type":"CAR","customer_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_ListCustomerVehicles(t *testing.T) {
	r, uc := newVehicleRouter(t)
	uc.EXPECT().ListByCustomer(gomock.Any(), "c-1", entities.PageRequest{}).Return(entities.Page[entities.Vehicle]{Items: []entities.Vehicle{{ID: "v-1"}}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "v-404").Return(entities.Vehicle{}, entities.NewNotFound("vehicle", "v-404"))

	req := httptest.NewRequest(http.MethodGet, "/v1/customers/c-1/vehicles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/vehicles/v-404", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
