package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_mecanica/internal/adapter/http/handlers/mocks"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCustomerRouter(t *testing.T) (*gin.Engine, *mocks.MockICustomerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	r := gin.New()
	r.POST("/v1/customers", h.CreateCustomer)
	r.GET("/v1/customers", h.ListCustomers)
	r.GET("/v1/customers/:id", h.GetCustomer)
	r.PATCH("/v1/customers/:id", h.UpdateCustomer)
	r.DELETE("/v1/customers/:id", h.DeleteCustomer)
	return r, uc
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newCustomerRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Jo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate document", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateCustomerInput{
			Name: "Maria Silva", Phone: "11999990000", Document: "12345678901",
		}).Return(entities.Customer{}, entities.ErrDocumentAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Maria Silva","phone":"11999990000","document":"12345678901"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "document already registered" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{ID: "c-1", Name: "Maria Silva", Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Maria Silva","phone":"11999990000","document":"12345678901","email":"maria@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	r, uc := newCustomerRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Customer{}, entities.NewNotFound("customer", "c-404"))

	req := httptest.NewRequest(http.MethodGet, "/v1/customers/c-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	t.Run("page size too large", func(t *testing.T) {
		r, _ := newCustomerRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers?page_size=500", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.PageRequest{Token: "garbage"}).Return(entities.Page[entities.Customer]{}, pagination.ErrInvalidPageToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers?page_token=garbage", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.PageRequest{Size: 1}).Return(entities.Page[entities.Customer]{
			Items:         []entities.Customer{{ID: "c-1"}},
			NextPageToken: "tok",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers?page_size=1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items         []map[string]any `json:"items"`
			NextPageToken string           `json:"next_page_token"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Items) != 1 || body.NextPageToken != "tok" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_UpdateAndDelete(t *testing.T) {
	r, uc := newCustomerRouter(t)
	phone := "11988887777"
	uc.EXPECT().Update(gomock.Any(), "c-1", entities.CustomerPatch{Phone: &phone}).Return(entities.Customer{ID: "c-1", Phone: phone}, nil)
	uc.EXPECT().Deactivate(gomock.Any(), "c-1").Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-1", bytes.NewBufferString(`{"phone":"11988887777"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/customers/c-1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
