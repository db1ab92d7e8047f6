package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_mecanica/internal/adapter/http/handlers/mocks"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newLineItemRouter(t *testing.T) (*gin.Engine, *mocks.MockILineItemUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILineItemUseCase(ctrl)
	h := NewLineItemHandler(uc)

	r := gin.New()
	r.POST("/v1/line-items", h.CreateLineItem)
	r.GET("/v1/line-items/:id", h.GetLineItem)
	r.PATCH("/v1/line-items/:id", h.UpdateLineItem)
	r.DELETE("/v1/line-items/:id", h.DeleteLineItem)
	r.POST("/v1/work-orders/:id/line-items", h.AddWorkOrderLineItem)
	r.GET("/v1/work-orders/:id/line-items", h.ListWorkOrderLineItems)
	return r, uc
}

func TestLineItemHandler_Create(t *testing.T) {
	t.Run("zero quantity", func(t *testing.T) {
		r, _ := newLineItemRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items", bytes.NewBufferString(`{"work_order_id":"wo-1","service_id":"svc-1","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("work order from path", func(t *testing.T) {
		r, uc := newLineItemRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateLineItemInput{WorkOrderID: "wo-1", CatalogEntryID: "svc-1", Quantity: 2}).
			Return(entities.LineItem{ID: "li-1", WorkOrderID: "wo-1", CatalogEntryID: "svc-1", Quantity: 2, UnitPrice: decimal.RequireFromString("79.90"), Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/line-items", bytes.NewBufferString(`{"service_id":"svc-1","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["line_total"] != "159.80" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancelled order", func(t *testing.T) {
		r, uc := newLineItemRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LineItem{}, entities.ErrCancelledOrderImmutable)

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items", bytes.NewBufferString(`{"work_order_id":"wo-1","service_id":"svc-1","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_GetLineItem(t *testing.T) {
	t.Run("invalid flag", func(t *testing.T) {
		r, _ := newLineItemRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/line-items/li-1?include_inactive=maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("include inactive", func(t *testing.T) {
		r, uc := newLineItemRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "li-1", true).Return(entities.LineItem{ID: "li-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/line-items/li-1?include_inactive=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_UpdateConflict(t *testing.T) {
	r, uc := newLineItemRouter(t)
	qty := 3
	uc.EXPECT().Update(gomock.Any(), "li-1", entities.LineItemPatch{Quantity: &qty}).
		Return(entities.LineItem{}, fmt.Errorf("%w: work order wo-1", entities.ErrConflict))

	req := httptest.NewRequest(http.MethodPatch, "/v1/line-items/li-1", bytes.NewBufferString(`{"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestLineItemHandler_DeleteAndList(t *testing.T) {
	r, uc := newLineItemRouter(t)
	uc.EXPECT().SoftDelete(gomock.Any(), "li-1").Return(entities.ErrCancelledOrderImmutable)
	uc.EXPECT().ListByWorkOrder(gomock.Any(), "wo-1", entities.PageRequest{Size: 10}).Return(entities.Page[entities.LineItem]{Items: []entities.LineItem{}}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/line-items/li-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/line-items?page_size=10", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"items":[]}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
