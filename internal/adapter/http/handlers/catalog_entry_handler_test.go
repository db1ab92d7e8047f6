package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_mecanica/internal/adapter/http/handlers/mocks"
	"oficina_mecanica/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogEntryHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewCatalogEntryHandler(mocks.NewMockICatalogEntryUseCase(ctrl))
		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"Oil change"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogEntryUseCase(ctrl)
		h := NewCatalogEntryHandler(uc)
		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		price := decimal.RequireFromString("79.9")
		uc.EXPECT().Create(gomock.Any(), "Oil change", gomock.Any()).DoAndReturn(
			func(_ any, name string, p decimal.Decimal) (entities.CatalogEntry, error) {
				if !p.Equal(price) {
					t.Fatalf("expected price 79.9, got %s", p)
				}
				return entities.CatalogEntry{ID: "svc-1", Name: name, Price: p, Active: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"Oil change","price":79.9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["price"] != "79.90" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogEntryHandler_DeleteService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogEntryUseCase(ctrl)
	h := NewCatalogEntryHandler(uc)
	r := gin.New()
	r.DELETE("/v1/services/:id", h.DeleteService)

	uc.EXPECT().Deactivate(gomock.Any(), "svc-404").Return(entities.NewNotFound("service", "svc-404"))

	req := httptest.NewRequest(http.MethodDelete, "/v1/services/svc-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
