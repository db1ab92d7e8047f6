package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogEntryHandler serves the service catalog under /v1/services.
type CatalogEntryHandler struct {
	usecase usecase.ICatalogEntryUseCase
}

func NewCatalogEntryHandler(uc usecase.ICatalogEntryUseCase) *CatalogEntryHandler {
	return &CatalogEntryHandler{usecase: uc}
}

// CreateService godoc
// @Summary  Add a service to the catalog
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    body body request.CreateServiceRequest true "service"
// @Success  201 {object} response.ServiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/services [post]
func (h *CatalogEntryHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), payload.Name, *payload.Price)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogEntry(entry))
}

// GetService godoc
// @Summary  Get a catalog service
// @Tags     services
// @Produce  json
// @Param    id path string true "service id"
// @Success  200 {object} response.ServiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/services/{id} [get]
func (h *CatalogEntryHandler) GetService(c *gin.Context) {
	entry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

// ListServices godoc
// @Summary  List active catalog services
// @Tags     services
// @Produce  json
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.ServiceResponse]
// @Router   /v1/services [get]
func (h *CatalogEntryHandler) ListServices(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	entries, err := h.usecase.List(c.Request.Context(), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(entries, response.FromCatalogEntry))
}

// UpdateService godoc
// @Summary  Partially update a catalog service
// @Description Price changes never reach line items already registered.
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id   path string true "service id"
// @Param    body body request.UpdateServiceRequest true "fields to change"
// @Success  200 {object} response.ServiceResponse
// @Router   /v1/services/{id} [patch]
func (h *CatalogEntryHandler) UpdateService(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

// DeleteService godoc
// @Summary  Deactivate a catalog service
// @Tags     services
// @Param    id path string true "service id"
// @Success  204
// @Router   /v1/services/{id} [delete]
func (h *CatalogEntryHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
