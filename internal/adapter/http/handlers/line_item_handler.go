package handlers

import (
	"net/http"
	"strconv"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

// LineItemHandler exposes the services registered on work orders. Every write
// answers with the line item; the owning order's final value is recalculated
// in the same transaction.
type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

// CreateLineItem godoc
// @Summary  Register a service on a work order
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    body body request.CreateLineItemRequest true "line item"
// @Success  201 {object} response.LineItemResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/line-items [post]
func (h *LineItemHandler) CreateLineItem(c *gin.Context) {
	var payload request.CreateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.create(c, payload.ToInput())
}

// AddWorkOrderLineItem godoc
// @Summary  Register a service on the work order in the path
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id   path string true "work order id"
// @Param    body body request.AddLineItemRequest true "line item"
// @Success  201 {object} response.LineItemResponse
// @Router   /v1/work-orders/{id}/line-items [post]
func (h *LineItemHandler) AddWorkOrderLineItem(c *gin.Context) {
	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.create(c, payload.ToInput(c.Param("id")))
}

func (h *LineItemHandler) create(c *gin.Context, in usecase.CreateLineItemInput) {
	item, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

// GetLineItem godoc
// @Summary  Get a line item
// @Tags     line-items
// @Produce  json
// @Param    id               path  string true  "line item id"
// @Param    include_inactive query bool   false "also return soft-deleted items"
// @Success  200 {object} response.LineItemResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/line-items/{id} [get]
func (h *LineItemHandler) GetLineItem(c *gin.Context) {
	includeInactive := false
	if raw := c.Query("include_inactive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(c, pkg.NewDomainError("INVALID_REQUEST", "include_inactive must be a boolean", err, http.StatusBadRequest))
			return
		}
		includeInactive = v
	}

	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), includeInactive)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(item))
}

// ListLineItems godoc
// @Summary  List active line items
// @Tags     line-items
// @Produce  json
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.LineItemResponse]
// @Router   /v1/line-items [get]
func (h *LineItemHandler) ListLineItems(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	items, err := h.usecase.List(c.Request.Context(), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(items, response.FromLineItem))
}

// ListWorkOrderLineItems godoc
// @Summary  List the active line items of a work order
// @Tags     line-items
// @Produce  json
// @Param    id         path  string true  "work order id"
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.LineItemResponse]
// @Router   /v1/work-orders/{id}/line-items [get]
func (h *LineItemHandler) ListWorkOrderLineItems(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListByWorkOrder(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(items, response.FromLineItem))
}

// UpdateLineItem godoc
// @Summary  Change a line item
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id   path string true "line item id"
// @Param    body body request.UpdateLineItemRequest true "fields to change"
// @Success  200 {object} response.LineItemResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/line-items/{id} [patch]
func (h *LineItemHandler) UpdateLineItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(item))
}

// DeleteLineItem godoc
// @Summary  Soft-delete a line item
// @Tags     line-items
// @Param    id path string true "line item id"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/line-items/{id} [delete]
func (h *LineItemHandler) DeleteLineItem(c *gin.Context) {
	if err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
