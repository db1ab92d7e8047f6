package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder godoc
// @Summary  Open a work order
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    body body request.CreateWorkOrderRequest true "work order"
// @Success  201 {object} response.WorkOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

// GetWorkOrder godoc
// @Summary  Get a work order
// @Description Cancelled orders are reported as not found.
// @Tags     work-orders
// @Produce  json
// @Param    id path string true "work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// ListWorkOrders godoc
// @Summary  List work orders that are not cancelled
// @Tags     work-orders
// @Produce  json
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.WorkOrderResponse]
// @Router   /v1/work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	orders, err := h.usecase.List(c.Request.Context(), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(orders, response.FromWorkOrder))
}

// UpdateWorkOrder godoc
// @Summary  Change a work order's description, final value or status
// @Description Completing requires at least one active line item and a final value.
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id   path string true "work order id"
// @Param    body body request.UpdateWorkOrderRequest true "fields to change"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id} [patch]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	var payload request.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	wo, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// CancelWorkOrder godoc
// @Summary  Cancel a work order
// @Description The order is kept with status CANCELLED. Completed orders cannot be cancelled.
// @Tags     work-orders
// @Produce  json
// @Param    id path string true "work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id} [delete]
func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	wo, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}
