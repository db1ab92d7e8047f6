package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body request.CreateCustomerRequest true "customer"
// @Success  201 {object} response.CustomerResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// GetCustomer godoc
// @Summary  Get an active customer
// @Tags     customers
// @Produce  json
// @Param    id path string true "customer id"
// @Success  200 {object} response.CustomerResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ListCustomers godoc
// @Summary  List active customers
// @Tags     customers
// @Produce  json
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.CustomerResponse]
// @Router   /v1/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	customers, err := h.usecase.List(c.Request.Context(), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(customers, response.FromCustomer))
}

// UpdateCustomer godoc
// @Summary  Partially update a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id   path string true "customer id"
// @Param    body body request.UpdateCustomerRequest true "fields to change"
// @Success  200 {object} response.CustomerResponse
// @Router   /v1/customers/{id} [patch]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// DeleteCustomer godoc
// @Summary  Deactivate a customer
// @Tags     customers
// @Param    id path string true "customer id"
// @Success  204
// @Router   /v1/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
