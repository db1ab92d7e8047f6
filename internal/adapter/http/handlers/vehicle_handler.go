package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// CreateVehicle godoc
// @Summary  Register a vehicle for an active customer
// @Tags     vehicles
// @Accept   json
// @Produce  json
// @Param    body body request.CreateVehicleRequest true "vehicle"
// @Success  201 {object} response.VehicleResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

// GetVehicle godoc
// @Summary  Get a vehicle
// @Tags     vehicles
// @Produce  json
// @Param    id path string true "vehicle id"
// @Success  200 {object} response.VehicleResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

// ListVehicles godoc
// @Summary  List active vehicles
// @Tags     vehicles
// @Produce  json
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.VehicleResponse]
// @Router   /v1/vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	vehicles, err := h.usecase.List(c.Request.Context(), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(vehicles, response.FromVehicle))
}

// ListCustomerVehicles godoc
// @Summary  List the active vehicles of a customer
// @Tags     vehicles
// @Produce  json
// @Param    id         path  string true  "customer id"
// @Param    page_size  query int    false "page size (max 100)"
// @Param    page_token query string false "token from the previous page"
// @Success  200 {object} response.PageResponse[response.VehicleResponse]
// @Router   /v1/customers/{id}/vehicles [get]
func (h *VehicleHandler) ListCustomerVehicles(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	vehicles, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(vehicles, response.FromVehicle))
}

// UpdateVehicle godoc
// @Summary  Partially update a vehicle
// @Tags     vehicles
// @Accept   json
// @Produce  json
// @Param    id   path string true "vehicle id"
// @Param    body body request.UpdateVehicleRequest true "fields to change"
// @Success  200 {object} response.VehicleResponse
// @Router   /v1/vehicles/{id} [patch]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	vehicle, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

// DeleteVehicle godoc
// @Summary  Deactivate a vehicle
// @Tags     vehicles
// @Param    id path string true "vehicle id"
// @Success  204
// @Router   /v1/vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
