package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/customers"
	PathVehicles   = "/vehicles"
	PathServices   = "/services"
	PathLineItems  = "/line-items"
	PathWorkOrders = "/work-orders"
	PathPayments   = "/payments"
)

func addWorkshopRoutes(rg *gin.RouterGroup, h Handlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.Customers.CreateCustomer)
		customers.GET("", h.Customers.ListCustomers)
		customers.GET("/:id", h.Customers.GetCustomer)
		customers.PATCH("/:id", h.Customers.UpdateCustomer)
		customers.DELETE("/:id", h.Customers.DeleteCustomer)
		customers.GET("/:id/vehicles", h.Vehicles.ListCustomerVehicles)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", h.Vehicles.CreateVehicle)
		vehicles.GET("", h.Vehicles.ListVehicles)
		vehicles.GET("/:id", h.Vehicles.GetVehicle)
		vehicles.PATCH("/:id", h.Vehicles.UpdateVehicle)
		vehicles.DELETE("/:id", h.Vehicles.DeleteVehicle)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", h.Services.CreateService)
		services.GET("", h.Services.ListServices)
		services.GET("/:id", h.Services.GetService)
		services.PATCH("/:id", h.Services.UpdateService)
		services.DELETE("/:id", h.Services.DeleteService)
	}

	lineItems := rg.Group(PathLineItems)
	{
		lineItems.POST("", h.LineItems.CreateLineItem)
		lineItems.GET("", h.LineItems.ListLineItems)
		lineItems.GET("/:id", h.LineItems.GetLineItem)
		lineItems.PATCH("/:id", h.LineItems.UpdateLineItem)
		lineItems.DELETE("/:id", h.LineItems.DeleteLineItem)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", h.WorkOrders.CreateWorkOrder)
		workOrders.GET("", h.WorkOrders.ListWorkOrders)
		workOrders.GET("/:id", h.WorkOrders.GetWorkOrder)
		workOrders.PATCH("/:id", h.WorkOrders.UpdateWorkOrder)
		workOrders.DELETE("/:id", h.WorkOrders.CancelWorkOrder)
		workOrders.POST("/:id/line-items", h.LineItems.AddWorkOrderLineItem)
		workOrders.GET("/:id/line-items", h.LineItems.ListWorkOrderLineItems)
		workOrders.POST("/:id/payments", h.Payments.PayWorkOrder)
		workOrders.GET("/:id/payments", h.Payments.ListWorkOrderPayments)
		workOrders.GET("/:id/payments/latest", h.Payments.GetLatestPayment)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", h.Payments.GetPayment)
	}
}
