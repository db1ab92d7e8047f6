package routes

import (
	_ "oficina_mecanica/docs"
	request "oficina_mecanica/internal/adapter/http/dto/request"
	"oficina_mecanica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Customers  *handlers.CustomerHandler
	Vehicles   *handlers.VehicleHandler
	Services   *handlers.CatalogEntryHandler
	LineItems  *handlers.LineItemHandler
	WorkOrders *handlers.WorkOrderHandler
	Payments   *handlers.PaymentHandler
}

// NewRouter builds the gin engine: middlewares, swagger and the versioned API.
func NewRouter(logger *zap.Logger, mode string, h Handlers) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}
	request.RegisterValidators()

	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(recovery())
}
