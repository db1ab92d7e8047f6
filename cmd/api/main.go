package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"oficina_mecanica/internal/adapter/http/handlers"
	"oficina_mecanica/internal/adapter/http/routes"
	"oficina_mecanica/internal/adapter/persistence/memory"
	"oficina_mecanica/internal/adapter/persistence/repository"
	"oficina_mecanica/internal/config"
	"oficina_mecanica/internal/infrastructure/database"
	"oficina_mecanica/internal/infrastructure/logging"
	"oficina_mecanica/internal/infrastructure/payments"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// @title           Oficina Mecanica API
// @version         1.0
// @description     Vehicle workshop: customers, vehicles, service catalog, work orders and payments.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

type repositories struct {
	uow        interfaces.IUnitOfWork
	customers  interfaces.ICustomerRepository
	vehicles   interfaces.IVehicleRepository
	catalog    interfaces.ICatalogEntryRepository
	lineItems  interfaces.ILineItemRepository
	workOrders interfaces.IWorkOrderRepository
	payments   interfaces.IPaymentRepository
}

func main() {
	if err := config.Load(); err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg := config.C()

	logger, err := logging.NewLogger(cfg.Logger().Level(), cfg.Logger().AsJSON())
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg := config.C()

	repos, err := newRepositories(ctx, logger)
	if err != nil {
		return err
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.Payments().AccessToken(), cfg.Payments().MockMode(), logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	paymentOpts := usecase.PaymentOptions{
		MockMode:        cfg.Payments().MockMode(),
		AccessToken:     cfg.Payments().AccessToken(),
		TestPayerEmail:  cfg.Payments().TestPayerEmail(),
		TestPayerUserID: cfg.Payments().TestPayerUserID(),
	}

	router := routes.NewRouter(logger, cfg.HTTP().GinMode(), routes.Handlers{
		Customers:  handlers.NewCustomerHandler(usecase.NewCustomerUseCase(repos.customers)),
		Vehicles:   handlers.NewVehicleHandler(usecase.NewVehicleUseCase(repos.vehicles, repos.customers)),
		Services:   handlers.NewCatalogEntryHandler(usecase.NewCatalogEntryUseCase(repos.catalog)),
		LineItems:  handlers.NewLineItemHandler(usecase.NewLineItemUseCase(repos.uow, repos.lineItems, repos.catalog)),
		WorkOrders: handlers.NewWorkOrderHandler(usecase.NewWorkOrderUseCase(repos.uow, repos.workOrders, repos.customers, repos.vehicles)),
		Payments: handlers.NewPaymentHandler(
			usecase.NewPaymentUseCase(repos.payments, repos.workOrders, gateway, paymentOpts),
			paymentOpts.MockMode,
		),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP().Address(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP().ReadTimeout(),
		ReadHeaderTimeout: cfg.HTTP().ReadTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage().Driver()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP().ShutdownTimeout())
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRepositories(ctx context.Context, logger *zap.Logger) (repositories, error) {
	cfg := config.C()

	if cfg.Storage().UseMemory() {
		logger.Warn("using in-memory storage, data is lost on restart")
		s := memory.NewStore()
		return repositories{
			uow:        memory.NewUnitOfWork(s),
			customers:  memory.NewCustomerRepository(s),
			vehicles:   memory.NewVehicleRepository(s),
			catalog:    memory.NewCatalogEntryRepository(s),
			lineItems:  memory.NewLineItemRepository(s),
			workOrders: memory.NewWorkOrderRepository(s),
			payments:   memory.NewPaymentRepository(s),
		}, nil
	}

	ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB())
	if err != nil {
		return repositories{}, err
	}
	tables := tablesFromConfig(cfg.DynamoDB())
	if cfg.Storage().AutoCreateTables() {
		if err := repository.EnsureTables(ctx, ddb, tables); err != nil {
			return repositories{}, err
		}
		logger.Info("dynamodb tables ready")
	}

	return repositories{
		uow:        repository.NewDynamoUnitOfWork(ddb, tables),
		customers:  repository.NewCustomerDynamoRepository(ddb, tables),
		vehicles:   repository.NewVehicleDynamoRepository(ddb, tables),
		catalog:    repository.NewCatalogEntryDynamoRepository(ddb, tables),
		lineItems:  repository.NewLineItemDynamoRepository(ddb, tables),
		workOrders: repository.NewWorkOrderDynamoRepository(ddb, tables),
		payments:   repository.NewPaymentDynamoRepository(ddb, tables),
	}, nil
}

func tablesFromConfig(c config.DynamoDB) repository.Tables {
	return repository.Tables{
		Customers:  c.CustomersTable(),
		Vehicles:   c.VehiclesTable(),
		Services:   c.ServicesTable(),
		LineItems:  c.LineItemsTable(),
		WorkOrders: c.WorkOrdersTable(),
		Payments:   c.PaymentsTable(),
		UniqueKeys: c.UniqueKeysTable(),
	}
}
