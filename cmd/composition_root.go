package cmd

import (
	"fmt"
	"log/slog"

	"instafood/internal/activities"
	"instafood/internal/adapters/out/megaburgerapi"
	"instafood/internal/adapters/out/postgres/megaburgerrepo"
	"instafood/internal/jobs"
	"instafood/internal/megaburger"
	"instafood/internal/workflows"

	"go.temporal.io/sdk/client"
	sdklog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the application's dependencies from configuration.
type CompositionRoot struct {
	config Config
	logger *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		logger: logger,
	}
}

// CreateTemporalClient connects to the Temporal server, routing SDK logs
// through the application logger.
func (c *CompositionRoot) CreateTemporalClient() (client.Client, error) {
	return client.Dial(client.Options{
		HostPort:  c.config.TemporalHostPort,
		Namespace: c.config.TemporalNamespace,
		Logger:    sdklog.NewStructuredLogger(c.logger),
	})
}

// CreateWorker builds the order-fulfillment worker with every workflow and
// activity registered. Activity registration names must stay in sync with
// the names the workflows invoke.
func (c *CompositionRoot) CreateWorker(temporalClient client.Client) worker.Worker {
	w := worker.New(temporalClient, workflows.TaskQueue, worker.Options{})

	w.RegisterWorkflow(workflows.OrderWorkflow)
	w.RegisterWorkflow(workflows.MegaBurgerOrderWorkflow)
	w.RegisterWorkflow(workflows.CourierDeliveryWorkflow)

	w.RegisterActivity(c.CreateMegaBurgerOrderActivities())
	w.RegisterActivity(activities.NewCourierGPSActivities())
	return w
}

// CreateMegaBurgerOrderActivities builds the backend activities over the
// HTTP client.
func (c *CompositionRoot) CreateMegaBurgerOrderActivities() *activities.MegaBurgerOrderActivities {
	return activities.NewMegaBurgerOrderActivities(megaburgerapi.NewClient(c.config.MegaBurgerAPIURL))
}

// CreateOrderStore builds the backend's order store: postgres when database
// settings are present, in-memory otherwise.
func (c *CompositionRoot) CreateOrderStore() (megaburger.OrderStore, error) {
	if !c.config.UsePostgres() {
		return megaburger.NewMemoryStore(), nil
	}

	db, err := gorm.Open(postgres.Open(c.config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return megaburgerrepo.NewGormOrderStore(db)
}

// CreateOrdersAPI builds the backend's HTTP API over the given store.
func (c *CompositionRoot) CreateOrdersAPI(store megaburger.OrderStore) *megaburger.OrdersAPI {
	return megaburger.NewOrdersAPI(store, c.logger)
}

// CreateKitchenSimulator builds the demo kitchen job over the given store.
func (c *CompositionRoot) CreateKitchenSimulator(store megaburger.OrderStore) *jobs.KitchenSimulatorJob {
	return jobs.NewKitchenSimulatorJob(store, c.logger)
}
