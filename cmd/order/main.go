// Command order places a demo food order and follows it to completion,
// printing the status reported by the order workflow every couple of seconds.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"instafood/cmd"
	"instafood/internal/core/domain/model/order"
	"instafood/internal/workflows"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"go.temporal.io/sdk/client"
)

func main() {
	configs := cmd.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, logger)

	temporalClient, err := root.CreateTemporalClient()
	if err != nil {
		log.Fatalf("Unable to connect to Temporal: %v", err)
	}
	defer temporalClient.Close()

	o, err := order.NewFoodOrder(order.RestaurantMegaBurger, "vegan burger", 2,
		"+54 112343-2324", "Diaz Velez 433", false)
	if err != nil {
		log.Fatalf("Invalid order: %v", err)
	}

	ctx := context.Background()
	run, err := temporalClient.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "order-" + uuid.NewString(),
		TaskQueue: workflows.TaskQueue,
	}, workflows.OrderWorkflow, o)
	if err != nil {
		log.Fatalf("Unable to start order workflow: %v", err)
	}
	logger.Info("Order placed", "workflow_id", run.GetID())

	done := make(chan error, 1)
	go func() { done <- run.Get(ctx, nil) }()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			if err != nil {
				log.Fatalf("Order failed: %v", err)
			}
			logger.Info("Order completed")
			return
		case <-ticker.C:
			val, err := temporalClient.QueryWorkflow(ctx, run.GetID(), "", workflows.OrderStatusQuery)
			if err != nil {
				logger.Warn("Status query failed", "error", err)
				continue
			}
			var status order.Status
			if err := val.Get(&status); err != nil {
				logger.Warn("Status decode failed", "error", err)
				continue
			}
			logger.Info("Order status", "status", status)
		}
	}
}
