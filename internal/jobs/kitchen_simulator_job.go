package jobs

import (
	"context"
	"log/slog"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"

	"github.com/robfig/cron/v3"
)

// simulatedEtaMinutes is the cooking estimate the simulated kitchen attaches
// when accepting an order.
const simulatedEtaMinutes = 15

// KitchenSimulatorJob plays the role of restaurant staff: every 15 seconds it
// advances each active order one stage of the kitchen lifecycle
// (PENDING -> ACCEPTED -> COOKING -> READY), attaching an ETA on acceptance.
// Orders in any other status are left alone.
type KitchenSimulatorJob struct {
	store  megaburger.OrderStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewKitchenSimulatorJob creates the simulator over the given order store.
func NewKitchenSimulatorJob(store megaburger.OrderStore, logger *slog.Logger) *KitchenSimulatorJob {
	return &KitchenSimulatorJob{
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "kitchen_simulator_job"),
	}
}

// Start begins advancing orders every 15 seconds.
func (j *KitchenSimulatorJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen simulator run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen simulator started (running every 15 seconds)")
	return nil
}

// Stop stops the simulator.
func (j *KitchenSimulatorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen simulator stopped")
}

// RunOnce advances every active order a single stage. It is the body of one
// cron tick, exposed so tests and tooling can drive the kitchen directly.
func (j *KitchenSimulatorJob) RunOnce(ctx context.Context) error {
	orders, err := j.store.List(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		var next order.Status
		switch o.Status {
		case order.StatusPending:
			next = order.StatusAccepted
			o.UpdateEta(simulatedEtaMinutes)
		case order.StatusAccepted:
			next = order.StatusCooking
		case order.StatusCooking:
			next = order.StatusReady
		default:
			continue
		}

		if err := o.UpdateStatus(next); err != nil {
			return err
		}
		if err := j.store.Update(ctx, o); err != nil {
			return err
		}
		j.logger.InfoContext(ctx, "Advanced order", "order_id", o.ID, "status", o.Status)
	}
	return nil
}
