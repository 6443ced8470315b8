package workflows

import (
	"instafood/internal/activities"
	"instafood/internal/core/domain/model/delivery"
	"instafood/internal/core/domain/model/order"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// gpsTrackingChangeID versions the GPS tracking rollout so courier workflows
// started before the feature replay without scheduling the new activity.
const (
	gpsTrackingChangeID = "GPSTrackingSupported"
	gpsTrackingVersion  = 1
)

// CourierDeliveryWorkflow runs one courier job. The courier service pushes
// status signals (accepted, picked up, delivered) and the workflow relays
// each step to the parent order workflow in the customer-facing status
// vocabulary. A courier declining the job fails the workflow.
func CourierDeliveryWorkflow(ctx workflow.Context, job delivery.Job) error {
	logger := workflow.GetLogger(ctx)

	currentStatus := delivery.StatusCreated
	gpsSupported := false

	if err := workflow.SetQueryHandler(ctx, GPSTrackingQuery, func() (bool, error) {
		return gpsSupported, nil
	}); err != nil {
		return err
	}

	workflow.Go(ctx, func(ctx workflow.Context) {
		ch := workflow.GetSignalChannel(ctx, UpdateStatusSignal)
		for {
			var status delivery.Status
			ch.Receive(ctx, &status)
			currentStatus = status
		}
	})

	if err := workflow.Await(ctx, func() bool {
		return currentStatus != delivery.StatusCreated
	}); err != nil {
		return err
	}
	if currentStatus == delivery.StatusRejected {
		if err := signalParentStatus(ctx, order.StatusCourierRejected); err != nil {
			return err
		}
		return temporal.NewApplicationError("delivery was rejected by courier", CourierRejectedError)
	}
	if err := signalParentStatus(ctx, order.StatusCourierAccepted); err != nil {
		return err
	}

	if workflow.GetVersion(ctx, gpsTrackingChangeID, workflow.DefaultVersion, gpsTrackingVersion) == gpsTrackingVersion {
		actCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
			ScheduleToCloseTimeout: externalCallTimeout,
			RetryPolicy: &temporal.RetryPolicy{
				InitialInterval: externalCallBackoff,
				MaximumAttempts: externalCallAttempts,
			},
		})
		if err := workflow.ExecuteActivity(actCtx, activities.RegisterGPSTrackingActivity,
			job.PickupLocation(), job.DeliveryLocation()).Get(ctx, &gpsSupported); err != nil {
			return err
		}
	}

	if err := workflow.Await(ctx, func() bool {
		return currentStatus == delivery.StatusPickedUp
	}); err != nil {
		return err
	}
	if err := signalParentStatus(ctx, order.StatusPickedUp); err != nil {
		return err
	}

	if err := workflow.Await(ctx, func() bool {
		return currentStatus == delivery.StatusDelivered
	}); err != nil {
		return err
	}
	if err := signalParentStatus(ctx, order.StatusCourierDelivered); err != nil {
		return err
	}

	logger.Info("Delivery completed", "restaurant", job.Restaurant)
	return nil
}
