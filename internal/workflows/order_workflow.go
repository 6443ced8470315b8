package workflows

import (
	"fmt"
	"time"

	"instafood/internal/core/domain/model/delivery"
	"instafood/internal/core/domain/model/order"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TaskQueue is the task queue all order workflows and their activities run on.
const TaskQueue = "instafood-orders"

// Signal and query names. UpdateStatusSignal is shared: OrderWorkflow
// receives it with an order.Status payload, CourierDeliveryWorkflow with a
// delivery.Status payload.
const (
	UpdateStatusSignal = "updateStatus"
	UpdateEtaSignal    = "updateEta"
	OrderStatusQuery   = "getStatus"
	EtaQuery           = "getEtaInMinutes"
	GPSTrackingQuery   = "courierSupportsGpsTracking"
)

// Application error types identifying the fatal workflow outcomes.
const (
	UnsupportedRestaurantError = "UnsupportedRestaurant"
	OrderRejectedError         = "OrderRejected"
	RestaurantRejectedError    = "RestaurantRejected"
	CourierRejectedError       = "CourierRejected"
)

// Child workflow ids are derived from the parent id so operators and tests
// can address a child without listing executions.
const (
	megaBurgerChildSuffix = "-megaburger"
	courierChildSuffix    = "-courier"
)

// Backend and GPS calls share one retry envelope: first retry after 10s, at
// most 3 attempts, 5 minutes for the whole invocation.
const (
	pollInterval         = 10 * time.Second
	externalCallTimeout  = 5 * time.Minute
	externalCallBackoff  = 10 * time.Second
	externalCallAttempts = 3
)

// OrderWorkflow coordinates a food order from placement to hand-over. It
// spawns the restaurant workflow, waits for an ETA, then either waits for the
// customer to pick the order up or dispatches a courier and waits for the
// delivery to finish. All progress arrives as status signals from the
// children; the current status and ETA are queryable at any point.
func OrderWorkflow(ctx workflow.Context, o order.FoodOrder) error {
	logger := workflow.GetLogger(ctx)

	currentStatus := order.StatusCreated
	etaInMinutes := order.EtaUnknown

	if err := workflow.SetQueryHandler(ctx, OrderStatusQuery, func() (order.Status, error) {
		return currentStatus, nil
	}); err != nil {
		return err
	}
	if err := workflow.SetQueryHandler(ctx, EtaQuery, func() (int, error) {
		return etaInMinutes, nil
	}); err != nil {
		return err
	}

	workflow.Go(ctx, func(ctx workflow.Context) {
		ch := workflow.GetSignalChannel(ctx, UpdateStatusSignal)
		for {
			var status order.Status
			ch.Receive(ctx, &status)
			currentStatus = status
		}
	})
	workflow.Go(ctx, func(ctx workflow.Context) {
		ch := workflow.GetSignalChannel(ctx, UpdateEtaSignal)
		for {
			var minutes int
			ch.Receive(ctx, &minutes)
			etaInMinutes = minutes
		}
	})

	if err := o.Restaurant.Validate(); err != nil {
		return temporal.NewApplicationError(
			fmt.Sprintf("%s invalid, restaurant option not available", o.Restaurant),
			UnsupportedRestaurantError)
	}

	if err := startChild(ctx, megaBurgerChildSuffix, MegaBurgerOrderWorkflow, o); err != nil {
		return err
	}

	// Wait for an ETA, or abort if the restaurant rejected the order.
	if err := workflow.Await(ctx, func() bool {
		return etaInMinutes != order.EtaUnknown || currentStatus == order.StatusRejected
	}); err != nil {
		return err
	}
	if currentStatus == order.StatusRejected {
		return temporal.NewApplicationError("order was rejected by restaurant", OrderRejectedError)
	}

	if o.Pickup {
		if err := workflow.Await(ctx, func() bool {
			return currentStatus == order.StatusRestaurantDelivered
		}); err != nil {
			return err
		}
		logger.Info("Order handed over for pickup")
		return nil
	}

	// Give the kitchen until the predicted ETA to mark the order READY, but
	// dispatch the courier as soon as it does. A fired timer only ends the
	// wait; the status value stands.
	if _, err := workflow.AwaitWithTimeout(ctx, timeToSendCourier(etaInMinutes), func() bool {
		return currentStatus == order.StatusReady
	}); err != nil {
		return err
	}

	if err := startChild(ctx, courierChildSuffix, CourierDeliveryWorkflow, delivery.NewJob(o)); err != nil {
		return err
	}

	if err := workflow.Await(ctx, func() bool {
		return currentStatus == order.StatusCourierDelivered || currentStatus == order.StatusCourierRejected
	}); err != nil {
		return err
	}
	if currentStatus == order.StatusCourierRejected {
		return temporal.NewApplicationError("delivery was rejected by courier", CourierRejectedError)
	}
	logger.Info("Order delivered by courier")
	return nil
}

// timeToSendCourier converts the restaurant's ETA into the courier dispatch
// budget.
// TODO: replace with a dispatch-planning activity; the raw ETA is a
// placeholder policy.
func timeToSendCourier(etaInMinutes int) time.Duration {
	return time.Duration(etaInMinutes) * time.Minute
}

// startChild starts a child workflow and waits only until it is scheduled,
// never for its result: children report progress through signals, and a
// child's failure must not propagate here as an error. Children are
// abandoned on parent close so a late child can finish its own bookkeeping.
func startChild(ctx workflow.Context, suffix string, child any, arg any) error {
	childCtx := workflow.WithChildOptions(ctx, workflow.ChildWorkflowOptions{
		WorkflowID:        workflow.GetInfo(ctx).WorkflowExecution.ID + suffix,
		ParentClosePolicy: enumspb.PARENT_CLOSE_POLICY_ABANDON,
	})

	return workflow.ExecuteChildWorkflow(childCtx, child, arg).
		GetChildWorkflowExecution().Get(ctx, nil)
}

// signalParentStatus reports a status transition to the parent order
// workflow. Workflows started without a parent have nobody to notify.
func signalParentStatus(ctx workflow.Context, status order.Status) error {
	parent := workflow.GetInfo(ctx).ParentWorkflowExecution
	if parent == nil {
		return nil
	}
	return workflow.SignalExternalWorkflow(ctx, parent.ID, "", UpdateStatusSignal, status).Get(ctx, nil)
}

// signalParentEta pushes the restaurant's ETA to the parent order workflow.
func signalParentEta(ctx workflow.Context, minutes int) error {
	parent := workflow.GetInfo(ctx).ParentWorkflowExecution
	if parent == nil {
		return nil
	}
	return workflow.SignalExternalWorkflow(ctx, parent.ID, "", UpdateEtaSignal, minutes).Get(ctx, nil)
}
