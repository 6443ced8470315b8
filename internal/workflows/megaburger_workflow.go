package workflows

import (
	"instafood/internal/activities"
	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// MegaBurgerOrderWorkflow drives one order through the MegaBurger backend. It
// places the order, then mirrors the backend's status into the parent order
// workflow, polling through the kitchen stages until the order leaves READY
// (normally to RESTAURANT_DELIVERED, when the restaurant hands it over). The
// backend owns the status; this workflow only observes and reports it.
func MegaBurgerOrderWorkflow(ctx workflow.Context, o order.FoodOrder) error {
	logger := workflow.GetLogger(ctx)

	currentStatus := order.StatusCreated
	if err := workflow.SetQueryHandler(ctx, OrderStatusQuery, func() (order.Status, error) {
		return currentStatus, nil
	}); err != nil {
		return err
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		ScheduleToCloseTimeout: externalCallTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: externalCallBackoff,
			MaximumAttempts: externalCallAttempts,
		},
	})

	var orderID int
	if err := workflow.ExecuteActivity(ctx, activities.CreateOrderActivity, o).Get(ctx, &orderID); err != nil {
		return err
	}

	currentStatus = order.StatusPending
	if err := signalParentStatus(ctx, currentStatus); err != nil {
		return err
	}

	// The restaurant's first decision: accept or reject.
	status, err := pollStatusChange(ctx, orderID, order.StatusPending)
	if err != nil {
		return err
	}
	currentStatus = status
	if err := signalParentStatus(ctx, currentStatus); err != nil {
		return err
	}
	if currentStatus == order.StatusRejected {
		return temporal.NewApplicationError("order was rejected by restaurant", RestaurantRejectedError)
	}

	var record megaburger.Order
	if err := workflow.ExecuteActivity(ctx, activities.GetOrderByIDActivity, orderID).Get(ctx, &record); err != nil {
		return err
	}
	if record.EtaMinutes != nil {
		if err := signalParentEta(ctx, *record.EtaMinutes); err != nil {
			return err
		}
	}

	for isKitchenStage(currentStatus) {
		status, err := pollStatusChange(ctx, orderID, currentStatus)
		if err != nil {
			return err
		}
		currentStatus = status
		if err := signalParentStatus(ctx, currentStatus); err != nil {
			return err
		}
	}

	logger.Info("MegaBurger order handed over", "order_id", orderID, "status", currentStatus)
	return nil
}

// isKitchenStage reports whether the backend is still preparing the order.
// Leaving READY ends the kitchen's involvement.
func isKitchenStage(s order.Status) bool {
	return s == order.StatusAccepted || s == order.StatusCooking || s == order.StatusReady
}

// pollStatusChange reads the backend record every poll interval until its
// status differs from the given one.
func pollStatusChange(ctx workflow.Context, orderID int, from order.Status) (order.Status, error) {
	for {
		var record megaburger.Order
		if err := workflow.ExecuteActivity(ctx, activities.GetOrderByIDActivity, orderID).Get(ctx, &record); err != nil {
			return "", err
		}
		if record.Status != from {
			return record.Status, nil
		}
		if err := workflow.Sleep(ctx, pollInterval); err != nil {
			return "", err
		}
	}
}
