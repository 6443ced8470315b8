// Package activities holds the worker's activity implementations: the calls
// out of the durable workflow world into the MegaBurger backend and the GPS
// tracking provider. Retry policies are declared by the calling workflows,
// not here.
package activities

import (
	"context"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"

	"go.temporal.io/sdk/activity"
)

// Activity names as registered on the worker. Workflows invoke activities by
// these names so workflow code never needs an activity instance.
const (
	CreateOrderActivity  = "CreateOrder"
	GetOrderByIDActivity = "GetOrderByID"
)

// MegaBurgerOrders is the slice of the backend API the activities need.
type MegaBurgerOrders interface {
	Create(ctx context.Context, meal string, quantity int) (megaburger.Order, error)
	GetByID(ctx context.Context, id int) (megaburger.Order, error)
}

// MegaBurgerOrderActivities calls the MegaBurger order backend.
type MegaBurgerOrderActivities struct {
	api MegaBurgerOrders
}

// NewMegaBurgerOrderActivities creates the backend activities over the given
// API client.
func NewMegaBurgerOrderActivities(api MegaBurgerOrders) *MegaBurgerOrderActivities {
	return &MegaBurgerOrderActivities{api: api}
}

// CreateOrder places the food order with the backend and returns the remote
// order id used by the poll loop.
func (a *MegaBurgerOrderActivities) CreateOrder(ctx context.Context, o order.FoodOrder) (int, error) {
	created, err := a.api.Create(ctx, o.Meal, o.Quantity)
	if err != nil {
		return 0, err
	}

	activity.GetLogger(ctx).Info("Placed order with MegaBurger", "order_id", created.ID)
	return created.ID, nil
}

// GetOrderByID reads the backend's current record for the order.
func (a *MegaBurgerOrderActivities) GetOrderByID(ctx context.Context, id int) (megaburger.Order, error) {
	return a.api.GetByID(ctx, id)
}
