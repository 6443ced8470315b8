package activities

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// RegisterGPSTrackingActivity is the registered name of the GPS activity.
const RegisterGPSTrackingActivity = "RegisterDeliveryGPSTracking"

// CourierGPSActivities registers courier trips with the GPS tracking provider.
type CourierGPSActivities struct{}

// NewCourierGPSActivities creates the GPS activities.
func NewCourierGPSActivities() *CourierGPSActivities {
	return &CourierGPSActivities{}
}

// RegisterDeliveryGPSTracking registers a delivery trip for live tracking and
// reports whether the courier supports it. The provider integration is not
// built yet; every registration currently succeeds.
func (a *CourierGPSActivities) RegisterDeliveryGPSTracking(ctx context.Context, pickupLocation, deliveryLocation string) (bool, error) {
	activity.GetLogger(ctx).Info("GPS tracking enabled",
		"pickup", pickupLocation, "delivery", deliveryLocation)
	return true, nil
}
