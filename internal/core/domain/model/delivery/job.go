package delivery

import (
	"instafood/internal/core/domain/model/order"
)

// Job describes a courier delivery trip: where to pick the order up and where
// to bring it. It is derived from a FoodOrder by the dispatcher when courier
// delivery is needed and never mutated afterwards.
type Job struct {
	Restaurant order.Restaurant `json:"restaurant"`
	Address    string           `json:"address"`
	Telephone  string           `json:"telephone"`
}

// NewJob derives a courier delivery Job from a placed food order.
func NewJob(o order.FoodOrder) Job {
	return Job{
		Restaurant: o.Restaurant,
		Address:    o.Address,
		Telephone:  o.Telephone,
	}
}

// PickupLocation is the human-readable pickup point handed to GPS tracking.
func (j Job) PickupLocation() string {
	return string(j.Restaurant)
}

// DeliveryLocation is the human-readable drop-off point handed to GPS tracking.
func (j Job) DeliveryLocation() string {
	return j.Address
}
