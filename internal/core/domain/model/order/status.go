package order

import (
	"fmt"

	"instafood/internal/pkg/errs"
)

// Status represents the lifecycle state of a food order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	CREATED -> PENDING -> ACCEPTED -> COOKING -> READY -> RESTAURANT_DELIVERED   (pickup)
//	                 \                               \
//	                  -> REJECTED                     -> COURIER_ACCEPTED -> PICKED_UP -> COURIER_DELIVERED
//	                                                  \
//	                                                   -> COURIER_REJECTED
//
// RESTAURANT_DELIVERED and PICKED_UP interleave on delivery orders because
// the restaurant hand-off and the courier trip are reported independently.
type Status string

const (
	// StatusCreated is the initial status before the restaurant has seen the order.
	StatusCreated Status = "CREATED"

	// StatusPending means the order was placed with the restaurant and awaits a decision.
	StatusPending Status = "PENDING"

	// StatusAccepted means the restaurant accepted the order.
	StatusAccepted Status = "ACCEPTED"

	// StatusRejected means the restaurant rejected the order. Terminal.
	StatusRejected Status = "REJECTED"

	// StatusCooking means the kitchen is preparing the order.
	StatusCooking Status = "COOKING"

	// StatusReady means the order is ready for hand-off.
	StatusReady Status = "READY"

	// StatusCourierAccepted means a courier accepted the delivery job.
	StatusCourierAccepted Status = "COURIER_ACCEPTED"

	// StatusCourierRejected means the courier rejected the delivery job. Terminal.
	StatusCourierRejected Status = "COURIER_REJECTED"

	// StatusRestaurantDelivered means the restaurant handed the order over.
	// Terminal for pickup orders.
	StatusRestaurantDelivered Status = "RESTAURANT_DELIVERED"

	// StatusPickedUp means the courier picked the order up.
	StatusPickedUp Status = "PICKED_UP"

	// StatusCourierDelivered means the courier delivered the order. Terminal.
	StatusCourierDelivered Status = "COURIER_DELIVERED"
)

// EtaUnknown is the ETA value reported until the restaurant supplies one.
const EtaUnknown = -1

// getValidStatuses returns the set of all valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusCreated:             {},
		StatusPending:             {},
		StatusAccepted:            {},
		StatusRejected:            {},
		StatusCooking:             {},
		StatusReady:               {},
		StatusCourierAccepted:     {},
		StatusCourierRejected:     {},
		StatusRestaurantDelivered: {},
		StatusPickedUp:            {},
		StatusCourierDelivered:    {},
	}
}

// getStatusTransitions returns the directed transition graph of the lifecycle.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:             {StatusPending},
		StatusPending:             {StatusAccepted, StatusRejected},
		StatusAccepted:            {StatusCooking},
		StatusCooking:             {StatusReady},
		StatusReady:               {StatusRestaurantDelivered, StatusCourierAccepted, StatusCourierRejected},
		StatusCourierAccepted:     {StatusPickedUp},
		StatusPickedUp:            {StatusCourierDelivered, StatusRestaurantDelivered},
		StatusRestaurantDelivered: {StatusCourierDelivered},
	}
}

// Validate checks that the Status is one of the known lifecycle values.
// Used on values arriving from external sources (signals, HTTP, database).
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether next is reachable from s in a single step
// of the lifecycle graph. A status may always re-announce itself; repeated
// identical updates are a no-op for observers.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	return len(getStatusTransitions()[s]) == 0 && s.Validate() == nil
}
