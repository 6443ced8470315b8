package delivery

import (
	"fmt"

	"instafood/internal/pkg/errs"
)

// Status represents the courier's view of a delivery job.
//
// State transitions:
//
//	CREATED -> ACCEPTED -> PICKED_UP -> DELIVERED
//	        \
//	         -> REJECTED
//
// The flow is linear once the courier accepts.
type Status string

const (
	// StatusCreated is the initial status while the job waits for a courier decision.
	StatusCreated Status = "CREATED"

	// StatusAccepted means the courier took the job.
	StatusAccepted Status = "ACCEPTED"

	// StatusRejected means the courier turned the job down. Terminal.
	StatusRejected Status = "REJECTED"

	// StatusPickedUp means the courier collected the order from the restaurant.
	StatusPickedUp Status = "PICKED_UP"

	// StatusDelivered means the courier completed the delivery. Terminal.
	StatusDelivered Status = "DELIVERED"
)

// getValidStatuses returns the set of all valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusCreated:   {},
		StatusAccepted:  {},
		StatusRejected:  {},
		StatusPickedUp:  {},
		StatusDelivered: {},
	}
}

// Validate checks that the Status is one of the known values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%q is not a valid delivery status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
