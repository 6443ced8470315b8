// Package megaburger implements the MegaBurger restaurant order backend: a
// small CRUD service over which the kitchen publishes order progress and the
// order workflows poll for it. The wire format is fixed: orders carry an id,
// meal, quantity, status and a nullable eta_minutes.
package megaburger

import (
	"instafood/internal/core/domain/model/order"
	"instafood/internal/pkg/errs"
)

// Order is the restaurant backend's representation of a placed order.
// EtaMinutes stays nil until the kitchen supplies an estimate; once set it is
// never cleared.
type Order struct {
	ID         int          `json:"id"`
	Meal       string       `json:"meal"`
	Quantity   int          `json:"quantity"`
	Status     order.Status `json:"status"`
	EtaMinutes *int         `json:"eta_minutes"`
}

// NewOrder creates a backend order in PENDING status, the state every order
// enters the kitchen queue with. The store assigns the ID.
func NewOrder(meal string, quantity int) (*Order, error) {
	if meal == "" {
		return nil, errs.NewValueIsRequiredError("meal")
	}
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}

	return &Order{
		Meal:     meal,
		Quantity: quantity,
		Status:   order.StatusPending,
	}, nil
}

// UpdateStatus moves the order to the given status after validating it is a
// known lifecycle value. The backend deliberately does not enforce the full
// transition graph; operators drive it and the workflows tolerate repeats.
func (o *Order) UpdateStatus(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.Status = s
	return nil
}

// UpdateEta sets the kitchen's estimate in minutes.
func (o *Order) UpdateEta(minutes int) {
	o.EtaMinutes = &minutes
}
