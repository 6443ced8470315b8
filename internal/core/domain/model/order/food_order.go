package order

import (
	"errors"
	"fmt"

	"instafood/internal/pkg/errs"
)

// Quantity bounds for a single order.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Restaurant identifies a restaurant integration the dispatcher knows how to
// drive. Only MegaBurger is integrated today.
type Restaurant string

// RestaurantMegaBurger is the MegaBurger chain integration.
const RestaurantMegaBurger Restaurant = "MEGABURGER"

// Validate checks that the Restaurant is a supported integration.
func (r Restaurant) Validate() error {
	if r != RestaurantMegaBurger {
		return errs.NewValueIsInvalidErrorWithCause("restaurant",
			fmt.Errorf("%q is not a supported restaurant", string(r)))
	}
	return nil
}

// FoodOrder is the immutable order a customer places. It is created once by
// the caller when starting the order workflow and never mutated afterwards;
// fields are exported so the value round-trips through workflow payloads.
type FoodOrder struct {
	Restaurant Restaurant `json:"restaurant"`
	Meal       string     `json:"meal"`
	Quantity   int        `json:"quantity"`
	Telephone  string     `json:"telephone"`
	Address    string     `json:"address"`
	Pickup     bool       `json:"pickup"`
}

// NewFoodOrder creates a validated FoodOrder.
//
// Validation rules:
//   - restaurant must be a supported integration
//   - meal and telephone are required
//   - quantity must be within [MinQuantity, MaxQuantity]
//   - address is required unless the order is a pickup
func NewFoodOrder(restaurant Restaurant, meal string, quantity int, telephone, address string, pickup bool) (FoodOrder, error) {
	o := FoodOrder{
		Restaurant: restaurant,
		Meal:       meal,
		Quantity:   quantity,
		Telephone:  telephone,
		Address:    address,
		Pickup:     pickup,
	}
	if err := o.Validate(); err != nil {
		return FoodOrder{}, err
	}
	return o, nil
}

// Validate checks the order against the rules documented on NewFoodOrder.
// It is also used on orders arriving through deserialized workflow inputs.
func (o FoodOrder) Validate() error {
	var violations []error

	if err := o.Restaurant.Validate(); err != nil {
		violations = append(violations, err)
	}
	if o.Meal == "" {
		violations = append(violations, errs.NewValueIsRequiredError("meal"))
	}
	if o.Quantity < MinQuantity || o.Quantity > MaxQuantity {
		violations = append(violations, errs.NewValueIsOutOfRangeError("quantity", o.Quantity, MinQuantity, MaxQuantity))
	}
	if o.Telephone == "" {
		violations = append(violations, errs.NewValueIsRequiredError("telephone"))
	}
	if !o.Pickup && o.Address == "" {
		violations = append(violations, errs.NewValueIsRequiredError("address"))
	}

	return errors.Join(violations...)
}
