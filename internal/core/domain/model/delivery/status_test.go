package delivery_test

import (
	"testing"

	"instafood/internal/core/domain/model/delivery"
	"instafood/internal/core/domain/model/order"
	"instafood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	valid := []delivery.Status{
		delivery.StatusCreated,
		delivery.StatusAccepted,
		delivery.StatusRejected,
		delivery.StatusPickedUp,
		delivery.StatusDelivered,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []delivery.Status{"", "COOKING", "accepted"} {
		err := s.Validate()
		require.Error(t, err, s.String())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewJob(t *testing.T) {
	o, err := order.NewFoodOrder(order.RestaurantMegaBurger, "vegan burger", 2,
		"+54 112343-2324", "Diaz Velez 433, La Lucila", false)
	require.NoError(t, err)

	job := delivery.NewJob(o)

	assert.Equal(t, o.Restaurant, job.Restaurant)
	assert.Equal(t, o.Address, job.Address)
	assert.Equal(t, o.Telephone, job.Telephone)
	assert.Equal(t, "MEGABURGER", job.PickupLocation())
	assert.Equal(t, o.Address, job.DeliveryLocation())
}
