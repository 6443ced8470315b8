package order_test

import (
	"testing"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusCreated,
		order.StatusPending,
		order.StatusAccepted,
		order.StatusRejected,
		order.StatusCooking,
		order.StatusReady,
		order.StatusCourierAccepted,
		order.StatusCourierRejected,
		order.StatusRestaurantDelivered,
		order.StatusPickedUp,
		order.StatusCourierDelivered,
	}
}

func TestStatusValidate(t *testing.T) {
	t.Run("all lifecycle statuses are valid", func(t *testing.T) {
		for _, s := range allStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown statuses are invalid", func(t *testing.T) {
		for _, s := range []order.Status{"", "DELIVERED", "cooking", "CANCELLED"} {
			err := s.Validate()
			require.Error(t, err, s.String())
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Run("pickup happy path is reachable", func(t *testing.T) {
		path := []order.Status{
			order.StatusCreated,
			order.StatusPending,
			order.StatusAccepted,
			order.StatusCooking,
			order.StatusReady,
			order.StatusRestaurantDelivered,
		}
		for i := 0; i < len(path)-1; i++ {
			assert.True(t, path[i].CanTransitionTo(path[i+1]), "%s -> %s", path[i], path[i+1])
		}
	})

	t.Run("delivery happy path is reachable", func(t *testing.T) {
		path := []order.Status{
			order.StatusCreated,
			order.StatusPending,
			order.StatusAccepted,
			order.StatusCooking,
			order.StatusReady,
			order.StatusCourierAccepted,
			order.StatusPickedUp,
			order.StatusRestaurantDelivered,
			order.StatusCourierDelivered,
		}
		for i := 0; i < len(path)-1; i++ {
			assert.True(t, path[i].CanTransitionTo(path[i+1]), "%s -> %s", path[i], path[i+1])
		}
	})

	t.Run("rejection branches", func(t *testing.T) {
		assert.True(t, order.StatusPending.CanTransitionTo(order.StatusRejected))
		assert.True(t, order.StatusReady.CanTransitionTo(order.StatusCourierRejected))
	})

	t.Run("repeated identical updates are allowed", func(t *testing.T) {
		for _, s := range allStatuses() {
			assert.True(t, s.CanTransitionTo(s), s.String())
		}
	})

	t.Run("status never moves backwards", func(t *testing.T) {
		assert.False(t, order.StatusReady.CanTransitionTo(order.StatusCooking))
		assert.False(t, order.StatusAccepted.CanTransitionTo(order.StatusPending))
		assert.False(t, order.StatusCourierDelivered.CanTransitionTo(order.StatusPickedUp))
		assert.False(t, order.StatusRejected.CanTransitionTo(order.StatusAccepted))
	})

	t.Run("cooking cannot be skipped from pending", func(t *testing.T) {
		assert.False(t, order.StatusPending.CanTransitionTo(order.StatusReady))
	})
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.StatusRejected:         true,
		order.StatusCourierRejected:  true,
		order.StatusCourierDelivered: true,
	}
	for _, s := range allStatuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), s.String())
	}
}
