package megaburger_test

import (
	"testing"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"
	"instafood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := t.Context()
	store := megaburger.NewMemoryStore()

	t.Run("add assigns sequential ids", func(t *testing.T) {
		first, err := megaburger.NewOrder("burger", 1)
		require.NoError(t, err)
		second, err := megaburger.NewOrder("fries", 2)
		require.NoError(t, err)

		require.NoError(t, store.Add(ctx, first))
		require.NoError(t, store.Add(ctx, second))
		assert.Equal(t, 0, first.ID)
		assert.Equal(t, 1, second.ID)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := store.Get(ctx, 0)
		require.NoError(t, err)

		got.Status = order.StatusReady

		again, err := store.Get(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, again.Status)
	})

	t.Run("update persists changes", func(t *testing.T) {
		o, err := store.Get(ctx, 0)
		require.NoError(t, err)
		require.NoError(t, o.UpdateStatus(order.StatusAccepted))
		o.UpdateEta(15)

		require.NoError(t, store.Update(ctx, o))

		got, err := store.Get(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, got.Status)
		require.NotNil(t, got.EtaMinutes)
		assert.Equal(t, 15, *got.EtaMinutes)
	})

	t.Run("missing orders are reported", func(t *testing.T) {
		_, err := store.Get(ctx, 99)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		missing := &megaburger.Order{ID: 99, Meal: "x", Quantity: 1, Status: order.StatusPending}
		require.ErrorIs(t, store.Update(ctx, missing), errs.ErrObjectNotFound)
	})
}
