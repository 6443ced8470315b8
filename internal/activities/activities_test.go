package activities_test

import (
	"context"
	"errors"
	"testing"

	"instafood/internal/activities"
	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
)

type fakeOrdersAPI struct {
	created  []megaburger.Order
	orders   map[int]megaburger.Order
	createID int
	err      error
}

func (f *fakeOrdersAPI) Create(_ context.Context, meal string, quantity int) (megaburger.Order, error) {
	if f.err != nil {
		return megaburger.Order{}, f.err
	}
	o := megaburger.Order{ID: f.createID, Meal: meal, Quantity: quantity, Status: order.StatusPending}
	f.created = append(f.created, o)
	return o, nil
}

func (f *fakeOrdersAPI) GetByID(_ context.Context, id int) (megaburger.Order, error) {
	if f.err != nil {
		return megaburger.Order{}, f.err
	}
	return f.orders[id], nil
}

func TestCreateOrder(t *testing.T) {
	api := &fakeOrdersAPI{createID: 7}
	env := (&testsuite.WorkflowTestSuite{}).NewTestActivityEnvironment()
	acts := activities.NewMegaBurgerOrderActivities(api)
	env.RegisterActivity(acts)

	o, err := order.NewFoodOrder(order.RestaurantMegaBurger, "vegan burger", 2,
		"+54 112343-2324", "Diaz Velez 433", false)
	require.NoError(t, err)

	val, err := env.ExecuteActivity(acts.CreateOrder, o)
	require.NoError(t, err)

	var id int
	require.NoError(t, val.Get(&id))
	assert.Equal(t, 7, id)
	require.Len(t, api.created, 1)
	assert.Equal(t, "vegan burger", api.created[0].Meal)
	assert.Equal(t, 2, api.created[0].Quantity)
}

func TestCreateOrderPropagatesBackendFailure(t *testing.T) {
	api := &fakeOrdersAPI{err: errors.New("backend down")}
	env := (&testsuite.WorkflowTestSuite{}).NewTestActivityEnvironment()
	acts := activities.NewMegaBurgerOrderActivities(api)
	env.RegisterActivity(acts)

	o, err := order.NewFoodOrder(order.RestaurantMegaBurger, "vegan burger", 2,
		"+54 112343-2324", "Diaz Velez 433", false)
	require.NoError(t, err)

	_, err = env.ExecuteActivity(acts.CreateOrder, o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
}

func TestGetOrderByID(t *testing.T) {
	eta := 15
	api := &fakeOrdersAPI{orders: map[int]megaburger.Order{
		3: {ID: 3, Meal: "burger", Quantity: 1, Status: order.StatusCooking, EtaMinutes: &eta},
	}}
	env := (&testsuite.WorkflowTestSuite{}).NewTestActivityEnvironment()
	acts := activities.NewMegaBurgerOrderActivities(api)
	env.RegisterActivity(acts)

	val, err := env.ExecuteActivity(acts.GetOrderByID, 3)
	require.NoError(t, err)

	var got megaburger.Order
	require.NoError(t, val.Get(&got))
	assert.Equal(t, order.StatusCooking, got.Status)
	require.NotNil(t, got.EtaMinutes)
	assert.Equal(t, 15, *got.EtaMinutes)
}

func TestRegisterDeliveryGPSTracking(t *testing.T) {
	env := (&testsuite.WorkflowTestSuite{}).NewTestActivityEnvironment()
	acts := activities.NewCourierGPSActivities()
	env.RegisterActivity(acts)

	val, err := env.ExecuteActivity(acts.RegisterDeliveryGPSTracking, "MEGABURGER", "Diaz Velez 433")
	require.NoError(t, err)

	var supported bool
	require.NoError(t, val.Get(&supported))
	assert.True(t, supported)
}
