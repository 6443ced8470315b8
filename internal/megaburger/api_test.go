package megaburger_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI() *echo.Echo {
	e := echo.New()
	api := megaburger.NewOrdersAPI(megaburger.NewMemoryStore(), slog.New(slog.DiscardHandler))
	api.Register(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder(t *testing.T) {
	e := newTestAPI()

	rec := doJSON(e, http.MethodPost, "/orders", `{"meal":"vegan burger","quantity":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var o megaburger.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, 0, o.ID)
	assert.Equal(t, "vegan burger", o.Meal)
	assert.Equal(t, 2, o.Quantity)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Nil(t, o.EtaMinutes)
	assert.Contains(t, rec.Body.String(), `"eta_minutes":null`)
}

func TestCreateOrderValidation(t *testing.T) {
	e := newTestAPI()

	t.Run("missing meal", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/orders", `{"quantity":2}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/orders", `{"meal":"burger","quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrders(t *testing.T) {
	e := newTestAPI()

	doJSON(e, http.MethodPost, "/orders", `{"meal":"burger","quantity":1}`)
	doJSON(e, http.MethodPost, "/orders", `{"meal":"fries","quantity":3}`)

	t.Run("list is sorted by id", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var orders []megaburger.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		require.Len(t, orders, 2)
		assert.Equal(t, 0, orders[0].ID)
		assert.Equal(t, "burger", orders[0].Meal)
		assert.Equal(t, 1, orders[1].ID)
		assert.Equal(t, "fries", orders[1].Meal)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/orders/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var o megaburger.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		assert.Equal(t, "fries", o.Meal)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/orders/42", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/orders/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPatchOrder(t *testing.T) {
	e := newTestAPI()
	doJSON(e, http.MethodPost, "/orders", `{"meal":"burger","quantity":1}`)

	t.Run("status and eta together", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, "/orders/0", `{"status":"ACCEPTED","eta_minutes":15}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var o megaburger.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		assert.Equal(t, order.StatusAccepted, o.Status)
		require.NotNil(t, o.EtaMinutes)
		assert.Equal(t, 15, *o.EtaMinutes)
	})

	t.Run("status only keeps eta", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, "/orders/0", `{"status":"COOKING"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var o megaburger.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		assert.Equal(t, order.StatusCooking, o.Status)
		require.NotNil(t, o.EtaMinutes)
		assert.Equal(t, 15, *o.EtaMinutes)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, "/orders/0", `{"status":"BURNED"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown order is 404", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, "/orders/9", `{"status":"READY"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
