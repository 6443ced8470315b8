package megaburger

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OrdersAPI exposes the backend's order CRUD over HTTP.
//
// Routes:
//
//	POST  /orders        create an order ({meal, quantity}), returns 201
//	GET   /orders        list all orders sorted by id
//	GET   /orders/:id    fetch one order
//	PATCH /orders/:id    update status and/or eta_minutes
//
// The PATCH route is the operator surface that drives order progress; the
// workflows themselves only create and read.
type OrdersAPI struct {
	store  OrderStore
	logger *slog.Logger
}

// NewOrdersAPI creates the HTTP API over the given store.
func NewOrdersAPI(store OrderStore, logger *slog.Logger) *OrdersAPI {
	return &OrdersAPI{
		store:  store,
		logger: logger.With("component", "orders_api"),
	}
}

// Register mounts all order routes on the echo instance.
func (a *OrdersAPI) Register(e *echo.Echo) {
	e.POST("/orders", a.create)
	e.GET("/orders", a.getAll)
	e.GET("/orders/:orderId", a.getByID)
	e.PATCH("/orders/:orderId", a.update)
}

type createOrderRequest struct {
	Meal     string `json:"meal"`
	Quantity int    `json:"quantity"`
}

type patchOrderRequest struct {
	Status     *order.Status `json:"status"`
	EtaMinutes *int          `json:"eta_minutes"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (a *OrdersAPI) create(ctx echo.Context) error {
	a.logger.InfoContext(ctx.Request().Context(), "New request", "route", "/orders", "method", "POST")

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	o, err := NewOrder(req.Meal, req.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if err := a.store.Add(ctx.Request().Context(), o); err != nil {
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to store order",
		})
	}

	return ctx.JSON(http.StatusCreated, o)
}

func (a *OrdersAPI) getAll(ctx echo.Context) error {
	a.logger.InfoContext(ctx.Request().Context(), "New request", "route", "/orders", "method", "GET")

	orders, err := a.store.List(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (a *OrdersAPI) getByID(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}
	a.logger.InfoContext(ctx.Request().Context(), "New request", "route", "/orders/:orderId", "method", "GET", "order_id", id)

	o, err := a.store.Get(ctx.Request().Context(), id)
	if err != nil {
		return a.storeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, o)
}

func (a *OrdersAPI) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}
	a.logger.InfoContext(ctx.Request().Context(), "New request", "route", "/orders/:orderId", "method", "PATCH", "order_id", id)

	var req patchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	o, err := a.store.Get(ctx.Request().Context(), id)
	if err != nil {
		return a.storeError(ctx, err)
	}

	if req.Status != nil {
		if err := o.UpdateStatus(*req.Status); err != nil {
			return ctx.JSON(http.StatusBadRequest, apiError{
				Code:    http.StatusBadRequest,
				Message: "Invalid status: " + err.Error(),
			})
		}
	}
	if req.EtaMinutes != nil {
		o.UpdateEta(*req.EtaMinutes)
	}

	if err := a.store.Update(ctx.Request().Context(), o); err != nil {
		return a.storeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, o)
}

func (a *OrdersAPI) storeError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, apiError{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	return ctx.JSON(http.StatusInternalServerError, apiError{
		Code:    http.StatusInternalServerError,
		Message: "Storage failure",
	})
}
