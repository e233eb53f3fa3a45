package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

func (h *OrderHandler) List(c echo.Context) error {
	return handleList(c, h.orderUC.List, "Orders retrieved successfully")
}

func (h *OrderHandler) Get(c echo.Context) error {
	return handleByID(c, h.orderUC.Get, "Order retrieved successfully")
}

func (h *OrderHandler) Create(c echo.Context) error {
	return handleCreate(c, h.orderUC.Create, "Order created successfully")
}

func (h *OrderHandler) Update(c echo.Context) error {
	return handleAction(c, h.orderUC.Update, "Order updated successfully")
}

func (h *OrderHandler) Delete(c echo.Context) error {
	return handleDelete(c, h.orderUC.Delete, "Order deleted successfully")
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	return handleAction(c, h.orderUC.UpdateStatus, "Order status updated successfully")
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	return handleAction(c, h.orderUC.Cancel, "Order cancelled successfully")
}
