package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/service"
	"github.com/babyzion/market/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: "invalid body"})
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			reason := service.Reason(err, service.ErrValidation)
			l.Warn("create_order_error", "status", 400, "reason", reason)
			return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: reason})
		}
		l.Error("create_order_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "internal error"})
	}

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusOK, transport.CreateOrderResponse{
		Success: true,
		OrderID: order.ID,
		Message: "Order created successfully",
	})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	order, err := h.Svc.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_failed", "status", 404, "id", c.Param("id"))
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		l.Error("get_order_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "internal error"})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: "invalid body"})
	}

	order, err := h.Svc.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_status_failed", "status", 404, "id", c.Param("id"))
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		case errors.Is(err, service.ErrValidation):
			reason := service.Reason(err, service.ErrValidation)
			l.Warn("update_status_failed", "status", 400, "reason", reason)
			return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: reason})
		default:
			l.Error("update_status_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "internal error"})
		}
	}

	l.Info("update_status_success", "order_id", order.ID, "new_status", order.Status)
	return c.JSON(http.StatusOK, order)
}
