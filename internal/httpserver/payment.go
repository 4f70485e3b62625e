package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/payment"
	"github.com/babyzion/market/internal/transport"
)

type PaymentHTTP struct {
	PayPal   *payment.PayPalClient
	Paystack *payment.PaystackClient
}

// PaystackInitialize hands the publishable key to the storefront; the
// transaction itself happens client-side against the gateway.
func (h *PaymentHTTP) PaystackInitialize(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.paystack_initialize")

	key, err := h.Paystack.PublicKey()
	if err != nil {
		l.Warn("paystack_not_configured", "status", 200)
		return c.JSON(http.StatusOK, transport.Envelope{
			Success: false,
			Message: "Paystack credentials not configured",
			Hint:    "Set PAYSTACK_PUBLIC_KEY",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"public_key": key,
	})
}

func (h *PaymentHTTP) PayPalCreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.paypal_create_order")

	var req transport.PayPalCreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("paypal_create_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: "invalid body"})
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		l.Warn("paypal_create_error", "status", 400, "reason", "invalid numeric value")
		return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: "invalid numeric value"})
	}

	orderID, err := h.PayPal.CreateOrder(ctx, amount)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			l.Warn("paypal_not_configured", "status", 200)
			return c.JSON(http.StatusOK, transport.Envelope{
				Success: false,
				Message: "PayPal credentials not configured",
				Hint:    "Set PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET",
			})
		}
		l.Error("paypal_create_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "payment action failed"})
	}

	l.Info("paypal_create_success", "paypal_order_id", orderID)
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"order_id": orderID,
	})
}

func (h *PaymentHTTP) PayPalCaptureOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.paypal_capture_order")

	data, err := h.PayPal.CaptureOrder(ctx, c.Param("order_id"))
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			l.Warn("paypal_not_configured", "status", 200)
			return c.JSON(http.StatusOK, transport.Envelope{
				Success: false,
				Message: "PayPal credentials not configured",
				Hint:    "Set PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET",
			})
		}
		l.Error("paypal_capture_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "payment action failed"})
	}

	l.Info("paypal_capture_success", "paypal_order_id", c.Param("order_id"))
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
