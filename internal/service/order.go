package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/babyzion/market/internal/events"
	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/models"
	"github.com/babyzion/market/internal/repo"
	"github.com/babyzion/market/internal/transport"
	"github.com/babyzion/market/internal/validate"
)

// Field length caps applied to checkout submissions.
const (
	maxNameLen    = 100
	maxEmailLen   = 100
	maxPhoneLen   = 20
	maxAddressLen = 200
	maxCityLen    = 100
	maxCountryLen = 100
)

var defaultShippingCost = decimal.NewFromInt(12)

type OrderService struct {
	Repo     *repo.GormRepo
	Events   events.Publisher
	IDPrefix string
}

// CreateOrder runs the intake checks in a fixed order, each short-circuiting
// on failure, and persists only after every check passed.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"city", req.City},
		{"country", req.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: missing field: %s", ErrValidation, f.name)
		}
	}

	if !validate.Email(strings.TrimSpace(req.Email)) {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if !validate.Phone(strings.TrimSpace(req.Phone)) {
		return nil, fmt.Errorf("%w: invalid phone", ErrValidation)
	}

	order := &models.Order{
		CustomerName:    validate.Sanitize(req.Name, maxNameLen),
		CustomerEmail:   validate.Sanitize(req.Email, maxEmailLen),
		CustomerPhone:   validate.Sanitize(req.Phone, maxPhoneLen),
		ShippingAddress: validate.Sanitize(req.Address, maxAddressLen),
		ShippingCity:    validate.Sanitize(req.City, maxCityLen),
		ShippingCountry: validate.Sanitize(req.Country, maxCountryLen),
		Status:          models.StatusPending,
	}

	items, itemsSubtotal, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	order.Items = items

	subtotal, err := parseAmount(req.Subtotal, decimal.Zero)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid numeric value", ErrValidation)
	}
	shipping, err := parseAmount(req.ShippingCost, defaultShippingCost)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid numeric value", ErrValidation)
	}
	total, err := parseAmount(req.Total, decimal.Zero)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid numeric value", ErrValidation)
	}
	order.Subtotal = subtotal
	order.ShippingCost = shipping
	order.Total = total

	// Totals remain client-supplied to keep the API contract; a mismatch
	// against the recomputed item subtotal is surfaced in the logs.
	if !itemsSubtotal.Equal(subtotal) {
		logging.FromContext(ctx).Warn("order subtotal mismatch",
			"claimed", subtotal.String(), "computed", itemsSubtotal.String())
	}

	order.ID = s.newOrderID()

	created, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, events.TopicOrders, events.EventOrderCreated, created.ID, map[string]any{
		"order_id": created.ID,
		"total":    created.Total,
		"items":    len(created.Items),
	})
	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order through the transition table; anything the
// table does not allow is a validation failure.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	next, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status: %s", ErrValidation, status)
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(order.Status, next) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", ErrValidation, order.Status, next)
	}

	if err := s.Repo.UpdateOrderStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next

	s.Events.Publish(ctx, events.TopicOrders, events.EventOrderStatusChanged, id, map[string]any{
		"order_id": id,
		"status":   next,
	})
	return order, nil
}

func (s *OrderService) newOrderID() string {
	u := uuid.New()
	return s.IDPrefix + strings.ToUpper(hex.EncodeToString(u[:4]))
}

func buildItems(reqs []transport.OrderItemRequest) ([]models.OrderItem, decimal.Decimal, error) {
	if len(reqs) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: invalid items", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(reqs))
	subtotal := decimal.Zero
	for _, r := range reqs {
		if r.ProductID == "" || r.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: invalid items", ErrValidation)
		}
		price, err := parseAmount(r.UnitPrice, decimal.Zero)
		if err != nil || price.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: invalid items", ErrValidation)
		}

		lineTotal := price.Mul(decimal.NewFromInt(int64(r.Quantity)))
		items = append(items, models.OrderItem{
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			UnitPrice: price,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return items, subtotal, nil
}

// parseAmount reads a raw JSON value as a decimal, accepting numbers and
// numeric strings; absent or null values take the default.
func parseAmount(raw json.RawMessage, def decimal.Decimal) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return def, nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
