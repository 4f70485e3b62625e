package transport

import "encoding/json"

type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice json.RawMessage `json:"unit_price"`
}

// CreateOrderRequest carries the checkout submission. The money fields stay
// raw so a malformed value maps to "invalid numeric value" instead of a
// generic bind failure.
type CreateOrderRequest struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Country      string             `json:"country"`
	Items        []OrderItemRequest `json:"items"`
	Subtotal     json.RawMessage    `json:"subtotal"`
	ShippingCost json.RawMessage    `json:"shipping_cost"`
	Total        json.RawMessage    `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type SyncRequest struct {
	Keyword  string `json:"keyword"`
	PageSize int    `json:"page_size"`
}

type CreateUploadRequest struct {
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	Category    string          `json:"category"`
	SellerName  string          `json:"seller_name"`
	SellerEmail string          `json:"seller_email"`
}

type PayPalCreateOrderRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// Envelope is the soft-fail response shape: HTTP 200 with success=false
// distinguishes "integration not configured" from a genuine failure.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

type SyncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}
