package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `gorm:"primaryKey"                json:"id"`
	Name        string          `gorm:"not null"                  json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Category    string          `gorm:"index"                     json:"category"`
	Image       string          `json:"image"`
	InStock     bool            `gorm:"not null;default:true"     json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Order struct {
	ID              string          `gorm:"primaryKey"                json:"id"`
	CustomerName    string          `gorm:"not null"                  json:"customer_name"`
	CustomerEmail   string          `gorm:"not null"                  json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingCity    string          `json:"shipping_city"`
	ShippingCountry string          `json:"shipping_country"`
	Items           []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shipping_cost"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status          OrderStatus     `gorm:"not null;default:pending"  json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   string          `gorm:"index;not null"              json:"order_id"`
	ProductID string          `gorm:"not null"                    json:"product_id"`
	Quantity  int             `gorm:"not null;check:quantity>0"   json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
}

type Upload struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	ProductName string          `gorm:"not null"                    json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Category    string          `json:"category"`
	SellerName  string          `json:"seller_name"`
	SellerEmail string          `gorm:"not null"                    json:"seller_email"`
	Status      string          `gorm:"not null;default:pending"    json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
