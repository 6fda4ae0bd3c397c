package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type ShippingAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// OrderItem is an immutable snapshot line of a placed order. Product detail
// is attached from the current catalog when the order is read back.
type OrderItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

type Order struct {
	ID              int64            `json:"id"`
	CustomerID      int64            `json:"-"`
	Total           decimal.Decimal  `json:"total"`
	Status          OrderStatus      `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem      `json:"items"`
}

type CreateOrderRequest struct {
	AddressLine1 string `json:"addressLine1" validate:"required,max=255"`
	AddressLine2 string `json:"addressLine2" validate:"max=255"`
	City         string `json:"city" validate:"required,max=100"`
	PostalCode   string `json:"postalCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"orderId"`
}
