package models

import "github.com/shopspring/decimal"

// CartItem is one line of a shopping session's cart, with the current
// product detail embedded.
type CartItem struct {
	ID       int64    `json:"id"`
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Cart is the read view of a shopping session. An empty cart is a valid
// state: {total: 0, items: []}.
type Cart struct {
	Total decimal.Decimal `json:"total"`
	Items []CartItem      `json:"items"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,min=1,max=100000000"`
	Quantity  int   `json:"quantity" validate:"required,min=1,max=500"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=500"`
}
