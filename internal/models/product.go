package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	SKU         string          `json:"SKU"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Thumbnail   string          `json:"thumbnail"`
	InStock     bool            `json:"inStock"`
	CategoryID  int64           `json:"categoryId"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}
