package dto

import "github.com/shopspring/decimal"

// StockRequest adds units of a product to the catalog.
type StockRequest struct {
	ID          string          `json:"product_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

// InventoryItemResponse describes a product with its on-hand quantity.
type InventoryItemResponse struct {
	ID          string          `json:"product_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
}
