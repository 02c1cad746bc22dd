package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. It is never changed after it is first stocked.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
}

// InventoryItem pairs a product with its on-hand quantity.
type InventoryItem struct {
	Product  Product
	Quantity int
}
