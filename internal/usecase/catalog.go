package usecase

import (
	"fmt"
	"math"

	domainErrors "github.com/polkiloo/bnplmart/internal/domain/errors"
	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// Catalog keeps product definitions and on-hand quantities. It is not safe for
// concurrent use; RulesEngine serializes access.
type Catalog struct {
	items map[string]*model.InventoryItem
	ids   []string
}

// NewCatalog constructs an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]*model.InventoryItem)}
}

// Stock adds quantity units of product. The first definition stocked for an id wins;
// later calls only accumulate quantity.
func (c *Catalog) Stock(product model.Product, quantity int) (model.InventoryItem, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return model.InventoryItem{}, err
	}
	if err := ValidateID(product.ID); err != nil {
		return model.InventoryItem{}, fmt.Errorf("product: %w", err)
	}
	if product.Price.IsNegative() {
		return model.InventoryItem{}, domainErrors.ErrInvalidPrice
	}
	if err := requireWholeCents(product.Price, domainErrors.ErrInvalidPrice); err != nil {
		return model.InventoryItem{}, err
	}

	if item, ok := c.items[product.ID]; ok {
		if quantity > math.MaxInt-item.Quantity {
			return model.InventoryItem{}, fmt.Errorf("%w: stock of %s would overflow", domainErrors.ErrInvalidQuantity, product.ID)
		}
		item.Quantity += quantity
		return *item, nil
	}

	product.Price = model.Money(product.Price)
	item := &model.InventoryItem{Product: product, Quantity: quantity}
	c.items[product.ID] = item
	c.ids = append(c.ids, product.ID)
	return *item, nil
}

// CheckAvailable verifies that quantity units of the product can be reserved.
func (c *Catalog) CheckAvailable(productID string, quantity int) (model.Product, error) {
	item, ok := c.items[productID]
	if !ok {
		return model.Product{}, domainErrors.ErrProductNotFound
	}
	if item.Quantity < quantity {
		return model.Product{}, fmt.Errorf("%w: %d requested, %d available", domainErrors.ErrInsufficientStock, quantity, item.Quantity)
	}
	return item.Product, nil
}

// Reserve atomically checks availability and decrements stock.
func (c *Catalog) Reserve(productID string, quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if _, err := c.CheckAvailable(productID, quantity); err != nil {
		return err
	}
	c.items[productID].Quantity -= quantity
	return nil
}

// Status returns a snapshot of one inventory item.
func (c *Catalog) Status(productID string) (model.InventoryItem, error) {
	item, ok := c.items[productID]
	if !ok {
		return model.InventoryItem{}, domainErrors.ErrProductNotFound
	}
	return *item, nil
}

// Items returns snapshots of every item in the order products were first stocked.
func (c *Catalog) Items() []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, *c.items[id])
	}
	return out
}

// ProductName returns the display name of a stocked product or an empty string.
func (c *Catalog) ProductName(productID string) string {
	if item, ok := c.items[productID]; ok {
		return item.Product.Name
	}
	return ""
}
