// Package cart is the shopping cart state machine: an ordered set of product
// lines with quantities, written through to durable key-value storage on
// every mutation so the cart survives a full reload.
package cart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

const storageKey = "cart"

// Cart holds at most one line per product id. Lines keep insertion order.
type Cart struct {
	kv    storage.KV
	lines []models.CartLine
}

// New hydrates a cart from storage. A missing key means an empty cart;
// corrupt JSON is logged and treated as empty rather than surfaced.
func New(ctx context.Context, kv storage.KV) (*Cart, error) {
	c := &Cart{kv: kv}
	raw, ok, err := kv.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return c, nil
	}
	if err := json.Unmarshal([]byte(raw), &c.lines); err != nil {
		log.Printf("[cart] discarding corrupt persisted cart: %v", err)
		c.lines = nil
	}
	return c, nil
}

// Add puts one unit of the product in the cart. An existing line is
// incremented; otherwise a new line snapshots name, price and image from the
// product as it is right now.
func (c *Cart) Add(ctx context.Context, p models.Product) error {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return c.persist(ctx)
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	return c.persist(ctx)
}

// UpdateQuantity sets an absolute quantity. Zero or below removes the line.
// An unknown product id is a no-op.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return c.persist(ctx)
	}
	return nil
}

// Remove deletes the line if present; no-op otherwise.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.lines = nil
	return c.persist(ctx)
}

// Lines returns the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	return c.lines
}

// Count is the badge number: the sum of all quantities.
func (c *Cart) Count() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Total is the cart total over the add-time price snapshots.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Summary bundles lines and derived values for the API response.
func (c *Cart) Summary() models.CartSummary {
	items := c.lines
	if items == nil {
		items = []models.CartLine{}
	}
	return models.CartSummary{Items: items, Count: c.Count(), Total: c.Total()}
}

// persist writes the full line set after the in-memory update, so storage
// always trails memory by at most the current mutation.
func (c *Cart) persist(ctx context.Context) error {
	lines := c.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, storageKey, string(raw))
}
