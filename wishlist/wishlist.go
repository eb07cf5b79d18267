// Package wishlist is the saved-for-later state machine. It stores full
// product snapshots so the wishlist page can render without the catalog,
// and writes through to durable key-value storage on every mutation.
package wishlist

import (
	"context"
	"encoding/json"
	"log"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

const storageKey = "wishlist"

// Wishlist is a duplicate-free set of product snapshots in insertion order.
type Wishlist struct {
	kv    storage.KV
	items []models.Product
}

// New hydrates a wishlist from storage; corrupt JSON is logged and treated
// as empty.
func New(ctx context.Context, kv storage.KV) (*Wishlist, error) {
	w := &Wishlist{kv: kv}
	raw, ok, err := kv.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return w, nil
	}
	if err := json.Unmarshal([]byte(raw), &w.items); err != nil {
		log.Printf("[wishlist] discarding corrupt persisted wishlist: %v", err)
		w.items = nil
	}
	return w, nil
}

// Add saves a product. Adding a product already present is a no-op; the
// returned bool reports whether anything changed so callers can decide
// whether to notify.
func (w *Wishlist) Add(ctx context.Context, p models.Product) (bool, error) {
	if w.Contains(p.ID) {
		return false, nil
	}
	w.items = append(w.items, p)
	return true, w.persist(ctx)
}

// Remove deletes a product if present, reporting whether it was.
func (w *Wishlist) Remove(ctx context.Context, productID string) (bool, error) {
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true, w.persist(ctx)
		}
	}
	return false, nil
}

// Contains is a pure membership test against the current contents.
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (w *Wishlist) Clear(ctx context.Context) error {
	w.items = nil
	return w.persist(ctx)
}

// Items returns the saved products in insertion order.
func (w *Wishlist) Items() []models.Product {
	if w.items == nil {
		return []models.Product{}
	}
	return w.items
}

func (w *Wishlist) persist(ctx context.Context) error {
	raw, err := json.Marshal(w.Items())
	if err != nil {
		return err
	}
	return w.kv.Set(ctx, storageKey, string(raw))
}
