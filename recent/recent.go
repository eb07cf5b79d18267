// Package recent tracks the products a shopper viewed last: a bounded,
// most-recent-first list persisted to durable key-value storage.
package recent

import (
	"context"
	"encoding/json"
	"log"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

const (
	storageKey = "recentlyViewed"

	// MaxItems caps the list; the storefront strip shows at most six tiles.
	MaxItems = 6
)

// Tracker is the recently-viewed list state machine.
type Tracker struct {
	kv    storage.KV
	items []models.Product
}

// New hydrates the tracker from storage; corrupt JSON is logged and treated
// as empty.
func New(ctx context.Context, kv storage.KV) (*Tracker, error) {
	t := &Tracker{kv: kv}
	raw, ok, err := kv.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return t, nil
	}
	if err := json.Unmarshal([]byte(raw), &t.items); err != nil {
		log.Printf("[recent] discarding corrupt persisted list: %v", err)
		t.items = nil
	}
	return t, nil
}

// RecordView moves the product to the front of the list, deduplicating any
// earlier entry, then truncates to MaxItems.
func (t *Tracker) RecordView(ctx context.Context, p models.Product) error {
	kept := make([]models.Product, 0, len(t.items)+1)
	kept = append(kept, p)
	for _, item := range t.items {
		if item.ID != p.ID {
			kept = append(kept, item)
		}
	}
	if len(kept) > MaxItems {
		kept = kept[:MaxItems]
	}
	t.items = kept
	return t.persist(ctx)
}

// Items returns the list most-recent-first.
func (t *Tracker) Items() []models.Product {
	if t.items == nil {
		return []models.Product{}
	}
	return t.items
}

func (t *Tracker) persist(ctx context.Context) error {
	raw, err := json.Marshal(t.Items())
	if err != nil {
		return err
	}
	return t.kv.Set(ctx, storageKey, string(raw))
}
