// Package storage is the durable key-value layer behind cart, wishlist and
// recently-viewed state. Values are JSON strings; an absent key means an
// empty collection. The interface exists so the state machines can run
// against Redis in the service and an in-memory map in tests.
package storage

import "context"

// KV is a string-valued key-value store.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes a value, overwriting any previous one.
	Set(ctx context.Context, key string, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// prefixed namespaces every key of an underlying KV.
type prefixed struct {
	kv     KV
	prefix string
}

// Namespaced wraps a KV so all keys are scoped under a prefix. Shopper
// sessions each get their own namespace; within it the state machines use
// the fixed keys "cart", "wishlist" and "recentlyViewed".
func Namespaced(kv KV, prefix string) KV {
	return &prefixed{kv: kv, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.kv.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value string) error {
	return p.kv.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.kv.Delete(ctx, p.prefix+key)
}
