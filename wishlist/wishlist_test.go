package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

var (
	plannerA = models.Product{ID: "w1", Name: "Meal Prep Planner", Price: 12.50, Rating: 3.9}
	guideB   = models.Product{ID: "w2", Name: "Linen Closet Guide", Price: 9.99, Rating: 4.5}
)

func newTestWishlist(t *testing.T) (*Wishlist, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	w, err := New(context.Background(), kv)
	require.NoError(t, err)
	return w, kv
}

func TestAddAndContains(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWishlist(t)

	added, err := w.Add(ctx, plannerA)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, w.Contains("w1"))
	assert.False(t, w.Contains("w2"))
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWishlist(t)

	added, err := w.Add(ctx, plannerA)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = w.Add(ctx, plannerA)
	require.NoError(t, err)
	assert.False(t, added, "second add of the same product reports no change")
	require.Len(t, w.Items(), 1)
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWishlist(t)

	_, err := w.Add(ctx, plannerA)
	require.NoError(t, err)
	_, err = w.Add(ctx, guideB)
	require.NoError(t, err)

	items := w.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "w1", items[0].ID)
	assert.Equal(t, "w2", items[1].ID)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWishlist(t)
	_, err := w.Add(ctx, plannerA)
	require.NoError(t, err)

	removed, err := w.Remove(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, w.Contains("w1"))

	removed, err = w.Remove(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, removed, "removing an absent product reports no change")
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWishlist(t)
	_, err := w.Add(ctx, plannerA)
	require.NoError(t, err)
	_, err = w.Add(ctx, guideB)
	require.NoError(t, err)

	require.NoError(t, w.Clear(ctx))
	assert.Empty(t, w.Items())
	assert.NotNil(t, w.Items())
}

func TestWishlistSurvivesRehydration(t *testing.T) {
	ctx := context.Background()
	w, kv := newTestWishlist(t)
	_, err := w.Add(ctx, plannerA)
	require.NoError(t, err)
	_, err = w.Add(ctx, guideB)
	require.NoError(t, err)

	reloaded, err := New(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, w.Items(), reloaded.Items())
}

func TestCorruptPersistedWishlistIsDiscarded(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "wishlist", "[[["))

	w, err := New(ctx, kv)
	require.NoError(t, err)
	assert.Empty(t, w.Items())
}
