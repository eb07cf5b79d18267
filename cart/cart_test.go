package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

var (
	labelPack = models.Product{ID: "p1", Name: "Pantry Label Pack", Price: 7.99, Image: "labels.jpg"}
	organizer = models.Product{ID: "p2", Name: "Bamboo Drawer Organizer", Price: 24.99, Image: "bamboo.jpg"}
)

func newTestCart(t *testing.T) (*Cart, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	c, err := New(context.Background(), kv)
	require.NoError(t, err)
	return c, kv
}

func TestAddNewProductSnapshotsDetails(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCart(t)

	require.NoError(t, c.Add(ctx, labelPack))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "Pantry Label Pack", lines[0].Name)
	assert.Equal(t, 7.99, lines[0].Price)
	assert.Equal(t, "labels.jpg", lines[0].Image)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddSameProductIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCart(t)

	require.NoError(t, c.Add(ctx, labelPack))
	require.NoError(t, c.Add(ctx, labelPack))
	require.NoError(t, c.Add(ctx, organizer))

	lines := c.Lines()
	require.Len(t, lines, 2, "one line per product")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 2*7.99+24.99, c.Total(), 0.001)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCart(t)
	require.NoError(t, c.Add(ctx, labelPack))

	require.NoError(t, c.UpdateQuantity(ctx, "p1", 5))
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	// Zero and below remove the line
	require.NoError(t, c.UpdateQuantity(ctx, "p1", 0))
	assert.Empty(t, c.Lines())

	require.NoError(t, c.Add(ctx, labelPack))
	require.NoError(t, c.UpdateQuantity(ctx, "p1", -2))
	assert.Empty(t, c.Lines())
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCart(t)
	require.NoError(t, c.Add(ctx, labelPack))

	require.NoError(t, c.UpdateQuantity(ctx, "missing", 3))
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCart(t)
	require.NoError(t, c.Add(ctx, labelPack))
	require.NoError(t, c.Add(ctx, organizer))

	require.NoError(t, c.Remove(ctx, "p1"))
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "p2", c.Lines()[0].ProductID)

	// Removing something absent is fine
	require.NoError(t, c.Remove(ctx, "p1"))

	require.NoError(t, c.Clear(ctx))
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.Count())
}

func TestCartSurvivesRehydration(t *testing.T) {
	ctx := context.Background()
	c, kv := newTestCart(t)
	require.NoError(t, c.Add(ctx, labelPack))
	require.NoError(t, c.Add(ctx, labelPack))
	require.NoError(t, c.Add(ctx, organizer))

	// Fresh instance over the same store, as after a page reload
	reloaded, err := New(ctx, kv)
	require.NoError(t, err)

	require.Len(t, reloaded.Lines(), 2)
	assert.Equal(t, 3, reloaded.Count())
	assert.Equal(t, c.Lines(), reloaded.Lines())
}

func TestCorruptPersistedCartIsDiscarded(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "cart", "{not json"))

	c, err := New(ctx, kv)
	require.NoError(t, err, "corrupt state must not fail hydration")
	assert.Empty(t, c.Lines())

	// And the cart keeps working afterwards
	require.NoError(t, c.Add(ctx, labelPack))
	assert.Equal(t, 1, c.Count())
}

func TestSummaryNeverReturnsNilItems(t *testing.T) {
	c, _ := newTestCart(t)
	summary := c.Summary()
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Total)
}
