package recent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

func newTestTracker(t *testing.T) (*Tracker, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	tr, err := New(context.Background(), kv)
	require.NoError(t, err)
	return tr, kv
}

func product(i int) models.Product {
	return models.Product{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Product %d", i)}
}

func TestRecordViewMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	require.NoError(t, tr.RecordView(ctx, product(1)))
	require.NoError(t, tr.RecordView(ctx, product(2)))
	require.NoError(t, tr.RecordView(ctx, product(3)))

	items := tr.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p3", items[0].ID)
	assert.Equal(t, "p1", items[2].ID)
}

func TestRecordViewMovesDuplicateToFront(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, tr.RecordView(ctx, product(i)))
	}
	require.NoError(t, tr.RecordView(ctx, product(1)))

	items := tr.Items()
	require.Len(t, items, 3, "re-viewing must not grow the list")
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p3", items[1].ID)
	assert.Equal(t, "p2", items[2].ID)
}

func TestRecordViewCapsAtMaxItems(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	for i := 1; i <= MaxItems+3; i++ {
		require.NoError(t, tr.RecordView(ctx, product(i)))
	}

	items := tr.Items()
	require.Len(t, items, MaxItems)
	assert.Equal(t, fmt.Sprintf("p%d", MaxItems+3), items[0].ID)
	assert.Equal(t, "p4", items[MaxItems-1].ID, "oldest views fall off the end")
}

func TestTrackerSurvivesRehydration(t *testing.T) {
	ctx := context.Background()
	tr, kv := newTestTracker(t)
	require.NoError(t, tr.RecordView(ctx, product(1)))
	require.NoError(t, tr.RecordView(ctx, product(2)))

	reloaded, err := New(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, tr.Items(), reloaded.Items())
}

func TestCorruptPersistedListIsDiscarded(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "recentlyViewed", "oops"))

	tr, err := New(ctx, kv)
	require.NoError(t, err)
	assert.Empty(t, tr.Items())
}
