package filter_cache

import (
	"sync"
	"time"

	"github.com/moghost88/cozy-corner-goods/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The sidebar payload (categories, counts, price range) is derived from the
// catalog plus live seller products, so it is cached with a short TTL.

type metadataEntry struct {
	data      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return models.FilterMetadata{}, false
}

func SetMetadata(data models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call when seller products change) ────────────────────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
