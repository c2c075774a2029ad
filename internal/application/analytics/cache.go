package analytics

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"time"

	"github.com/kibetdev/salespulse-api/internal/domain/entity"
)

// Fingerprint derives a content hash of an engine input: the period bounds
// and kind plus every field of every sale that can influence the snapshot.
// Two invocations with identical inputs produce identical fingerprints, so
// the cache recomputes only when the data or the window actually changed.
func Fingerprint(sales []entity.Sale, p Period, topLimit int) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}

	writeInt(int64(p.Kind))
	writeInt(p.Start.UnixMilli())
	writeInt(p.End.UnixMilli())
	writeInt(int64(topLimit))

	for _, s := range sales {
		h.Write(s.ID[:])
		writeInt(s.SaleDate.UnixMilli())
		writeInt(s.Total)
		writeInt(s.Profit)
		for _, item := range s.Items {
			h.Write(item.ProductID[:])
			writeInt(int64(item.Quantity))
			writeInt(item.UnitPrice)
		}
	}
	return h.Sum64()
}

type cacheEntry struct {
	snapshot *Snapshot
	storedAt time.Time
}

// SnapshotCache memoizes computed snapshots keyed by input fingerprint.
// Safe for concurrent use. Entries expire after ttl; when the cache grows
// past maxEntries it is reset wholesale, which is cheap and good enough for
// the handful of distinct (sales, period) inputs a dashboard produces.
type SnapshotCache struct {
	mu         sync.RWMutex
	entries    map[uint64]cacheEntry
	maxEntries int
	ttl        time.Duration
}

// NewSnapshotCache creates a cache bounded to maxEntries with the given
// entry TTL. A non-positive TTL disables expiry.
func NewSnapshotCache(maxEntries int, ttl time.Duration) *SnapshotCache {
	if maxEntries <= 0 {
		maxEntries = 128
	}
	return &SnapshotCache{
		entries:    make(map[uint64]cacheEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Get returns the cached snapshot for the fingerprint, if present and fresh
func (c *SnapshotCache) Get(key uint64) (*Snapshot, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.snapshot, true
}

// Put stores a snapshot under the fingerprint
func (c *SnapshotCache) Put(key uint64, snapshot *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[uint64]cacheEntry)
	}
	c.entries[key] = cacheEntry{snapshot: snapshot, storedAt: time.Now()}
}

// Len returns the number of cached snapshots
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
