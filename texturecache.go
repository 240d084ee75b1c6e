package scenic

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Default texture cache configuration constants.
const (
	// DefaultTextureBudgetMB is the default cache budget in megabytes.
	DefaultTextureBudgetMB = 64
	// bytesPerMB is the number of bytes in a megabyte.
	bytesPerMB = 1024 * 1024
)

// UploadFunc uploads an image to backend-resident storage (typically a GPU
// texture) and returns an opaque handle plus the resident size in bytes.
// Uploads are expected to be idempotent: uploading the same image twice
// yields an equivalent handle.
type UploadFunc func(img *Image) (handle any, size int64, err error)

// TextureCache is the side table a backend hangs its lazily-uploaded
// textures off: a map from Image identity to an upload handle, populated on
// first use and reused on subsequent frames. Keeping the cache outside the
// Image keeps the value type immutable and freely shareable.
//
// Upload of each image is single-flight: concurrent Lookup calls for the
// same identity run the upload once and share the result. Least recently
// used entries are evicted when the byte budget is exceeded; an evicted
// image is simply re-uploaded on its next use.
//
// TextureCache is safe for concurrent use.
type TextureCache struct {
	mu      sync.Mutex
	entries map[uint64]*textureEntry // image ID -> entry
	lru     *list.List               // LRU order (front = most recent)
	size    int64                    // Current resident bytes
	maxSize int64                    // Byte budget

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// textureEntry is one uploaded texture with its once-init guard.
type textureEntry struct {
	id      uint64
	once    sync.Once
	handle  any
	size    int64
	err     error
	element *list.Element
}

// TextureCacheStats contains cache statistics for monitoring.
type TextureCacheStats struct {
	// Size is the current resident bytes.
	Size int64
	// MaxSize is the byte budget.
	MaxSize int64
	// Entries is the number of cached textures.
	Entries int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// Evictions is the number of entries evicted.
	Evictions uint64
}

// NewTextureCache creates a texture cache with the given budget in
// megabytes. A non-positive budget selects DefaultTextureBudgetMB.
func NewTextureCache(budgetMB int) *TextureCache {
	if budgetMB <= 0 {
		budgetMB = DefaultTextureBudgetMB
	}
	return &TextureCache{
		entries: make(map[uint64]*textureEntry),
		lru:     list.New(),
		maxSize: int64(budgetMB) * bytesPerMB,
	}
}

// Lookup returns the upload handle for img, running upload at most once per
// resident period of the image's identity. A failed upload is not cached;
// the next Lookup retries.
func (c *TextureCache) Lookup(img *Image, upload UploadFunc) (any, error) {
	if img.IsEmpty() {
		return nil, nil
	}

	c.mu.Lock()
	entry, ok := c.entries[img.ID()]
	if ok {
		c.lru.MoveToFront(entry.element)
	} else {
		entry = &textureEntry{id: img.ID()}
		entry.element = c.lru.PushFront(entry)
		c.entries[img.ID()] = entry
	}
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	// Upload outside the map lock; the once guard makes it single-flight
	// per identity.
	entry.once.Do(func() {
		entry.handle, entry.size, entry.err = upload(img)
	})

	if entry.err != nil {
		err := entry.err
		c.mu.Lock()
		c.remove(entry)
		c.mu.Unlock()
		return nil, err
	}

	if !ok {
		c.mu.Lock()
		// The entry may have been evicted while the upload was in
		// flight (it was counted at size 0 then); its bytes count only
		// while it is resident.
		if _, resident := c.entries[entry.id]; resident {
			c.size += entry.size
			c.evict()
		}
		c.mu.Unlock()
		Logger().Debug("texture uploaded",
			"image", img.ID(), "bytes", entry.size)
		if entry.size > c.maxSize {
			Logger().Warn("texture exceeds cache budget",
				"image", img.ID(), "bytes", entry.size, "budget", c.maxSize)
		}
	}

	return entry.handle, nil
}

// Contains reports whether the image's texture is currently resident.
func (c *TextureCache) Contains(img *Image) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[img.ID()]
	return ok
}

// Remove drops the image's texture from the cache, if resident.
// The backend owns releasing the underlying handle.
func (c *TextureCache) Remove(img *Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[img.ID()]; ok {
		c.remove(entry)
	}
}

// Clear drops all resident textures.
func (c *TextureCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*textureEntry)
	c.lru.Init()
	c.size = 0
}

// Stats returns a snapshot of cache statistics.
func (c *TextureCache) Stats() TextureCacheStats {
	c.mu.Lock()
	size := c.size
	entries := len(c.entries)
	c.mu.Unlock()

	return TextureCacheStats{
		Size:      size,
		MaxSize:   c.maxSize,
		Entries:   entries,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// evict removes least recently used entries until the cache fits its
// budget. Caller holds c.mu.
func (c *TextureCache) evict() {
	for c.size > c.maxSize {
		back := c.lru.Back()
		if back == nil {
			return
		}
		entry := back.Value.(*textureEntry)
		c.remove(entry)
		c.evictions.Add(1)
		Logger().Debug("texture evicted",
			"image", entry.id, "bytes", entry.size)
	}
}

// remove unlinks an entry. Caller holds c.mu.
func (c *TextureCache) remove(entry *textureEntry) {
	if entry.element != nil {
		c.lru.Remove(entry.element)
		entry.element = nil
	}
	if _, ok := c.entries[entry.id]; ok {
		delete(c.entries, entry.id)
		c.size -= entry.size
	}
}
