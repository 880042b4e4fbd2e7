package texture

import (
	"log/slog"
	"sync"
)

// Image is decoded RGBA8 pixel data ready for upload.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

// Decoder turns an image path into RGBA8 pixels.
type Decoder interface {
	Decode(path string) (*Image, error)
}

// Device uploads and frees GPU textures. A zero handle is never valid.
type Device interface {
	UploadTexture(pix []byte, width, height int) (uint32, error)
	DestroyTexture(handle uint32)
}

type entry struct {
	handle   uint32
	refCount int
}

// Cache loads each texture path once and shares the GPU handle between all
// callers. The handle is freed when the last reference is released.
//
// Callers borrow handles; they must release them with Unload or UnloadHandle
// and never destroy them directly.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry

	decoder Decoder
	device  Device

	logger        *slog.Logger
	decodeWorkers int
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for load and unload diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDecodeWorkers bounds the number of concurrent decodes done by Preload.
func WithDecodeWorkers(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.decodeWorkers = n
		}
	}
}

// New creates an empty cache.
func New(dec Decoder, dev Device, opts ...Option) *Cache {
	c := &Cache{
		entries:       make(map[string]*entry),
		decoder:       dec,
		device:        dev,
		logger:        slog.New(slog.DiscardHandler),
		decodeWorkers: 4,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the texture handle for path, decoding and uploading it on the
// first request. Every successful call takes one reference.
// It returns 0 when the image cannot be decoded or uploaded.
func (c *Cache) Load(path string) uint32 {
	if path == "" {
		c.logger.Warn("texture: load with empty path")
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok {
		e.refCount++
		c.logger.Debug("texture: cache hit", "path", path, "refs", e.refCount)
		return e.handle
	}

	img, err := c.decoder.Decode(path)
	if err != nil {
		c.logger.Warn("texture: decode failed", "path", path, "err", err)
		return 0
	}
	handle := c.upload(path, img)
	if handle == 0 {
		return 0
	}

	c.entries[path] = &entry{handle: handle, refCount: 1}
	c.logger.Debug("texture: loaded", "path", path, "handle", handle, "width", img.Width, "height", img.Height)
	return handle
}

// upload must be called with c.mu held.
func (c *Cache) upload(path string, img *Image) uint32 {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height*4 {
		c.logger.Warn("texture: decoder returned no pixels", "path", path)
		return 0
	}
	handle, err := c.device.UploadTexture(img.Pix, img.Width, img.Height)
	if err != nil {
		c.logger.Warn("texture: upload failed", "path", path, "err", err)
		return 0
	}
	if handle == 0 {
		c.logger.Warn("texture: device returned zero handle", "path", path)
		return 0
	}
	return handle
}

// IsLoaded reports whether path currently has a live entry.
func (c *Cache) IsLoaded(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	return ok
}

// RefCount returns the number of outstanding references for path, or 0.
func (c *Cache) RefCount(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok {
		return e.refCount
	}
	return 0
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Unload releases one reference to path. The GPU texture is destroyed when
// the count reaches zero. It returns false if path is not cached.
func (c *Cache) Unload(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.release(path)
}

// UnloadHandle releases one reference to the entry owning handle. The lookup
// resolves the path and then behaves exactly like Unload.
func (c *Cache) UnloadHandle(handle uint32) bool {
	if handle == 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for path, e := range c.entries {
		if e.handle == handle {
			return c.release(path)
		}
	}
	c.logger.Debug("texture: unload of unknown handle", "handle", handle)
	return false
}

// release must be called with c.mu held.
func (c *Cache) release(path string) bool {
	e, ok := c.entries[path]
	if !ok {
		c.logger.Debug("texture: unload of unknown path", "path", path)
		return false
	}

	e.refCount--
	if e.refCount > 0 {
		c.logger.Debug("texture: released reference", "path", path, "refs", e.refCount)
		return true
	}

	c.device.DestroyTexture(e.handle)
	delete(c.entries, path)
	c.logger.Debug("texture: unloaded", "path", path, "handle", e.handle)
	return true
}

// UnloadAll destroys every cached texture regardless of its reference count.
// Only for shutdown: handles held by callers become invalid.
func (c *Cache) UnloadAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for path, e := range c.entries {
		c.device.DestroyTexture(e.handle)
		delete(c.entries, path)
	}
	c.logger.Debug("texture: unloaded all textures")
}
