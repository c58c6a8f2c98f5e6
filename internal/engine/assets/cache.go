// Package assets implements the memoized, asynchronously loaded icon cache.
package assets

import (
	"context"
	"image"
	"sync"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// entry is the cache state of one logical asset name.
type entry struct {
	img    image.Image
	loaded bool
	failed bool
}

// Cache resolves logical asset names to images. The first request for a name
// starts a background load and yields nil; later requests return the image
// once it has arrived. A failed load is never retried for the same name.
type Cache struct {
	loader  ports.ImageLoader
	logger  ports.Logger
	metrics ports.RenderMetrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	entries    map[string]*entry
	generation uint64
	closed     bool

	requestGroup singleflight.Group
}

// NewCache creates an empty cache.
func NewCache(loader ports.ImageLoader, logger ports.Logger, metrics ports.RenderMetrics) *Cache {
	ctx, cancel := context.WithCancel(context.Background())
	return &Cache{
		loader:  loader,
		logger:  logger,
		metrics: metrics,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]*entry),
	}
}

// Get returns the image for name, or nil while it is loading or after its load
// failed. locate is called once, on the first request for name, to find where
// the image lives.
func (c *Cache) Get(name string, locate func() string) image.Image {
	c.mu.Lock()
	if e, ok := c.entries[name]; ok {
		img := e.img
		c.mu.Unlock()
		return img
	}
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	e := &entry{}
	c.entries[name] = e
	gen := c.generation
	c.wg.Add(1)
	c.mu.Unlock()

	go c.load(gen, name, locate(), e)
	return nil
}

func (c *Cache) load(gen uint64, name, location string, e *entry) {
	defer c.wg.Done()

	// Different names may point at the same file; they share one fetch.
	v, err, _ := c.requestGroup.Do(location, func() (any, error) {
		return c.loader.Load(c.ctx, location)
	})

	c.mu.Lock()
	stale := gen != c.generation
	if !stale {
		if err != nil {
			e.failed = true
		} else {
			e.img, _ = v.(image.Image)
			e.loaded = e.img != nil
			e.failed = e.img == nil
		}
	}
	c.mu.Unlock()

	if stale {
		return
	}
	if err != nil {
		c.metrics.AssetLoaded(outcomeError)
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrAssetLoadFailed.Error()), "asset", name)
		c.logger.Error(zerr.With(wrapped, "location", location))
		return
	}
	c.metrics.AssetLoaded(outcomeOK)
}

// Reset forgets every entry. Loads still in flight complete into the void.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.generation++
}

// Wait blocks until all loads started so far have finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight loads and waits for them to return.
func (c *Cache) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}
