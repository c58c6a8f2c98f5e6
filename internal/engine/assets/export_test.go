package assets

// Loaded reports whether name has resolved to an image.
func (c *Cache) Loaded(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	return ok && e.loaded
}

// Failed reports whether the load for name failed.
func (c *Cache) Failed(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	return ok && e.failed
}

// Len returns the number of names the cache knows about, pending ones included.
// This is exported for testing purposes only.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
