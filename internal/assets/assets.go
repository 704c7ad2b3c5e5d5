// Package assets reads scene files from the data directory and decodes images and models.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
)

// LoadError reports a missing or unreadable asset. It is never fatal on its own;
// the scene decides what to do without the asset.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a LoadError for a missing file.
func IsNotFound(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && errors.Is(loadErr.Err, fs.ErrNotExist)
}

// Loader reads assets from a file system rooted at the data directory.
type Loader struct {
	fsys  fs.FS
	cache *Cache
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return NewLoaderFS(os.DirFS(dir))
}

// NewLoaderFS creates a loader over an arbitrary file system.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: NewCache(),
	}
}

// CleanPath converts a Windows-style or slash path into a clean fs.FS path.
func CleanPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// Read returns the raw bytes of an asset, served from cache after the first read.
func (l *Loader) Read(name string) ([]byte, error) {
	key := CleanPath(name)
	if data, ok := l.cache.Get(key); ok {
		return data, nil
	}

	data, err := fs.ReadFile(l.fsys, key)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	l.cache.Set(key, data)
	return data, nil
}

// Exists reports whether an asset is present.
func (l *Loader) Exists(name string) bool {
	_, err := fs.Stat(l.fsys, CleanPath(name))
	return err == nil
}

// CacheStats returns cache hit and miss counts.
func (l *Loader) CacheStats() (hits, misses int) {
	return l.cache.Stats()
}

// Close drops cached data.
func (l *Loader) Close() {
	l.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
