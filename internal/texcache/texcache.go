// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texcache provides a bounded LRU cache of generated textures.
package texcache

import (
	"container/list"
	"image"
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 16

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a bounded LRU cache of RGBA textures keyed by K.
//
// Cached textures are never handed out directly: every lookup returns a
// copy, so callers may modify the result.
//
// Cache is safe for concurrent use.
type Cache[K comparable] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]*list.Element
	order    *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry[K comparable] struct {
	key K
	img *image.RGBA
}

// New creates a cache holding at most capacity textures.
func New[K comparable](capacity int) *Cache[K] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K]{
		capacity: capacity,
		entries:  make(map[K]*list.Element),
		order:    list.New(),
	}
}

// GetOrCreate returns a copy of the texture for key, calling create on a
// miss. Errors from create are returned and not cached.
//
// create runs with the lock held, so concurrent misses on the same key
// build the texture once.
func (c *Cache[K]) GetOrCreate(key K, create func() (*image.RGBA, error)) (*image.RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		c.hits.Add(1)
		return clone(el.Value.(*entry[K]).img), nil
	}
	c.misses.Add(1)

	img, err := create()
	if err != nil {
		return nil, err
	}

	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry[K]).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.order.PushFront(&entry[K]{key: key, img: img})
	return clone(img), nil
}

// Len returns the number of cached textures.
func (c *Cache[K]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all textures. Statistics are kept.
func (c *Cache[K]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*list.Element)
	c.order.Init()
}

// Stats returns current cache statistics.
func (c *Cache[K]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func clone(img *image.RGBA) *image.RGBA {
	out := &image.RGBA{
		Pix:    make([]byte, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}
