/*
Copyright 2020 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ttllru

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/juju/clock"
	"github.com/pkg/errors"
)

type (
	// Cache is a TTL LRU cache which caches items with a max time to live and with
	// bounded length.
	Cache struct {
		TimeToLive time.Duration
		clock      clock.Clock
		cache      cacher
		mu         sync.Mutex
	}

	cacher interface {
		Get(key interface{}) (value interface{}, ok bool)
		Add(key interface{}, value interface{}) (evicted bool)
		Remove(key interface{}) (ok bool)
		Len() int
	}

	timeToLiveItem struct {
		LastTouch time.Time
		Value     interface{}
	}
)

// New creates a new TTL LRU cache which caches items with a max time to live and with
// bounded length.
func New(size int, timeToLive time.Duration) (*Cache, error) {
	return NewWithClock(size, timeToLive, clock.WallClock)
}

// NewWithClock is New with the clock used to age entries supplied by the caller.
func NewWithClock(size int, timeToLive time.Duration, clk clock.Clock) (*Cache, error) {
	if timeToLive <= 0 {
		return nil, errors.Errorf("time to live must be positive, got %s", timeToLive)
	}

	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build new LRU cache")
	}

	return newCache(timeToLive, clk, c), nil
}

func newCache(timeToLive time.Duration, clk clock.Clock, cache cacher) *Cache {
	return &Cache{
		cache:      cache,
		clock:      clk,
		TimeToLive: timeToLive,
	}
}

// Get returns a value and a bool indicating the value was found for a given key.
// A hit refreshes the entry's time to live.
func (ttlCache *Cache) Get(key interface{}) (value interface{}, ok bool) {
	ttlCache.mu.Lock()
	defer ttlCache.mu.Unlock()

	val, ok := ttlCache.cache.Get(key)
	if !ok {
		return nil, false
	}

	ttlItem, ok := val.(*timeToLiveItem)
	if !ok {
		return nil, false
	}

	now := ttlCache.clock.Now()
	if now.Sub(ttlItem.LastTouch) > ttlCache.TimeToLive {
		ttlCache.cache.Remove(key)
		return nil, false
	}

	ttlItem.LastTouch = now
	return ttlItem.Value, true
}

// Add will add a value for a given key.
func (ttlCache *Cache) Add(key interface{}, val interface{}) {
	ttlCache.mu.Lock()
	defer ttlCache.mu.Unlock()

	ttlCache.cache.Add(key, &timeToLiveItem{
		Value:     val,
		LastTouch: ttlCache.clock.Now(),
	})
}

// Remove drops the value stored for key, if any.
func (ttlCache *Cache) Remove(key interface{}) {
	ttlCache.mu.Lock()
	defer ttlCache.mu.Unlock()

	ttlCache.cache.Remove(key)
}

// Len is the number of entries held, including ones that expired but were not read since.
func (ttlCache *Cache) Len() int {
	ttlCache.mu.Lock()
	defer ttlCache.mu.Unlock()

	return ttlCache.cache.Len()
}
